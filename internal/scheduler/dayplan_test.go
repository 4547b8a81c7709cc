package scheduler

import (
	"testing"
	"time"

	"github.com/prepsheet/prepsheet/internal/models"
)

func TestBuildDay_TemplateShape(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2024-06-01")
	tasks, _ := buildDay(date, testFocus, testOther, testCatalog, 1, 0)

	if len(tasks) != SlotsPerDay {
		t.Fatalf("expected %d tasks, got %d", SlotsPerDay, len(tasks))
	}

	// The day starts with waking up and ends with sleep crossing midnight.
	if tasks[0].StartTime != "07:00 AM" || tasks[0].Category != models.CategoryOther {
		t.Errorf("unexpected first slot: %+v", tasks[0])
	}
	last := tasks[len(tasks)-1]
	if last.Category != models.CategorySleep || last.StartTime != "10:30 PM" || last.EndTime != "07:00 AM" {
		t.Errorf("unexpected sleep slot: %+v", last)
	}

	studyCount := 0
	for _, task := range tasks {
		if task.Date != "2024-06-01" {
			t.Errorf("task %s has wrong date %s", task.ID, task.Date)
		}
		if task.Category == models.CategoryStudy {
			studyCount++
			if task.SubjectLabel == "" {
				t.Errorf("study task %s is missing a subject label", task.ID)
			}
			if task.Activity != "Study: "+task.SubjectLabel {
				t.Errorf("study task %s activity/label mismatch: %q vs %q", task.ID, task.Activity, task.SubjectLabel)
			}
		} else if task.SubjectLabel != "" {
			t.Errorf("non-study task %s must not carry a subject label", task.ID)
		}
	}
	if studyCount != studySlotsPerDay {
		t.Errorf("expected %d study slots, got %d", studySlotsPerDay, studyCount)
	}
}

func TestBuildDay_IDsDeriveFromDateAndSlot(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2024-06-01")
	tasks, _ := buildDay(date, testFocus, testOther, testCatalog, 1, 0)

	if tasks[0].ID != "2024-06-01-wake" {
		t.Errorf("unexpected id for first slot: %s", tasks[0].ID)
	}

	seen := make(map[string]bool)
	for _, task := range tasks {
		if seen[task.ID] {
			t.Errorf("duplicate task id within a day: %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestBuildDay_CounterAdvancesFivePerDay(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2024-06-01")
	_, counter := buildDay(date, testFocus, testOther, testCatalog, 1, 0)
	// Four allocator calls plus the evening mixed-revision tick.
	if counter != 5 {
		t.Errorf("expected counter 5 after one day, got %d", counter)
	}
}
