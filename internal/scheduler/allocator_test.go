package scheduler

import (
	"testing"

	"github.com/prepsheet/prepsheet/internal/models"
)

var (
	testFocus = []models.Subject{
		{Key: "physics", Label: "Physics"},
		{Key: "chemistry", Label: "Chemistry"},
	}
	testOther = []models.Subject{
		{Key: "biology", Label: "Biology"},
	}
	testCatalog = append(append([]models.Subject{}, testFocus...), testOther...)
)

func TestPickSubject_MorningSlotsPreferFocus(t *testing.T) {
	for slot := 0; slot <= 1; slot++ {
		subject, _ := PickSubject(testFocus, testOther, testCatalog, 1, slot, slot)
		if subject == nil {
			t.Fatalf("slot %d: expected a subject, got nil", slot)
		}
		if subject.Key != "physics" && subject.Key != "chemistry" {
			t.Errorf("slot %d: expected a focus subject, got %s", slot, subject.Key)
		}
	}
}

func TestPickSubject_AfternoonSlotPrefersOther(t *testing.T) {
	subject, _ := PickSubject(testFocus, testOther, testCatalog, 1, 2, 2)
	if subject == nil {
		t.Fatal("expected a subject, got nil")
	}
	if subject.Key != "biology" {
		t.Errorf("expected the non-focus subject, got %s", subject.Key)
	}
}

func TestPickSubject_LastSlotAlternatesOnCounterParity(t *testing.T) {
	even, _ := PickSubject(testFocus, testOther, testCatalog, 1, 3, 4)
	if even == nil || (even.Key != "physics" && even.Key != "chemistry") {
		t.Errorf("even counter: expected a focus subject, got %+v", even)
	}

	odd, _ := PickSubject(testFocus, testOther, testCatalog, 1, 3, 3)
	if odd == nil || odd.Key != "biology" {
		t.Errorf("odd counter: expected the non-focus subject, got %+v", odd)
	}
}

func TestPickSubject_FallsBackWhenPreferredListEmpty(t *testing.T) {
	// No focus subjects selected: morning slots fall back to the others.
	subject, _ := PickSubject(nil, testOther, testCatalog, 1, 0, 0)
	if subject == nil || subject.Key != "biology" {
		t.Errorf("expected fallback to non-focus list, got %+v", subject)
	}

	// Everything marked focus: slot 2 falls back to the focus list.
	subject, _ = PickSubject(testCatalog, nil, testCatalog, 1, 2, 2)
	if subject == nil {
		t.Error("expected fallback to focus list, got nil")
	}
}

func TestPickSubject_EmptyCatalogReturnsNil(t *testing.T) {
	subject, next := PickSubject(nil, nil, nil, 1, 0, 7)
	if subject != nil {
		t.Errorf("expected nil subject for empty catalog, got %+v", subject)
	}
	if next != 8 {
		t.Errorf("counter must advance even on a nil result: got %d, want 8", next)
	}
}

func TestPickSubject_RotationCyclesThroughList(t *testing.T) {
	// With every subject in focus, the morning slots walk the list by the
	// rotation index mod list length.
	seen := make(map[string]bool)
	counter := 0
	for day := 1; day <= 2; day++ {
		for slot := 0; slot <= 1; slot++ {
			var subject *models.Subject
			subject, counter = PickSubject(testCatalog, nil, testCatalog, day, slot, counter)
			if subject == nil {
				t.Fatal("unexpected nil subject")
			}
			seen[subject.Key] = true
		}
	}
	for _, s := range testCatalog {
		if !seen[s.Key] {
			t.Errorf("subject %s never picked across rotation", s.Key)
		}
	}
}
