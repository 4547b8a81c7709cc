package scheduler

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prepsheet/prepsheet/internal/models"
)

func fixedClock(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestBuildPlan_Deterministic(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{
		ExamType:         "neet",
		ExamDate:         "2024-01-05",
		FocusSubjectKeys: []string{"physics"},
	}

	first, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	second, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if !reflect.DeepEqual(first.Tasks, second.Tasks) {
		t.Error("two generations of the same request produced different task lists")
	}
	if !reflect.DeepEqual(first.Tips, second.Tips) {
		t.Error("tips differ between generations")
	}
	if first.ExamDate != second.ExamDate || first.ExamType != second.ExamType {
		t.Error("plan metadata differs between generations")
	}
}

func TestBuildPlan_DayCount(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{ExamType: "neet", ExamDate: "2024-01-03"}

	plan, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if got, want := len(plan.Tasks), 3*SlotsPerDay; got != want {
		t.Errorf("expected %d tasks over 3 days, got %d", want, got)
	}
	if dates := plan.Dates(); len(dates) != 3 || dates[0] != "2024-01-01" || dates[2] != "2024-01-03" {
		t.Errorf("unexpected plan dates: %v", dates)
	}
}

func TestBuildPlan_ExamToday(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{ExamType: "neet", ExamDate: "2024-01-01"}

	plan, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if len(plan.Tasks) != SlotsPerDay {
		t.Errorf("expected a single-day plan of %d tasks, got %d", SlotsPerDay, len(plan.Tasks))
	}
}

func TestBuildPlan_FocusBias(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{
		ExamType:         "neet",
		ExamDate:         "2024-01-10", // 10 days, 40 study slots
		FocusSubjectKeys: []string{"physics", "chemistry"},
	}

	plan, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	focusSlots, totalSlots := 0, 0
	for _, task := range plan.Tasks {
		if task.Category != models.CategoryStudy {
			continue
		}
		totalSlots++
		if task.SubjectLabel == "Physics" || task.SubjectLabel == "Chemistry" {
			focusSlots++
		}
	}

	if totalSlots != 40 {
		t.Fatalf("expected 40 study slots, got %d", totalSlots)
	}
	if focusSlots < 24 {
		t.Errorf("focus subjects got %d of %d study slots, want at least 24", focusSlots, totalSlots)
	}
}

func TestBuildPlan_EverySubjectAppears(t *testing.T) {
	subjects := []models.Subject{
		{Key: "f1", Label: "Focus One"},
		{Key: "f2", Label: "Focus Two"},
		{Key: "f3", Label: "Focus Three"},
		{Key: "o1", Label: "Other One"},
		{Key: "o2", Label: "Other Two"},
	}
	sched := NewWithClock(fixedClock("2024-03-01"))
	req := models.ScheduleRequest{
		ExamType:         "custom",
		ExamDate:         "2024-03-05", // 5 days, 20 study slots
		FocusSubjectKeys: []string{"f1", "f2", "f3"},
	}

	plan, err := sched.BuildPlan(req, subjects)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, task := range plan.Tasks {
		if task.Category == models.CategoryStudy {
			seen[task.SubjectLabel] = true
		}
	}
	for _, s := range subjects {
		if !seen[s.Label] {
			t.Errorf("subject %s never scheduled over 5 days", s.Label)
		}
	}
}

func TestBuildPlan_EmptyCatalogFallsBackToGeneralRevision(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{ExamType: "custom", ExamDate: "2024-01-02"}

	plan, err := sched.BuildPlan(req, nil)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	for _, task := range plan.Tasks {
		if task.Category != models.CategoryStudy {
			continue
		}
		if task.SubjectLabel != GeneralRevisionLabel {
			t.Errorf("task %s: expected %q, got %q", task.ID, GeneralRevisionLabel, task.SubjectLabel)
		}
		if !strings.HasPrefix(task.Activity, "Study: "+GeneralRevisionLabel) {
			t.Errorf("task %s: unexpected activity %q", task.ID, task.Activity)
		}
	}
}

func TestBuildPlan_StableTaskIDs(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{
		ExamType:         "jee",
		ExamDate:         "2024-01-07",
		FocusSubjectKeys: []string{"mathematics"},
	}

	first, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	second, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	for i := range first.Tasks {
		if first.Tasks[i].ID != second.Tasks[i].ID {
			t.Errorf("task %d id changed between generations: %s vs %s", i, first.Tasks[i].ID, second.Tasks[i].ID)
		}
	}

	// Ids must also be unique across the whole plan.
	seen := make(map[string]bool)
	for _, task := range first.Tasks {
		if seen[task.ID] {
			t.Errorf("duplicate task id in plan: %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestBuildPlan_RejectsPastExamDate(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-02"))
	req := models.ScheduleRequest{ExamType: "neet", ExamDate: "2024-01-01"}

	if _, err := sched.BuildPlan(req, testCatalog); err == nil {
		t.Error("expected an error for an exam date before today, got nil")
	}
}

func TestBuildPlan_RejectsMalformedExamDate(t *testing.T) {
	sched := NewWithClock(fixedClock("2024-01-02"))
	req := models.ScheduleRequest{ExamType: "neet", ExamDate: "next tuesday"}

	if _, err := sched.BuildPlan(req, testCatalog); err == nil {
		t.Error("expected an error for a malformed exam date, got nil")
	}
}

func TestBuildPlan_RotationContinuesAcrossDays(t *testing.T) {
	// With every subject in focus the morning slots cycle the catalog by a
	// rotation index that keeps counting across day boundaries, so day two
	// must not restart from the first subject.
	sched := NewWithClock(fixedClock("2024-01-01"))
	req := models.ScheduleRequest{
		ExamType:         "neet",
		ExamDate:         "2024-01-02",
		FocusSubjectKeys: []string{"physics", "chemistry", "biology"},
	}

	plan, err := sched.BuildPlan(req, testCatalog)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	dayTwoFirstStudy := models.TimetableTask{}
	for _, task := range plan.Tasks {
		if task.Date == "2024-01-02" && task.Category == models.CategoryStudy {
			dayTwoFirstStudy = task
			break
		}
	}
	// Day 2 slot 0 has rotation index 4; with a 3-subject list that lands on
	// the second subject, not the first.
	if dayTwoFirstStudy.SubjectLabel != "Chemistry" {
		t.Errorf("expected rotation to continue into day two with Chemistry, got %s", dayTwoFirstStudy.SubjectLabel)
	}
}

func TestTips_FixedList(t *testing.T) {
	tips := Tips()
	if len(tips) != 5 {
		t.Fatalf("expected 5 tips, got %d", len(tips))
	}
	tips[0] = "mutated"
	if Tips()[0] == "mutated" {
		t.Error("Tips must return a copy, not the shared backing slice")
	}
}
