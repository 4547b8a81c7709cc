package validation

import (
	"testing"
	"time"

	"github.com/prepsheet/prepsheet/internal/models"
)

func pinned(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func hasConflict(result Result, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

func TestValidateRequest_Valid(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType:         "neet",
		ExamDate:         "2024-05-05",
		FocusSubjectKeys: []string{"physics", "botany"},
	})

	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateRequest_UnknownExamType(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType: "gre",
		ExamDate: "2024-05-05",
	})

	if !hasConflict(result, ConflictUnknownExamType) {
		t.Error("expected unknown_exam_type conflict")
	}
}

func TestValidateRequest_UnknownFocusKey(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType:         "jee",
		ExamDate:         "2024-05-05",
		FocusSubjectKeys: []string{"physics", "biology"}, // biology is not in jee
	})

	if !hasConflict(result, ConflictUnknownFocusKey) {
		t.Error("expected unknown_focus_key conflict for biology")
	}
}

func TestValidateRequest_DuplicateFocusKey(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType:         "jee",
		ExamDate:         "2024-05-05",
		FocusSubjectKeys: []string{"physics", "physics"},
	})

	if !hasConflict(result, ConflictDuplicateFocusKey) {
		t.Error("expected duplicate_focus_key conflict")
	}
}

func TestValidateRequest_PastExamDate(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-02"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType: "neet",
		ExamDate: "2024-01-01",
	})

	if !hasConflict(result, ConflictExamDateInPast) {
		t.Error("expected exam_date_in_past conflict")
	}
}

func TestValidateRequest_ExamTodayAllowed(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType: "neet",
		ExamDate: "2024-01-01",
	})

	if hasConflict(result, ConflictExamDateInPast) {
		t.Error("an exam on the current date must be accepted")
	}
}

func TestValidateRequest_MalformedDate(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{
		ExamType: "neet",
		ExamDate: "01/05/2024",
	})

	if !hasConflict(result, ConflictInvalidExamDate) {
		t.Error("expected invalid_exam_date conflict")
	}
}

func TestValidateRequest_MissingDate(t *testing.T) {
	validator := NewWithClock(pinned("2024-01-01"))
	result := validator.ValidateRequest(models.ScheduleRequest{ExamType: "neet"})

	if !hasConflict(result, ConflictMissingExamDate) {
		t.Error("expected missing_exam_date conflict")
	}
}
