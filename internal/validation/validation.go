// Package validation checks schedule requests before plan generation.
package validation

import (
	"fmt"
	"time"

	"github.com/prepsheet/prepsheet/internal/catalog"
	"github.com/prepsheet/prepsheet/internal/models"
)

// ConflictType classifies a request validation failure.
type ConflictType string

const (
	ConflictUnknownExamType   ConflictType = "unknown_exam_type"
	ConflictUnknownFocusKey   ConflictType = "unknown_focus_key"
	ConflictDuplicateFocusKey ConflictType = "duplicate_focus_key"
	ConflictInvalidExamDate   ConflictType = "invalid_exam_date"
	ConflictExamDateInPast    ConflictType = "exam_date_in_past"
	ConflictMissingExamDate   ConflictType = "missing_exam_date"
)

// Conflict describes one problem found in a schedule request.
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // offending keys or values, if applicable
}

// Result contains all conflicts detected in a request.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if any conflicts were detected.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts.
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}
	report := "Problems detected:\n"
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

// Validator validates schedule requests against the exam catalog.
type Validator struct {
	now func() time.Time
}

// New creates a Validator that uses the system clock.
func New() *Validator {
	return &Validator{now: time.Now}
}

// NewWithClock creates a Validator with a pinned clock for tests.
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// ValidateRequest checks the exam type, focus subject keys and exam date.
// The exam date must parse as YYYY-MM-DD and must not be before today;
// a past date is reported, never silently clamped.
func (v *Validator) ValidateRequest(req models.ScheduleRequest) Result {
	var result Result

	subjects, err := catalog.Subjects(req.ExamType)
	if err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictUnknownExamType,
			Description: fmt.Sprintf("unknown exam type %q", req.ExamType),
			Items:       []string{req.ExamType},
		})
	} else {
		known := make(map[string]bool, len(subjects))
		for _, s := range subjects {
			known[s.Key] = true
		}
		seen := make(map[string]bool, len(req.FocusSubjectKeys))
		for _, key := range req.FocusSubjectKeys {
			if !known[key] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnknownFocusKey,
					Description: fmt.Sprintf("focus subject %q is not part of the %s catalog", key, req.ExamType),
					Items:       []string{key},
				})
			}
			if seen[key] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateFocusKey,
					Description: fmt.Sprintf("focus subject %q listed more than once", key),
					Items:       []string{key},
				})
			}
			seen[key] = true
		}
	}

	if req.ExamDate == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictMissingExamDate,
			Description: "exam date is required",
		})
		return result
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidExamDate,
			Description: fmt.Sprintf("exam date %q is not a valid YYYY-MM-DD date", req.ExamDate),
			Items:       []string{req.ExamDate},
		})
		return result
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	examDay := time.Date(examDate.Year(), examDate.Month(), examDate.Day(), 0, 0, 0, 0, time.UTC)
	if examDay.Before(today) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictExamDateInPast,
			Description: fmt.Sprintf("exam date %s is in the past", req.ExamDate),
			Items:       []string{req.ExamDate},
		})
	}

	return result
}
