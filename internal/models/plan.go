package models

import "time"

type TaskCategory string

const (
	CategoryStudy    TaskCategory = "study"
	CategoryMeal     TaskCategory = "meal"
	CategoryBreak    TaskCategory = "break"
	CategorySleep    TaskCategory = "sleep"
	CategoryRevision TaskCategory = "revision"
	CategoryOther    TaskCategory = "other"
)

// TimetableTask is one timed entry in a day's timetable. Generated tasks carry
// ids derived from their date and slot tag; caller-added tasks carry a fresh
// unique id and IsCustom set.
type TimetableTask struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`       // YYYY-MM-DD format
	StartTime    string       `json:"start_time"` // hh:mm AM/PM format
	EndTime      string       `json:"end_time"`   // hh:mm AM/PM format
	Activity     string       `json:"activity"`
	Category     TaskCategory `json:"category"`
	SubjectLabel string       `json:"subject_label,omitempty"` // set only when Category is study
	IsCompleted  bool         `json:"is_completed"`
	IsCustom     bool         `json:"is_custom,omitempty"`
}

// GeneratedPlan is the full multi-day output of the scheduler, spanning from
// the generation date through the exam date inclusive. Tasks keep their
// insertion order.
type GeneratedPlan struct {
	ID               string          `json:"id"`
	ExamType         string          `json:"exam_type"`
	ExamDate         string          `json:"exam_date"` // YYYY-MM-DD format
	FocusSubjectKeys []string        `json:"focus_subject_keys"`
	Tasks            []TimetableTask `json:"tasks"`
	CreatedAt        time.Time       `json:"created_at"`
	Tips             []string        `json:"tips"`
}

// TasksForDate returns the plan's tasks for one date, preserving order.
func (p GeneratedPlan) TasksForDate(date string) []TimetableTask {
	var tasks []TimetableTask
	for _, t := range p.Tasks {
		if t.Date == date {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Dates returns the distinct dates covered by the plan, in first-seen order.
func (p GeneratedPlan) Dates() []string {
	var dates []string
	seen := make(map[string]bool)
	for _, t := range p.Tasks {
		if !seen[t.Date] {
			seen[t.Date] = true
			dates = append(dates, t.Date)
		}
	}
	return dates
}
