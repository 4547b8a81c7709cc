// Package scheduler generates multi-day exam study timetables. Generation is
// deterministic: for a fixed request, catalog and clock, two runs produce the
// same task list.
package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepsheet/prepsheet/internal/catalog"
	"github.com/prepsheet/prepsheet/internal/models"
)

var studyTips = []string{
	"Use active recall instead of re-reading your notes.",
	"Take a short walk between study slots to reset focus.",
	"Solve at least one previous year paper every week.",
	"Review today's mistakes before starting a new topic.",
	"Keep your phone outside the room during study slots.",
}

type Scheduler struct {
	now func() time.Time
}

func New() *Scheduler {
	return &Scheduler{now: time.Now}
}

// NewWithClock returns a Scheduler that reads the current date from the given
// function. Used by tests to pin "today".
func NewWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// BuildPlan generates a plan covering every date from today through the exam
// date inclusive. The exam date must not be before today; that is rejected as
// a validation error rather than clamped. A single rotation counter threads
// across all days so subject rotation continues smoothly over day boundaries.
func (s *Scheduler) BuildPlan(req models.ScheduleRequest, subjects []models.Subject) (models.GeneratedPlan, error) {
	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return models.GeneratedPlan{}, fmt.Errorf("invalid exam date %q: %w", req.ExamDate, err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	examDate = time.Date(examDate.Year(), examDate.Month(), examDate.Day(), 0, 0, 0, 0, time.UTC)

	if examDate.Before(today) {
		return models.GeneratedPlan{}, fmt.Errorf("exam date %s is in the past", req.ExamDate)
	}

	totalDays := int(examDate.Sub(today).Hours()/24) + 1
	if totalDays < 1 {
		totalDays = 1
	}

	focus, other := catalog.Partition(subjects, req.FocusSubjectKeys)

	plan := models.GeneratedPlan{
		ID:               uuid.New().String(),
		ExamType:         req.ExamType,
		ExamDate:         examDate.Format("2006-01-02"),
		FocusSubjectKeys: req.FocusSubjectKeys,
		Tasks:            make([]models.TimetableTask, 0, totalDays*SlotsPerDay),
		CreatedAt:        now,
		Tips:             Tips(),
	}

	counter := 0
	for dayIndex := 1; dayIndex <= totalDays; dayIndex++ {
		date := today.AddDate(0, 0, dayIndex-1)
		var dayTasks []models.TimetableTask
		dayTasks, counter = buildDay(date, focus, other, subjects, dayIndex, counter)
		plan.Tasks = append(plan.Tasks, dayTasks...)
	}

	return plan, nil
}

// Tips returns the static study tips attached to every generated plan.
func Tips() []string {
	tips := make([]string, len(studyTips))
	copy(tips, studyTips)
	return tips
}
