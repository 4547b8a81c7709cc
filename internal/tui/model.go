package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"

	"github.com/prepsheet/prepsheet/internal/models"
	"github.com/prepsheet/prepsheet/internal/storage"
	"github.com/prepsheet/prepsheet/internal/tui/components/timetable"
)

type SessionState int

const (
	StateTimetable SessionState = iota
	StateTips
)

type Model struct {
	store     storage.Provider
	state     SessionState
	keys      KeyMap
	help      help.Model
	timetable timetable.Model
	plan      *models.GeneratedPlan
	dates     []string
	dateIndex int
	errMsg    string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store:     store,
		state:     StateTimetable,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		timetable: timetable.New(0, 0),
	}

	plan, err := store.LatestPlan()
	if err != nil {
		m.errMsg = "No plan yet. Run 'prepsheet generate' first."
		return m
	}
	m.plan = &plan
	m.dates = plan.Dates()
	m.dateIndex = todayIndex(m.dates)
	m.timetable.SetTasks(plan.TasksForDate(m.currentDate()))

	return m
}

// todayIndex returns the index of today's date within the plan, or 0 when the
// plan does not cover today.
func todayIndex(dates []string) int {
	today := time.Now().Format("2006-01-02")
	for i, d := range dates {
		if d == today {
			return i
		}
	}
	return 0
}

func (m Model) currentDate() string {
	if len(m.dates) == 0 {
		return ""
	}
	return m.dates[m.dateIndex]
}

func (m *Model) reloadDay() {
	if m.plan == nil {
		return
	}
	plan, err := m.store.GetPlan(m.plan.ID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	*m.plan = plan
	m.timetable.SetTasks(plan.TasksForDate(m.currentDate()))
}
