package timetable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prepsheet/prepsheet/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(22)

	activityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	studyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// Model renders one day of a generated plan with a movable cursor.
type Model struct {
	viewport viewport.Model
	Tasks    []models.TimetableTask
	Cursor   int
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.Tasks) == 0 {
		return "No tasks for this day."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetTasks(tasks []models.TimetableTask) {
	m.Tasks = tasks
	if m.Cursor >= len(tasks) {
		m.Cursor = 0
	}
	m.Render()
}

func (m *Model) MoveCursor(delta int) {
	if len(m.Tasks) == 0 {
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = len(m.Tasks) - 1
	}
	m.Render()
}

// Selected returns the task under the cursor, or nil when there are none.
func (m *Model) Selected() *models.TimetableTask {
	if len(m.Tasks) == 0 {
		return nil
	}
	return &m.Tasks[m.Cursor]
}

func (m *Model) Render() {
	var b strings.Builder
	for i, task := range m.Tasks {
		pointer := "  "
		if i == m.Cursor {
			pointer = cursorStyle.Render("> ")
		}

		check := "[ ]"
		if task.IsCompleted {
			check = "[x]"
		}

		style := activityStyle
		if task.Category == models.CategoryStudy {
			style = studyStyle
		}
		if task.IsCompleted {
			style = doneStyle
		}

		timeStr := fmt.Sprintf("%s – %s", task.StartTime, task.EndTime)
		line := fmt.Sprintf("%s%s %s %s\n",
			pointer,
			check,
			timeStyle.Render(timeStr),
			style.Render(task.Activity),
		)
		b.WriteString(line)
	}
	m.viewport.SetContent(b.String())
}
