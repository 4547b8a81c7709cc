package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.timetable.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == StateTimetable {
				m.state = StateTips
			} else {
				m.state = StateTimetable
			}
			return m, nil
		}

		if m.state != StateTimetable || m.plan == nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.timetable.MoveCursor(-1)

		case key.Matches(msg, m.keys.Down):
			m.timetable.MoveCursor(1)

		case key.Matches(msg, m.keys.PrevDay):
			if m.dateIndex > 0 {
				m.dateIndex--
				m.timetable.SetTasks(m.plan.TasksForDate(m.currentDate()))
			}

		case key.Matches(msg, m.keys.NextDay):
			if m.dateIndex < len(m.dates)-1 {
				m.dateIndex++
				m.timetable.SetTasks(m.plan.TasksForDate(m.currentDate()))
			}

		case key.Matches(msg, m.keys.Toggle):
			if task := m.timetable.Selected(); task != nil {
				if _, err := m.store.ToggleTask(m.plan.ID, task.ID); err != nil {
					m.errMsg = err.Error()
				} else {
					m.errMsg = ""
					m.reloadDay()
				}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.timetable, cmd = m.timetable.Update(msg)
	return m, cmd
}
