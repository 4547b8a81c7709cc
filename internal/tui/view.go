package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTimetable:
		content = m.viewTimetable()
	case StateTips:
		content = m.viewTips()
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Timetable", "Tips"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTimetable() string {
	if m.plan == nil {
		return docStyle.Render("No plan loaded. Run 'prepsheet generate' first.")
	}

	header := headerStyle.Render(fmt.Sprintf("%s  (day %d of %d, exam on %s)",
		m.currentDate(), m.dateIndex+1, len(m.dates), m.plan.ExamDate))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.timetable.View()))
}

func (m Model) viewTips() string {
	if m.plan == nil {
		return docStyle.Render("No plan loaded.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Study tips"))
	b.WriteString("\n\n")
	for _, tip := range m.plan.Tips {
		b.WriteString(fmt.Sprintf("  • %s\n", tip))
	}
	return docStyle.Render(b.String())
}
