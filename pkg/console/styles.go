package console

import "github.com/charmbracelet/lipgloss"

// 配色沿用黑底终端上比较柔和的 ANSI256 色
var (
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("72"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("167"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("67")).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")).
			Bold(true)

	diffDeleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("174"))

	diffReplaceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("114"))

	diffInsertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))
)
