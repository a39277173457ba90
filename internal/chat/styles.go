package chat

import "github.com/charmbracelet/lipgloss"

var (
	selfStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	peerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	payloadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	ageStyle     = lipgloss.NewStyle().Faint(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)
