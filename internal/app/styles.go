package app

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cardStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	trackStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	handleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	dragHandleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	pageStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activePageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	buttonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	markedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	disabledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Faint(true)
	draggingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
)
