package csscat

import "github.com/charmbracelet/lipgloss"

// Role says what a piece of report text is; reporters pick colors by role
type Role int

const (
	RolePlain Role = iota
	RoleHeading
	RoleCount
	RolePath
	RoleIncluded
	RoleSkipped
	RoleNotice
	RoleSucceeded
	RoleFailed
)

// Lipgloss degrades these to what the terminal supports
var roleStyles = map[Role]lipgloss.Style{
	RoleHeading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	RoleCount:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	RolePath:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	RoleIncluded:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	RoleSkipped:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	RoleNotice:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	RoleSucceeded: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	RoleFailed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
}

// Paint renders text in its role's style. Without colors, or for RolePlain, text is returned as is.
func Paint(role Role, text string, useColors bool) string {
	style, ok := roleStyles[role]
	if !useColors || !ok {
		return text
	}
	return style.Render(text)
}

// OutcomeRole maps a write outcome onto the role its message is printed in
func OutcomeRole(outcome WriteOutcome) Role {
	switch outcome {
	case WriteSucceeded:
		return RoleSucceeded
	case WriteFailed:
		return RoleFailed
	case WriteDenied:
		return RoleNotice
	default:
		return RolePlain
	}
}
