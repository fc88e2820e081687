package renderer

import (
	"github.com/charmbracelet/lipgloss"
)

// MessageStyles holds the styles of the transcript.
type MessageStyles struct {
	User      lipgloss.Style
	Assistant lipgloss.Style
	System    lipgloss.Style

	// progress lines
	Agent      lipgloss.Style
	ToolName   lipgloss.Style
	ToolBorder lipgloss.Style
	Result     lipgloss.Style
	Indent     lipgloss.Style

	Confirmation lipgloss.Style
}

// DefaultMessageStyles returns the default palette.
func DefaultMessageStyles() *MessageStyles {
	return &MessageStyles{
		User:       lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff")).Bold(true),
		Assistant:  lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")).Bold(true),
		System:     lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Italic(true),
		Agent:      lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		ToolName:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")).Bold(true),
		ToolBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Faint(true),
		Result:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6")),
		Indent:     lipgloss.NewStyle().PaddingLeft(2),
		Confirmation: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1),
	}
}

// Icons used in progress lines.
type Icons struct {
	Flight  string
	Hotel   string
	Payment string
	Tool    string
	Handoff string
	Success string
	Error   string
}

// DefaultIcons returns the default icon set.
func DefaultIcons() *Icons {
	return &Icons{
		Flight:  "✈️",
		Hotel:   "🏨",
		Payment: "💳",
		Tool:    "🔧",
		Handoff: "→",
		Success: "✅",
		Error:   "❌",
	}
}
