package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the text readable on light terminals.
var (
	Accent = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"} // teal
	Leaf   = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"} // green
	Dim    = lipgloss.AdaptiveColor{Light: "#78716C", Dark: "#A8A29E"} // stone
	Amber  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	Danger = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	Ink    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111827"}
)

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.TerminalColor) lipgloss.Style {
	return fg(c).Bold(true)
}

var (
	App = lipgloss.NewStyle().Padding(1, 2)

	Title    = bold(Accent).MarginBottom(1)
	Subtitle = fg(Dim).Italic(true)

	// Header is a section heading for line-oriented output
	Header = bold(Accent).Underline(true)

	MutedText = fg(Dim)

	// Projects, objects and items
	NodeProject  = lipgloss.NewStyle().Bold(true)
	NodeObject   = fg(Leaf)
	NodeIndex    = fg(Accent)
	Timestamp    = fg(Dim)
	PrimaryBadge = bold(Amber)
	NodeSelected = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Ink).
			Bold(true)

	ActionAdd    = fg(Leaf)
	ActionDelete = fg(Danger)

	InputLabel   = bold(Leaf)
	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	// Prompt is a yes/no question on the terminal
	Prompt = bold(Amber)

	HelpKey       = bold(Accent)
	HelpDesc      = fg(Dim)
	HelpSeparator = fg(Dim).SetString(" · ")

	Success    = bold(Leaf)
	ErrorMsg   = bold(Danger)
	WarningMsg = fg(Amber)

	SearchMatch = lipgloss.NewStyle().Background(Amber).Foreground(Ink)
)
