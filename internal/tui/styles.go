package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorCursor    = lipgloss.Color("#3E4452")
	ColorVirus     = lipgloss.Color("#98C379")
	ColorDefeat    = lipgloss.Color("#006400")
	ColorVictory   = lipgloss.Color("#00008B")
	ColorFlag      = lipgloss.Color("#E5C07B")
)

// Label colors for 1..8 hazard neighbors; 0 is left blank
var countColors = [9]lipgloss.Color{
	1: lipgloss.Color("#0000FF"), // blue
	2: lipgloss.Color("#008000"), // green
	3: lipgloss.Color("#FF0000"), // red
	4: lipgloss.Color("#800080"), // purple
	5: lipgloss.Color("#800000"), // maroon
	6: lipgloss.Color("#40E0D0"), // turquoise
	7: lipgloss.Color("#000000"), // black
	8: lipgloss.Color("#808080"), // gray
}

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorVirus).
			Bold(true)

	CoveredStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	FlagStyle = lipgloss.NewStyle().
			Foreground(ColorFlag).
			Bold(true)

	VirusStyle = lipgloss.NewStyle().
			Foreground(ColorVirus).
			Bold(true)

	ExplodedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E06C75")).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Background(ColorCursor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	DefeatStyle = lipgloss.NewStyle().
			Foreground(ColorDefeat).
			Bold(true)

	VictoryStyle = lipgloss.NewStyle().
			Foreground(ColorVictory).
			Bold(true)
)

func countStyle(n int) lipgloss.Style {
	if n < 1 || n > 8 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(countColors[n]).Bold(true)
}
