// Package textview renders character cards and the status/pagination summary
// for terminals, using the same badge semantics as the desktop grid.
package textview

import "github.com/charmbracelet/lipgloss"

// Badge palette
var (
	Alive   = lipgloss.Color("#2EA043")
	Dead    = lipgloss.Color("#B71C1C")
	Unknown = lipgloss.Color("#787878")
	Accent  = lipgloss.Color("#009688")
	Star    = lipgloss.Color("#FFC107")
	Border  = lipgloss.Color("#2a3850")
)

// Styles groups the styles used by Render
type Styles struct {
	Card     lipgloss.Style
	Name     lipgloss.Style
	Alive    lipgloss.Style
	Dead     lipgloss.Style
	Unknown  lipgloss.Style
	Species  lipgloss.Style
	Favorite lipgloss.Style
	Muted    lipgloss.Style
	Summary  lipgloss.Style
}

// DefaultStyles returns the standard card styles
func DefaultStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			Width(CardWidth),

		Name: lipgloss.NewStyle().
			Bold(true),

		Alive: lipgloss.NewStyle().
			Foreground(Alive).
			Bold(true),

		Dead: lipgloss.NewStyle().
			Foreground(Dead).
			Bold(true),

		Unknown: lipgloss.NewStyle().
			Foreground(Unknown).
			Bold(true),

		Species: lipgloss.NewStyle().
			Italic(true),

		Favorite: lipgloss.NewStyle().
			Foreground(Star),

		Muted: lipgloss.NewStyle().
			Foreground(Unknown),

		Summary: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),
	}
}
