package textview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/model"
)

const (
	// CardWidth is the inner width of one card
	CardWidth = 34
	// CardsPerRow is how many cards are joined side by side
	CardsPerRow = 3

	glyphFavorite    = "★"
	glyphNotFavorite = "☆"
	placeholder      = "—"
)

// Renderer draws cards with a fixed set of styles
type Renderer struct {
	styles Styles
	perRow int
}

// NewRenderer creates a renderer; perRow < 1 means one card per row
func NewRenderer(styles Styles, perRow int) *Renderer {
	if perRow < 1 {
		perRow = 1
	}
	return &Renderer{styles: styles, perRow: perRow}
}

// Render draws characters with the default styles
func Render(characters []model.Character, isFavorite func(model.CharacterID) bool) string {
	return NewRenderer(DefaultStyles(), CardsPerRow).Render(characters, isFavorite)
}

// Render draws one card per character, perRow cards side by side
func (r *Renderer) Render(characters []model.Character, isFavorite func(model.CharacterID) bool) string {
	if len(characters) == 0 {
		return ""
	}

	var rows []string
	for start := 0; start < len(characters); start += r.perRow {
		end := min(start+r.perRow, len(characters))
		cards := make([]string, 0, end-start)
		for _, c := range characters[start:end] {
			favorite := isFavorite != nil && isFavorite(c.ID)
			cards = append(cards, r.Card(c, favorite))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Card draws a single character card
func (r *Renderer) Card(c model.Character, favorite bool) string {
	glyph := r.styles.Muted.Render(glyphNotFavorite)
	if favorite {
		glyph = r.styles.Favorite.Render(glyphFavorite)
	}

	header := fmt.Sprintf("%s %s %s", glyph, r.styles.Name.Render(orDash(c.Name)), r.styles.Muted.Render(fmt.Sprintf("#%d", c.ID)))
	badges := r.statusStyle(c.Badge()).Render(orDash(c.Status)) + " · " + r.styles.Species.Render(orDash(c.Species))

	return r.styles.Card.Render(header + "\n" + badges)
}

func (r *Renderer) statusStyle(status model.LifeStatus) lipgloss.Style {
	switch status {
	case model.LifeStatusAlive:
		return r.styles.Alive
	case model.LifeStatusDead:
		return r.styles.Dead
	default:
		return r.styles.Unknown
	}
}

// Summary returns the indicator line, e.g. "Dead characters (55): · Page 2 of 3 · prev next"
func (r *Renderer) Summary(ind browse.Indicator) string {
	parts := []string{MessageText(ind)}
	if ind.TotalPages > 0 {
		parts = append(parts, fmt.Sprintf("Page %d of %d", ind.Page, ind.TotalPages))
	} else {
		parts = append(parts, fmt.Sprintf("Page %d", ind.Page))
	}

	var nav []string
	if ind.PrevEnabled {
		nav = append(nav, "prev")
	}
	if ind.NextEnabled {
		nav = append(nav, "next")
	}
	if len(nav) > 0 {
		parts = append(parts, strings.Join(nav, " "))
	}
	return r.styles.Summary.Render(strings.Join(parts, " · "))
}

// Summary renders the indicator line with the default styles
func Summary(ind browse.Indicator) string {
	return NewRenderer(DefaultStyles(), CardsPerRow).Summary(ind)
}

// MessageText is the English summary for an indicator, or "Loading..."
// before anything has loaded
func MessageText(ind browse.Indicator) string {
	if text := ind.Summary(); text != "" {
		return text
	}
	return "Loading..."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
