package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/rm-browser/internal/model"
)

// Custom color names for life-status badges
const (
	ColorNameBadgeAlive   fyne.ThemeColorName = "badgeAlive"
	ColorNameBadgeDead    fyne.ThemeColorName = "badgeDead"
	ColorNameBadgeUnknown fyne.ThemeColorName = "badgeUnknown"
	ColorNameCard         fyne.ThemeColorName = "card"
)

// CompactTheme is a compact theme with reduced padding and badge colors
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameBadgeAlive, theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case ColorNameBadgeDead, theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case ColorNameBadgeUnknown:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 150, B: 136, A: 255} // portal green
	case ColorNameCard:
		if variant == theme.VariantDark {
			return color.RGBA{R: 34, G: 34, B: 38, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 244, G: 245, B: 247, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

// badgeColorName maps a life status to its badge color
func badgeColorName(status model.LifeStatus) fyne.ThemeColorName {
	switch status {
	case model.LifeStatusAlive:
		return ColorNameBadgeAlive
	case model.LifeStatusDead:
		return ColorNameBadgeDead
	default:
		return ColorNameBadgeUnknown
	}
}
