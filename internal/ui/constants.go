package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings    = "⚙"
	IconClose       = "×"
	IconLanguage    = "🌐"
	IconFavorite    = "⭐"
	IconNotFavorite = "☆"
	IconPrev        = "◀"
	IconNext        = "▶"
	IconReload      = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (CharacterCard / grid)
const (
	CardWidth       float32 = 200
	CardHeight      float32 = 290
	CardImageSize   float32 = 180
	ChipMinWidth    float32 = 72
	SearchMinWidth  float32 = 260
	WindowMinWidth  float32 = 900
	WindowMinHeight float32 = 640
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
