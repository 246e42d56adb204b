// Package ui contains the Fyne-based desktop user interface for the catalog
// browser. It turns widget events into coordinator commands and renders the
// published views as a grid of character cards with a status and pagination
// summary. All UI strings are localized via Localization.
package ui
