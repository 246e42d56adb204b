package browse

import "github.com/ytget/rm-browser/internal/model"

// Command is a discrete state-changing request consumed by Dispatch
type Command interface {
	command()
}

// SetSearch replaces the name filter and resets the page
type SetSearch struct{ Text string }

// ClearSearch removes the name filter and resets the page
type ClearSearch struct{}

// SetStatusFilter replaces the status filter and resets the page.
// Status accepts chip values: all, alive, dead, unknown.
type SetStatusFilter struct{ Status string }

// GoToPage jumps to a 1-based page of the current filters
type GoToPage struct{ Page int }

// SetQuery replaces the whole query in one step.
// Status accepts chip values; empty means all.
type SetQuery struct {
	Name   string
	Status string
	Page   int
}

// NextPage advances one page without checking HasNext
type NextPage struct{}

// PrevPage goes back one page; no-op on the first page
type PrevPage struct{}

// Reload fetches the current query again
type Reload struct{}

// SetFavoritesOnly switches the local favorites-only projection
type SetFavoritesOnly struct{ Enabled bool }

// ToggleFavorite flips favorite membership of a character
type ToggleFavorite struct{ ID model.CharacterID }

func (SetSearch) command()        {}
func (ClearSearch) command()      {}
func (SetStatusFilter) command()  {}
func (GoToPage) command()         {}
func (SetQuery) command()         {}
func (NextPage) command()         {}
func (PrevPage) command()         {}
func (Reload) command()           {}
func (SetFavoritesOnly) command() {}
func (ToggleFavorite) command()   {}
