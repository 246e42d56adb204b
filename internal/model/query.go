package model

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidPage   = errors.New("invalid page number")
)

// StatusFilter constrains a query to one life-status. The zero value means
// no constraint.
type StatusFilter string

const (
	StatusAny     StatusFilter = ""
	StatusAlive   StatusFilter = "alive"
	StatusDead    StatusFilter = "dead"
	StatusUnknown StatusFilter = "unknown"
)

// StatusFilterAll is the chip value that clears the status constraint
const StatusFilterAll = "all"

// ParseStatusFilter converts a chip value into a StatusFilter.
// "all" and the empty string both mean no constraint.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", StatusFilterAll:
		return StatusAny, nil
	case string(StatusAlive):
		return StatusAlive, nil
	case string(StatusDead):
		return StatusDead, nil
	case string(StatusUnknown):
		return StatusUnknown, nil
	default:
		return StatusAny, ErrInvalidStatus
	}
}

// IsActive reports whether the filter constrains results
func (sf StatusFilter) IsActive() bool {
	return sf != StatusAny
}

// String returns the chip value for the filter
func (sf StatusFilter) String() string {
	if sf == StatusAny {
		return StatusFilterAll
	}
	return string(sf)
}

// StatusFilterOptions returns chip values in display order
func StatusFilterOptions() []StatusFilter {
	return []StatusFilter{StatusAny, StatusAlive, StatusDead, StatusUnknown}
}

// Query is the page/name/status tuple that determines what to fetch next.
// Page is only meaningful relative to the Name and Status it was issued with.
type Query struct {
	Page   int
	Name   string
	Status StatusFilter
}

// NewQuery returns the initial query: first page, no constraints
func NewQuery() Query {
	return Query{Page: 1}
}

// WithName returns a copy with a trimmed name filter and the page reset
func (q Query) WithName(name string) Query {
	q.Name = strings.TrimSpace(name)
	q.Page = 1
	return q
}

// WithStatus returns a copy with the status filter replaced and the page reset
func (q Query) WithStatus(status StatusFilter) Query {
	q.Status = status
	q.Page = 1
	return q
}
