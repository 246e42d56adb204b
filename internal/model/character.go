package model

import "strings"

// CharacterID identifies a character in the remote directory.
type CharacterID int

// LifeStatus is the life-status reported by the directory for a character.
type LifeStatus string

const (
	LifeStatusAlive   LifeStatus = "alive"
	LifeStatusDead    LifeStatus = "dead"
	LifeStatusUnknown LifeStatus = "unknown"
)

// Character is a read-only directory entry
type Character struct {
	ID      CharacterID `json:"id"`
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Species string      `json:"species"`
	Image   string      `json:"image"`
}

// Badge classifies the raw status into one of the three display buckets.
// Anything that is not "alive" or "dead" (case-insensitively) is unknown.
func (c Character) Badge() LifeStatus {
	return ClassifyStatus(c.Status)
}

// ClassifyStatus maps a raw status string onto a LifeStatus bucket
func ClassifyStatus(raw string) LifeStatus {
	switch strings.ToLower(raw) {
	case string(LifeStatusAlive):
		return LifeStatusAlive
	case string(LifeStatusDead):
		return LifeStatusDead
	default:
		return LifeStatusUnknown
	}
}
