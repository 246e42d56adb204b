package model

// LoadState represents where the coordinator is in its fetch cycle
type LoadState string

const (
	// LoadStateIdle means nothing has been requested yet
	LoadStateIdle LoadState = "Idle"

	// LoadStateLoading means a fetch for the current query is in flight
	LoadStateLoading LoadState = "Loading"

	// LoadStateLoaded means the latest fetch succeeded
	LoadStateLoaded LoadState = "Loaded"

	// LoadStateFailed means the latest fetch failed
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsActive returns true while a fetch is outstanding
func (ls LoadState) IsActive() bool {
	return ls == LoadStateLoading
}

// IsFinished returns true if the latest fetch resolved (loaded or failed)
func (ls LoadState) IsFinished() bool {
	return ls == LoadStateLoaded || ls == LoadStateFailed
}
