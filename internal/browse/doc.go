package browse

// Package browse implements the query-state coordinator: it owns the current
// query and the last fetched page, turns UI commands into state transitions,
// issues at most one current fetch, and discards responses that belong to a
// superseded query. Views are published through an update callback.
