package platform

// Package platform contains OS/platform integration: per-user data directories
// and filesystem helpers used to place the favorites database.
