package model

// Package model defines domain data structures used across the app: directory
// characters, query state, page results, and load states. Structures are
// plain values so they can be copied into UI snapshots without aliasing.
