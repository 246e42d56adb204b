package directory

// Package directory implements the client for the remote paginated character
// directory. It translates a model.Query into one HTTP GET, treats 404 as an
// empty page, and classifies every other failure as a request, transport, or
// decode error.
