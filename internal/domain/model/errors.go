package model

import "fmt"

// FetchError means a live retrieval failed and no cached snapshot was
// available to fall back to. It is the only fatal error in a run.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch problems: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means an API payload entry was missing a required field
// and could not be turned into a Problem. The entry is dropped; the
// run continues.
type ParseError struct {
	Slug  string
	Field string
}

func (e *ParseError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("parse problem: missing %s", e.Field)
	}
	return fmt.Sprintf("parse problem %q: missing %s", e.Slug, e.Field)
}
