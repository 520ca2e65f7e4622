package api

import "fmt"

// LookupError reports a non-success response from the user lookup endpoint.
type LookupError struct {
	StatusCode int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("user lookup failed (status %d)", e.StatusCode)
}

// FetchError reports a non-success response from the category list endpoint.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("category list failed (status %d)", e.StatusCode)
}

// WriteError reports a non-success response from a create, edit, or delete
// call. Op names the failed operation.
type WriteError struct {
	Op         string
	StatusCode int
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s failed (status %d)", e.Op, e.StatusCode)
}
