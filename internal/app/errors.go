package app

import (
	"errors"
	"fmt"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// HTTPStatusError is returned when github api responds with non 2xx status.
type HTTPStatusError struct {
	StatusCode int
	URL        string

	// RateLimited is set when github reported no remaining requests.
	RateLimited bool
}

func (e *HTTPStatusError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("rate limit exceeded: got http status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("got invalid http status code %d from %s", e.StatusCode, e.URL)
}

// DecodeError is returned when response body doesn't match expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PaginationParseError is returned when Link header is present, but no page number can be read from it.
type PaginationParseError struct {
	Header string
	Reason string
}

func (e *PaginationParseError) Error() string {
	return fmt.Sprintf("parsing pagination header %q: %s", e.Header, e.Reason)
}

// CacheCorruptError is returned when stored payload can't be deserialized.
// Stored key should be invalidated by the caller before retrying.
type CacheCorruptError struct {
	Key string
	Err error
}

func (e *CacheCorruptError) Error() string {
	return fmt.Sprintf("cache entry %q is corrupt: %v", e.Key, e.Err)
}

func (e *CacheCorruptError) Unwrap() error {
	return e.Err
}

// CachePersistError is returned when fetched data couldn't be written to the store.
// Data returned along with this error is still valid.
type CachePersistError struct {
	Key string
	Err error
}

func (e *CachePersistError) Error() string {
	return fmt.Sprintf("persisting cache entry %q: %v", e.Key, e.Err)
}

func (e *CachePersistError) Unwrap() error {
	return e.Err
}

// OrgMembersError is returned when organization members list couldn't be loaded.
type OrgMembersError struct {
	Org string
	Err error
}

func (e *OrgMembersError) Error() string {
	return fmt.Sprintf("could not load organization members of %s: %v", e.Org, e.Err)
}

func (e *OrgMembersError) Unwrap() error {
	return e.Err
}
