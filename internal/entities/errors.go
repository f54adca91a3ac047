// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream signals a non-2xx answer or transport failure from Productboard or GitLab.
	ErrUpstream = errors.New("upstream error")
	// ErrMatchNotFound signals that no connection references an issue.
	ErrMatchNotFound = errors.New("no matching connection")
	// ErrAmbiguousMatch signals that several connections reference the same issue.
	ErrAmbiguousMatch = errors.New("ambiguous connection match")
)
