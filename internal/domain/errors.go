package domain

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable is returned when the Data Store is not configured
	// and a write (or an unfallbackable read) is attempted
	ErrStoreUnavailable = errors.New("data store unavailable")

	// ErrMalformedRecord is returned when a stored row cannot be decoded into
	// the stable product shape. The whole request fails rather than returning
	// a silently truncated record.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMailSend is returned when the mail relay rejects or fails a message
	ErrMailSend = errors.New("mail send failed")
)
