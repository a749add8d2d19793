package domain

import "errors"

// ErrSessionMismatch is an error thrown when a request claims a session it does not own
var ErrSessionMismatch = errors.New("session mismatch")

// ErrSessionNotFound is an error thrown when session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrEmptyBatch is an error thrown when an upload batch contains no files
var ErrEmptyBatch = errors.New("no files provided")

// ErrTooManyFiles is an error thrown when an upload batch exceeds the file count limit
var ErrTooManyFiles = errors.New("too many files")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrInvalidObjectKey is an error thrown when an object key token is malformed
var ErrInvalidObjectKey = errors.New("invalid object key")

// ErrObjectNotFound is an error thrown when object is not found in storage
var ErrObjectNotFound = errors.New("object not found")

// ErrStorageFailure is an error thrown when the object store fails
var ErrStorageFailure = errors.New("storage failure")

// ErrMissingField is an error thrown when a required request field is absent
var ErrMissingField = errors.New("missing required field")
