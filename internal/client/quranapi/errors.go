package quranapi

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMalformedChapterPayload indicates that the chapter metadata payload failed validation.
	ErrMalformedChapterPayload = errors.New("malformed chapter metadata payload")
	// ErrMalformedVersePayload indicates that the verse metadata payload failed validation.
	ErrMalformedVersePayload = errors.New("malformed verse metadata payload")
)
