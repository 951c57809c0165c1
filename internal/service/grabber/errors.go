package grabber

import "errors"

var (
	// ErrInvalidReferenceFormat indicates that a verse reference string is malformed.
	ErrInvalidReferenceFormat = errors.New("invalid verse reference format, expected 'chapter:verse', e.g. '2:5'")
	// ErrInvalidRange indicates that the end reference precedes the start reference.
	ErrInvalidRange = errors.New("end verse must come after start verse")
	// ErrNothingDownloaded indicates that no verse in the range could be downloaded.
	ErrNothingDownloaded = errors.New("no verses were downloaded")
	// ErrNoFallbackURL indicates that the verse metadata holds no fallback URL for the reciter.
	ErrNoFallbackURL = errors.New("no fallback URL available for reciter")
)
