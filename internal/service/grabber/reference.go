package grabber

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// referencePattern matches syntactically valid "chapter:verse" strings.
var referencePattern = regexp.MustCompile(`^\d+:\d+$`)

// referencePartsCount is the number of integers in a verse reference.
const referencePartsCount = 2

// ParseReference parses a "chapter:verse" string into a VerseReference.
// Both numbers must be at least 1. Returns ErrInvalidReferenceFormat
// carrying the offending text on any malformed input. Pure function.
func ParseReference(text string) (VerseReference, error) {
	trimmed := strings.TrimSpace(text)
	if !referencePattern.MatchString(trimmed) {
		return VerseReference{}, fmt.Errorf("%w: %q", ErrInvalidReferenceFormat, text)
	}

	parts := strings.SplitN(trimmed, ":", referencePartsCount)

	chapter, err := strconv.Atoi(parts[0])
	if err != nil {
		return VerseReference{}, fmt.Errorf("%w: %q", ErrInvalidReferenceFormat, text)
	}

	verse, err := strconv.Atoi(parts[1])
	if err != nil {
		return VerseReference{}, fmt.Errorf("%w: %q", ErrInvalidReferenceFormat, text)
	}

	// Zero is syntactically valid but semantically impossible:
	// chapters and verses are numbered from 1.
	if chapter < 1 || verse < 1 {
		return VerseReference{}, fmt.Errorf("%w: %q", ErrInvalidReferenceFormat, text)
	}

	return VerseReference{Chapter: chapter, Verse: verse}, nil
}
