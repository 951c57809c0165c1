package grabber

import (
	"context"
	"fmt"

	"github.com/ayahgrab/ayah-grabber/internal/logger"
)

// ExpandRange expands an inclusive (start, end) span into the flat,
// document-ordered sequence of verse references it covers.
// Returns ErrInvalidRange when end precedes start.
//
// Chapter lengths are looked up at most once per distinct chapter within
// one call. A chapter whose length is unknown (degraded metadata, verse
// count 0) contributes an empty sub-range instead of failing the expansion.
func (s *ServiceImpl) ExpandRange(ctx context.Context, start, end VerseReference) ([]VerseReference, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}

	// Same chapter: no metadata needed, the bounds are explicit.
	if start.Chapter == end.Chapter {
		references := make([]VerseReference, 0, end.Verse-start.Verse+1)
		for verse := start.Verse; verse <= end.Verse; verse++ {
			references = append(references, VerseReference{Chapter: start.Chapter, Verse: verse})
		}

		return references, nil
	}

	// One length lookup per distinct chapter within this expansion.
	chapterLengths := make(map[int]int, end.Chapter-start.Chapter)

	lastVerseOf := func(chapterNumber int) int {
		if length, ok := chapterLengths[chapterNumber]; ok {
			return length
		}

		metadata := s.apiClient.GetChapterMetadata(ctx, chapterNumber)

		length := metadata.VerseCount
		if length == 0 {
			logger.Warnf(ctx, "Length of chapter %d is unknown, its verses are skipped", chapterNumber)
		}

		chapterLengths[chapterNumber] = length

		return length
	}

	var references []VerseReference

	// Tail of the starting chapter.
	for verse := start.Verse; verse <= lastVerseOf(start.Chapter); verse++ {
		references = append(references, VerseReference{Chapter: start.Chapter, Verse: verse})
	}

	// Every chapter strictly between start and end, in full.
	for chapterNumber := start.Chapter + 1; chapterNumber < end.Chapter; chapterNumber++ {
		for verse := 1; verse <= lastVerseOf(chapterNumber); verse++ {
			references = append(references, VerseReference{Chapter: chapterNumber, Verse: verse})
		}
	}

	// Head of the ending chapter.
	for verse := 1; verse <= end.Verse; verse++ {
		references = append(references, VerseReference{Chapter: end.Chapter, Verse: verse})
	}

	return references, nil
}
