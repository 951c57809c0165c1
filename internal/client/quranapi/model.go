package quranapi

import "fmt"

// ChapterMetadata describes a single chapter of the text.
type ChapterMetadata struct {
	// Number is the chapter number, starting at 1.
	Number int
	// Name is the transliterated chapter name.
	// Degraded records carry a "Chapter{N}" placeholder instead.
	Name string
	// VerseCount is the number of verses in the chapter.
	// Zero means the length is unknown (the metadata fetch failed);
	// callers must treat such chapters as empty rather than iterating.
	VerseCount int
}

// IsDegraded reports whether this record was synthesized after a failed
// or rejected metadata fetch.
func (m *ChapterMetadata) IsDegraded() bool {
	return m.VerseCount <= 0
}

// chapterPayload is the wire format of the chapter metadata endpoint.
type chapterPayload struct {
	// SurahName is the transliterated chapter name.
	SurahName string `json:"surahName"`
	// TotalAyah is the number of verses in the chapter.
	TotalAyah int `json:"totalAyah"`
}

// validate rejects payloads that would poison downstream range logic.
func (p *chapterPayload) validate() error {
	if p.TotalAyah <= 0 {
		return fmt.Errorf("%w: totalAyah = %d", ErrMalformedChapterPayload, p.TotalAyah)
	}

	return nil
}

// VerseMetadata is the wire format of the per-verse metadata endpoint.
// It carries per-reciter audio sources used as the fallback download path.
type VerseMetadata struct {
	// Audio maps reciter IDs to their audio source descriptors.
	Audio map[string]*ReciterAudio `json:"audio"`
}

// ReciterAudio describes one reciter's audio sources for a single verse.
type ReciterAudio struct {
	// ReciterName is the reciter's display name.
	ReciterName string `json:"reciter"`
	// URL is the mirrored audio location.
	URL string `json:"url"`
	// OriginalURL is the upstream audio location, used as the fallback
	// when the primary convention-based URL fails.
	OriginalURL string `json:"originalUrl"`
}

// FallbackURL returns the fallback audio URL for the given reciter,
// or an empty string if none is available.
func (m *VerseMetadata) FallbackURL(reciterID string) string {
	if m == nil || m.Audio == nil {
		return ""
	}

	audio, ok := m.Audio[reciterID]
	if !ok || audio == nil {
		return ""
	}

	return audio.OriginalURL
}

// degradedChapterMetadata builds the placeholder record returned when
// chapter metadata cannot be fetched or fails validation.
func degradedChapterMetadata(chapterNumber int) *ChapterMetadata {
	return &ChapterMetadata{
		Number:     chapterNumber,
		Name:       fmt.Sprintf("Chapter%d", chapterNumber),
		VerseCount: 0,
	}
}
