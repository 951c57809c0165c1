package quranapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChapterMetadata_IsDegraded tests the IsDegraded method.
func TestChapterMetadata_IsDegraded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		metadata *ChapterMetadata
		expected bool
	}{
		{
			name:     "healthy record",
			metadata: &ChapterMetadata{Number: 1, Name: "Al-Faatiha", VerseCount: 7},
			expected: false,
		},
		{
			name:     "zero verse count",
			metadata: &ChapterMetadata{Number: 42, Name: "Chapter42", VerseCount: 0},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.metadata.IsDegraded())
		})
	}
}

// TestChapterPayload_Validate tests wire payload validation.
func TestChapterPayload_Validate(t *testing.T) {
	t.Parallel()

	valid := &chapterPayload{SurahName: "Al-Baqara", TotalAyah: 286}
	require.NoError(t, valid.validate())

	invalid := &chapterPayload{SurahName: "Broken", TotalAyah: 0}
	require.ErrorIs(t, invalid.validate(), ErrMalformedChapterPayload)

	negative := &chapterPayload{TotalAyah: -1}
	require.ErrorIs(t, negative.validate(), ErrMalformedChapterPayload)
}

// TestVerseMetadata_FallbackURL tests fallback URL extraction.
func TestVerseMetadata_FallbackURL(t *testing.T) {
	t.Parallel()

	metadata := &VerseMetadata{
		Audio: map[string]*ReciterAudio{
			"1": {ReciterName: "Mishary Rashid Al Afasy", OriginalURL: "https://cdn.example.com/1_1.mp3"},
			"2": nil,
			"3": {ReciterName: "Nasser Al Qatami"},
		},
	}

	assert.Equal(t, "https://cdn.example.com/1_1.mp3", metadata.FallbackURL("1"))
	assert.Empty(t, metadata.FallbackURL("2"), "nil entry yields no URL")
	assert.Empty(t, metadata.FallbackURL("3"), "missing originalUrl yields no URL")
	assert.Empty(t, metadata.FallbackURL("9"), "unknown reciter yields no URL")

	var nilMetadata *VerseMetadata

	assert.Empty(t, nilMetadata.FallbackURL("1"))
}

// TestDegradedChapterMetadata tests placeholder record construction.
func TestDegradedChapterMetadata(t *testing.T) {
	t.Parallel()

	metadata := degradedChapterMetadata(114)
	assert.Equal(t, 114, metadata.Number)
	assert.Equal(t, "Chapter114", metadata.Name)
	assert.Equal(t, 0, metadata.VerseCount)
	assert.True(t, metadata.IsDegraded())
}
