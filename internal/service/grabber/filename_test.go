package grabber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSynthesizeFilename tests deterministic output filename synthesis.
func TestSynthesizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startText   string
		endText     string
		chapterName string
		expected    string
	}{
		{
			name:        "hyphenated chapter name",
			startText:   "1:1",
			endText:     "1:7",
			chapterName: "Al-Faatiha",
			expected:    "001_AlFaatiha_001-007.mp3",
		},
		{
			name:        "chapter name with spaces and apostrophe",
			startText:   "56:1",
			endText:     "56:96",
			chapterName: "Al-Waaqi'a",
			expected:    "056_AlWaaqia_001-096.mp3",
		},
		{
			name:        "degraded placeholder name",
			startText:   "42:3",
			endText:     "42:5",
			chapterName: "Chapter42",
			expected:    "042_Chapter42_003-005.mp3",
		},
		{
			name:        "cross-chapter range keeps starting chapter",
			startText:   "1:5",
			endText:     "3:2",
			chapterName: "Al-Faatiha",
			expected:    "001_AlFaatiha_005-002.mp3",
		},
		{
			name:        "verse numbers above padding width",
			startText:   "2:1000",
			endText:     "2:1001",
			chapterName: "Al-Baqara",
			expected:    "002_AlBaqara_1000-1001.mp3",
		},
		{
			name:        "malformed start falls back verbatim",
			startText:   "abc",
			endText:     "1:7",
			chapterName: "Al-Faatiha",
			expected:    "quran_audio_abc-1:7.mp3",
		},
		{
			name:        "malformed end falls back verbatim",
			startText:   "1:1",
			endText:     "",
			chapterName: "Al-Faatiha",
			expected:    "quran_audio_1:1-.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SynthesizeFilename(tt.startText, tt.endText, tt.chapterName))
		})
	}
}
