package grabber

import (
	"fmt"
	"regexp"

	"github.com/ayahgrab/ayah-grabber/internal/constants"
)

var (
	// chapterNameFilterPattern matches runes dropped from the chapter name part.
	// The name keeps letters, digits, underscore and dot only, so a hyphenated
	// name like "Al-Faatiha" collapses to "AlFaatiha" and cannot be confused
	// with the verse-span separator.
	chapterNameFilterPattern = regexp.MustCompile(`[^A-Za-z0-9_.]+`)

	// filenameFilterPattern matches runes dropped from the composed filename.
	filenameFilterPattern = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// SynthesizeFilename derives a deterministic, filesystem-safe output name
// from the raw range references and the chapter display name:
// "{chapter:03}_{chapterName}_{startVerse:03}-{endVerse:03}.mp3".
// When either reference fails to parse, it falls back to
// "quran_audio_{start}-{end}.mp3" with the raw input text verbatim.
func SynthesizeFilename(startText, endText, chapterName string) string {
	start, startErr := ParseReference(startText)
	end, endErr := ParseReference(endText)

	if startErr != nil || endErr != nil {
		return fmt.Sprintf("quran_audio_%s-%s%s", startText, endText, constants.ExtensionMP3)
	}

	filename := fmt.Sprintf("%03d_%s_%03d-%03d%s",
		start.Chapter,
		chapterNameFilterPattern.ReplaceAllString(chapterName, ""),
		start.Verse,
		end.Verse,
		constants.ExtensionMP3)

	return filenameFilterPattern.ReplaceAllString(filename, "")
}
