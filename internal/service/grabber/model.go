package grabber

import (
	"fmt"
	"time"
)

// VerseReference identifies a single verse by chapter and verse number.
// Both fields are at least 1 for any reference produced by ParseReference.
type VerseReference struct {
	// Chapter is the chapter number.
	Chapter int
	// Verse is the verse number within the chapter.
	Verse int
}

// String returns the canonical "chapter:verse" form of the reference.
func (r VerseReference) String() string {
	return fmt.Sprintf("%d:%d", r.Chapter, r.Verse)
}

// After reports whether r comes after other in document order.
func (r VerseReference) After(other VerseReference) bool {
	if r.Chapter != other.Chapter {
		return r.Chapter > other.Chapter
	}

	return r.Verse > other.Verse
}

// GrabResult describes a completed grab job.
type GrabResult struct {
	// OutputPath is the path of the merged output file.
	OutputPath string
	// ChapterName is the display name of the starting chapter.
	ChapterName string
	// VersesRequested is the number of verses in the expanded range.
	VersesRequested int
	// VersesDownloaded is the number of verses fetched successfully.
	VersesDownloaded int
	// SegmentsMerged is the number of segments written into the output file.
	SegmentsMerged int
}

// fetchVerseResult describes the outcome of a single verse fetch.
type fetchVerseResult struct {
	// path is the local path of the verse audio file.
	path string
	// fromCache reports whether the file was already present on disk.
	fromCache bool
	// bytesDownloaded is the number of bytes fetched over the network.
	bytesDownloaded int64
}

// GrabError records a recovered failure with enough context for the summary.
type GrabError struct {
	// Reference is the "chapter:verse" reference the failure belongs to.
	Reference string
	// Phase describes the step that failed.
	Phase string
	// ErrorMessage is the failure description.
	ErrorMessage string
}

// SessionStatistics accumulates counters over one grab session.
type SessionStatistics struct {
	// TotalVersesProcessed is the number of verses the range loop visited.
	TotalVersesProcessed int64
	// VersesDownloaded is the number of verses fetched over the network.
	VersesDownloaded int64
	// VersesFromCache is the number of verses served from the on-disk cache.
	VersesFromCache int64
	// VersesFailed is the number of verses that could not be fetched.
	VersesFailed int64
	// SegmentsSkipped is the number of downloaded files dropped during merge.
	SegmentsSkipped int64
	// TotalBytesDownloaded is the total network payload size.
	TotalBytesDownloaded int64
	// StartTime is when the session started.
	StartTime time.Time
	// EndTime is when the session finished.
	EndTime time.Time
	// Errors holds the recovered failures encountered during the session.
	Errors []GrabError
}
