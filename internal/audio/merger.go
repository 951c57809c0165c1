package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ayahgrab/ayah-grabber/internal/constants"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
)

const (
	// id3v2HeaderSize is the size of an ID3v2 tag header in bytes.
	id3v2HeaderSize = 10

	// id3v1TrailerSize is the size of an ID3v1 tag block at the end of a file.
	id3v1TrailerSize = 128

	// probeBufferSize is the number of decoded PCM bytes read to confirm
	// that a segment actually contains playable frames.
	probeBufferSize = 4096

	// overwriteFileOptions are the file options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
)

var (
	// ErrNoInputFiles indicates that the merge was requested with an empty input list.
	ErrNoInputFiles = errors.New("no input files to merge")
	// ErrUnplayableSegment indicates that a segment could not be decoded as MPEG audio.
	ErrUnplayableSegment = errors.New("segment is not playable MPEG audio")
)

// ProbeFunc checks whether the reader holds a decodable MPEG audio stream.
type ProbeFunc func(r io.Reader) error

// MergeResult describes the outcome of a merge operation.
type MergeResult struct {
	// SegmentsMerged is the number of input files written to the output.
	SegmentsMerged int
	// SkippedPaths lists input files that were dropped as unreadable or unplayable.
	SkippedPaths []string
	// BytesWritten is the total audio payload size of the output file.
	BytesWritten int64
}

// Merger defines the interface for concatenating verse audio files.
type Merger interface {
	// MergeFiles concatenates the input files into a single MPEG stream at
	// outputPath, preserving input order. The first segment must be playable;
	// later segments that fail to read or decode are skipped with a warning.
	MergeFiles(ctx context.Context, inputPaths []string, outputPath string) (*MergeResult, error)
}

// MergerImpl implements the Merger interface.
type MergerImpl struct {
	// probe validates segment payloads before they are written.
	probe ProbeFunc
}

// NewMerger creates a Merger backed by the default MPEG decoder probe.
func NewMerger() Merger {
	return &MergerImpl{probe: probeMPEGStream}
}

// NewMergerWithProbe creates a Merger with a custom segment probe.
func NewMergerWithProbe(probe ProbeFunc) Merger {
	return &MergerImpl{probe: probe}
}

// MergeFiles concatenates the input files into a single MPEG stream at outputPath.
// The output is written to a temporary file first and renamed only on success,
// so a failed merge never leaves a partial file at the final path.
func (m *MergerImpl) MergeFiles(ctx context.Context, inputPaths []string, outputPath string) (*MergeResult, error) {
	if len(inputPaths) == 0 {
		return nil, ErrNoInputFiles
	}

	tempPath := outputPath + constants.ExtensionPart

	output, err := os.OpenFile(filepath.Clean(tempPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary output file: %w", err)
	}

	var mergeSucceeded bool

	defer func() {
		closeErr := output.Close()

		if !mergeSucceeded {
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempPath, removeErr, closeErr)
			}
		}
	}()

	result := &MergeResult{}

	for i, inputPath := range inputPaths {
		// Stop immediately if the context was canceled (CTRL+C pressed).
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		segment, err := m.loadSegment(inputPath)
		if err != nil {
			// The first segment anchors the output stream parameters,
			// so the merge cannot proceed without it.
			if i == 0 {
				return nil, fmt.Errorf("failed to load first segment '%s': %w", inputPath, err)
			}

			logger.Warnf(ctx, "Skipping segment '%s': %v", inputPath, err)
			result.SkippedPaths = append(result.SkippedPaths, inputPath)

			continue
		}

		written, err := output.Write(segment)
		if err != nil {
			return nil, fmt.Errorf("failed to write segment '%s': %w", inputPath, err)
		}

		result.SegmentsMerged++
		result.BytesWritten += int64(written)
	}

	if err = output.Sync(); err != nil {
		return nil, fmt.Errorf("failed to flush output file: %w", err)
	}

	if err = os.Rename(tempPath, outputPath); err != nil {
		return nil, fmt.Errorf("failed to finalize output file: %w", err)
	}

	mergeSucceeded = true

	return result, nil
}

// loadSegment reads a segment file, validates it and strips its tag blocks.
func (m *MergerImpl) loadSegment(inputPath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, err
	}

	payload := stripTagBlocks(data)
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: no audio frames after tag removal", ErrUnplayableSegment)
	}

	if err = m.probe(bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnplayableSegment, err) //nolint:errorlint // Probe error is informational.
	}

	return payload, nil
}

// stripTagBlocks removes the leading ID3v2 tag and the trailing ID3v1 tag
// so that concatenated segments form one uninterrupted frame sequence.
func stripTagBlocks(data []byte) []byte {
	data = stripID3v2(data)

	return stripID3v1(data)
}

// stripID3v2 removes a leading ID3v2 tag block if present.
func stripID3v2(data []byte) []byte {
	if len(data) < id3v2HeaderSize || !bytes.HasPrefix(data, []byte("ID3")) {
		return data
	}

	// The tag size is a 28-bit synchsafe integer stored in bytes 6-9.
	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)

	tagEnd := id3v2HeaderSize + size
	if tagEnd > len(data) {
		// Truncated tag, drop everything rather than emit garbage frames.
		return nil
	}

	return data[tagEnd:]
}

// stripID3v1 removes a trailing ID3v1 tag block if present.
func stripID3v1(data []byte) []byte {
	if len(data) < id3v1TrailerSize {
		return data
	}

	trailer := data[len(data)-id3v1TrailerSize:]
	if bytes.HasPrefix(trailer, []byte("TAG")) {
		return data[:len(data)-id3v1TrailerSize]
	}

	return data
}

// probeMPEGStream confirms the reader holds decodable MPEG frames by
// decoding a small amount of PCM data.
func probeMPEGStream(r io.Reader) error {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return err
	}

	buffer := make([]byte, probeBufferSize)

	if _, err = decoder.Read(buffer); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
