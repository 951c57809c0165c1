// Package audio assembles downloaded verse recordings into a single playable file.
// It validates each segment as a decodable MPEG stream, strips per-segment metadata
// tag blocks, and concatenates the remaining audio frames in document order.
package audio
