// Package quranapi provides a client for the Quran metadata and audio services.
// It exposes chapter metadata, per-verse metadata with per-reciter fallback URLs,
// and the reciter directory, degrading to safe defaults when the remote service
// is unreachable so that callers never have to handle catalog failures.
package quranapi
