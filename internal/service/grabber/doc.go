// Package grabber provides the core verse-range download workflow: parsing
// "chapter:verse" references, expanding ranges across chapter boundaries,
// fetching each verse with a primary/fallback strategy and on-disk memoization,
// and assembling the downloaded segments into one tagged output file.
package grabber
