package quranapi

const (
	// recitersURI is the URI path for the reciter directory endpoint.
	recitersURI = "reciters.json"

	// chaptersCacheSize defines the maximum number of chapter entries to cache.
	// The text has 114 chapters, so every chapter fits with room to spare.
	chaptersCacheSize = 128
)

// fallbackReciters is the reciter directory used when the remote fetch fails.
// It replaces the remote catalog wholesale for the rest of the session,
// never merging with previously fetched data.
//
//nolint:gochecknoglobals // This is an immutable map used as a constant fallback catalog.
var fallbackReciters = map[string]string{
	"1": "Mishary Rashid Al Afasy",
	"2": "Abu Bakr Al Shatri",
	"3": "Nasser Al Qatami",
	"4": "Yasser Al Dosari",
	"5": "Hani Ar Rifai",
}
