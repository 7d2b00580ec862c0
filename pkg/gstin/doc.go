// Package gstin parses, validates and locates Indian GST identification
// numbers and builds the canonical checker URLs that embed them.
//
// A GSTIN is 15 characters with a fixed positional grammar:
//
//	27 AABCU 9603 R 1 Z M
//	│  │     │    │ │ │ └ check character (letter or digit)
//	│  │     │    │ │ └── literal Z
//	│  │     │    │ └──── entity number (letter or digit)
//	│  └─────┴────┴────── PAN: 5 letters, 4 digits, 1 letter
//	└──────────────────── state code (2 digits)
//
// The grammar is kept as a table of per-position classes (see Grammar) rather
// than a regular expression, so each position can be checked and reported on
// its own.
//
// # Parsing
//
//	id, err := gstin.Parse(" 27aabcu9603r1zm ")
//	// id == "27AABCU9603R1ZM", id.Region() == "Maharashtra"
//
// Parse fails with ErrInvalidLength or with a *FormatError that wraps
// ErrInvalidFormat.
//
// # Slugs
//
// Checker pages live at PathPrefix + "{slug(name)}-{gstin}/". FromSegment
// recovers the identifier from such a segment, preferring the trailing one:
//
//	seg := gstin.SlugFor("ABC & Co. Pvt. Ltd.", id) // "abc-co-pvt-ltd-27aabcu9603r1zm"
//	got, ok := gstin.FromSegment(seg)               // "27AABCU9603R1ZM", true
//
// Extract returns the first match anywhere in a string.
package gstin
