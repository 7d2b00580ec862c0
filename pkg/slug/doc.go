// Package slug builds URL-safe path segments from free text.
//
// Make lowercases its input and collapses every run of characters outside
// [a-z0-9] into a single separator, trimming separators at both ends:
//
//	slug.Make("ABC & Co. Pvt. Ltd.")
//	// "abc-co-pvt-ltd"
//
// The output never contains leading, trailing or doubled separators, so Make
// is idempotent and its output can be fed back into it safely.
//
// # Options
//
//   - MaxLength: cap the length in runes
//   - Separator: use something other than "-"
//   - StripChars: delete characters instead of turning them into separators
//   - CustomReplace: apply replacements such as {"&": " and "} first
//   - Transliterate: fold diacritics to ASCII ("Zürich" becomes "zurich")
//   - WithSuffix: append a random alphanumeric suffix
//
// Without Transliterate every non-ASCII letter is treated as a separator,
// which keeps the mapping strictly [a-z0-9]-based.
//
// All functions are safe for concurrent use.
package slug
