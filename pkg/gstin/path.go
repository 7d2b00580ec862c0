package gstin

import (
	"strings"

	"github.com/dmitrymomot/gstcheck/pkg/slug"
)

// PathPrefix is the route under which checker pages live.
const PathPrefix = "/gst-return-checker/"

// SlugFor builds the canonical path segment "{slug(name)}-{gstin}" with the
// identifier in lowercase. When name has nothing slug-worthy the segment is
// the identifier alone.
func SlugFor(name string, id GSTIN) string {
	base := slug.Make(name)
	if base == "" {
		return id.Lower()
	}
	return base + "-" + id.Lower()
}

// Path returns the canonical checker URL path for a business, e.g.
// "/gst-return-checker/abc-co-pvt-ltd-27aabcu9603r1zm/".
func Path(name string, id GSTIN) string {
	return PathPrefix + SlugFor(name, id) + "/"
}

// IsCanonical reports whether path already is the canonical path for name and id.
// A missing trailing slash is tolerated; case is not.
func IsCanonical(path, name string, id GSTIN) bool {
	want := Path(name, id)
	return path == want || path+"/" == want
}

// FromSegment recovers the identifier from a checker path segment.
// SlugFor always puts the identifier last, so a trailing GSTIN wins over one
// that a business name happens to slug into. Other segments fall back to
// Extract and its first match.
func FromSegment(seg string) (GSTIN, bool) {
	if len(seg) >= Length {
		if tail := strings.ToUpper(seg[len(seg)-Length:]); len(tail) == Length && check(tail) < 0 {
			return GSTIN(tail), true
		}
	}
	return Extract(seg)
}
