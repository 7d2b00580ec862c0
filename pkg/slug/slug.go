package slug

import (
	"crypto/rand"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	stripChars    string
	customReplace map[string]string
	suffixLength  int
	transliterate bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
	}
}

// MaxLength caps the slug length in runes. Zero means no limit.
// A slug cut at the limit never ends with a separator.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator replaces the default "-" separator.
// An empty separator is ignored.
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// StripChars removes the given characters before slugification,
// so "O'Neil" becomes "oneil" instead of "o-neil".
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification.
// Replacements run in lexical order of their keys.
// For example: {"&": " and ", "@": " at "}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of the given length.
// Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Transliterate folds Latin diacritics to ASCII before the character filter runs,
// so "Café Zürich" becomes "cafe-zurich" rather than "caf-z-rich".
func Transliterate() Option {
	return func(c *config) {
		c.transliterate = true
	}
}

// Make creates a URL-safe slug from s.
//
// The input is lowercased and every maximal run of characters outside
// [a-z0-9] is collapsed into a single separator. The result never starts or
// ends with a separator and never contains two separators in a row, which makes
// Make idempotent: Make(Make(s)) == Make(s).
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.customReplace) > 0 {
		keys := make([]string, 0, len(cfg.customReplace))
		for k := range cfg.customReplace {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			s = strings.ReplaceAll(s, k, cfg.customReplace[k])
		}
	}

	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	if cfg.transliterate {
		s = fold(s)
	}

	var b strings.Builder
	b.Grow(len(s))

	sepLen := len([]rune(cfg.separator))
	pending := false // a separator is owed before the next kept rune
	count := 0

	for _, r := range s {
		r = unicode.ToLower(r)

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			need := 1
			if pending {
				need += sepLen
			}
			if cfg.maxLength > 0 && count+need > cfg.maxLength {
				break
			}
			if pending {
				b.WriteString(cfg.separator)
				count += sepLen
				pending = false
			}
			b.WriteRune(r)
			count++
			continue
		}

		if b.Len() > 0 {
			pending = true
		}
	}

	result := b.String()

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

func appendSuffix(result string, cfg *config) string {
	n := cfg.suffixLength
	if cfg.maxLength > 0 && n > cfg.maxLength {
		n = cfg.maxLength
	}
	suffix := generateSuffix(n)

	sepLen := len([]rune(cfg.separator))
	if cfg.maxLength > 0 {
		room := cfg.maxLength - sepLen - n
		if room <= 0 {
			return suffix
		}
		if runesOf := []rune(result); len(runesOf) > room {
			result = strings.TrimSuffix(string(runesOf[:room]), cfg.separator)
		}
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

// foldMap covers letters that do not decompose under NFD.
var foldMap = map[rune]string{
	'ß': "ss", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O", 'ł': "l", 'Ł': "L", 'đ': "d", 'Đ': "D",
	'þ': "th", 'Þ': "TH", 'ð': "d", 'Ð': "D", 'ı': "i",
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if rep, ok := foldMap[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func generateSuffix(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
