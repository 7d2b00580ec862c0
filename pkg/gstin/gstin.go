package gstin

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// GSTIN is a normalized, grammar-checked GST identification number.
// The zero value is not valid; obtain one through Parse or Extract.
type GSTIN string

// Parse normalizes raw and checks it against the positional grammar.
//
// Normalization uppercases the input and removes all whitespace, so
// " 27aabcu9603r1zm " and "27AABCU 9603R1ZM" both yield "27AABCU9603R1ZM".
// A normalized value that is not 15 characters long fails with ErrInvalidLength;
// one that is fails the grammar with a *FormatError wrapping ErrInvalidFormat.
func Parse(raw string) (GSTIN, error) {
	s := Normalize(raw)
	if utf8.RuneCountInString(s) != Length {
		return "", ErrInvalidLength
	}

	pos := 0
	for _, r := range s {
		if r >= utf8.RuneSelf || !grammar[pos].Accepts(byte(r)) {
			return "", &FormatError{Pos: pos, Got: r, Want: grammar[pos]}
		}
		pos++
	}
	return GSTIN(s), nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for constants in tests and fixtures.
func MustParse(raw string) GSTIN {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// Normalize uppercases s and strips every whitespace character.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

func (g GSTIN) String() string {
	return string(g)
}

// Lower is the form used inside URL slugs.
func (g GSTIN) Lower() string {
	return strings.ToLower(string(g))
}

// StateCode returns the two-digit state prefix.
func (g GSTIN) StateCode() string {
	if len(g) < 2 {
		return ""
	}
	return string(g[:2])
}

// Region returns the state or territory name for the state code,
// or Unknown when the code is not in the table.
func (g GSTIN) Region() string {
	return RegionName(g.StateCode())
}

// PAN returns the embedded 10-character permanent account number.
func (g GSTIN) PAN() string {
	if len(g) != Length {
		return ""
	}
	return string(g[2:12])
}

// EntityNumber is the 13th character: the registration count for the PAN in the state.
func (g GSTIN) EntityNumber() byte {
	if len(g) != Length {
		return 0
	}
	return g[12]
}

// CheckChar is the trailing check character.
func (g GSTIN) CheckChar() byte {
	if len(g) != Length {
		return 0
	}
	return g[14]
}
