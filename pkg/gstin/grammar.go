package gstin

// Length is the fixed number of characters in a GSTIN.
const Length = 15

// Class is the character class accepted at one position of the grammar.
type Class uint8

const (
	Digit Class = iota + 1
	Letter
	Alnum
	LiteralZ
)

func (c Class) String() string {
	switch c {
	case Digit:
		return "a digit"
	case Letter:
		return "a letter"
	case Alnum:
		return "a letter or digit"
	case LiteralZ:
		return "the letter Z"
	default:
		return "unknown"
	}
}

// Accepts reports whether b belongs to the class. Only uppercase letters count.
func (c Class) Accepts(b byte) bool {
	switch c {
	case Digit:
		return b >= '0' && b <= '9'
	case Letter:
		return b >= 'A' && b <= 'Z'
	case Alnum:
		return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z')
	case LiteralZ:
		return b == 'Z'
	default:
		return false
	}
}

// grammar lists the class of every position:
// state code (2 digits), PAN (5 letters, 4 digits, 1 letter),
// entity number, the literal Z, and the check character.
var grammar = [Length]Class{
	Digit, Digit,
	Letter, Letter, Letter, Letter, Letter,
	Digit, Digit, Digit, Digit,
	Letter,
	Alnum,
	LiteralZ,
	Alnum,
}

// Grammar returns a copy of the positional grammar.
func Grammar() [Length]Class {
	return grammar
}

// check validates s against the grammar and returns the first failing position,
// or -1 when s matches. s must be exactly Length bytes.
func check(s string) int {
	for i, c := range grammar {
		if !c.Accepts(s[i]) {
			return i
		}
	}
	return -1
}
