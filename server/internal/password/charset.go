package password

import "strings"

// Class identifies one of the four character classes.
type Class int

// The character classes, in the order mandatory characters are drawn.
const (
	Lowercase Class = iota
	Uppercase
	Digit
	Symbol
)

// Character pools. They are pairwise disjoint; Alphabet is their union.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	// SymbolChars is the ASCII punctuation set, independent of locale.
	SymbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	Alphabet = LowercaseChars + UppercaseChars + DigitChars + SymbolChars
)

// Classes lists every class once.
var Classes = [...]Class{Lowercase, Uppercase, Digit, Symbol}

// Chars returns the pool of characters belonging to c.
func (c Class) Chars() string {
	switch c {
	case Lowercase:
		return LowercaseChars
	case Uppercase:
		return UppercaseChars
	case Digit:
		return DigitChars
	case Symbol:
		return SymbolChars
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// ClassOf reports the class r belongs to. ok is false for runes outside the
// alphabet (non-ASCII letters, spaces, control characters).
func ClassOf(r rune) (c Class, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Lowercase, true
	case r >= 'A' && r <= 'Z':
		return Uppercase, true
	case r >= '0' && r <= '9':
		return Digit, true
	case r < 0x80 && strings.ContainsRune(SymbolChars, r):
		return Symbol, true
	default:
		return 0, false
	}
}
