// Package morse contains the international morse code as blink patterns,
// and encodes text into sequences of them.
//
// A dot is "10", a dash is "110": each symbol carries its own one-step gap,
// so patterns can be queued back to back.
package morse

import (
	"fmt"
	"strings"

	"github.com/clambin/blinkq/pattern"
)

var (
	A = pattern.New(0b10110, 5)
	B = pattern.New(0b110101010, 9)
	C = pattern.New(0b1101011010, 10)
	D = pattern.New(0b1101010, 7)
	E = pattern.New(0b10, 2)
	F = pattern.New(0b101011010, 9)
	G = pattern.New(0b11011010, 8)
	H = pattern.New(0b10101010, 8)
	I = pattern.New(0b1010, 4)
	J = pattern.New(0b10110110110, 11)
	K = pattern.New(0b11010110, 8)
	L = pattern.New(0b101101010, 9)
	M = pattern.New(0b110110, 6)
	N = pattern.New(0b11010, 5)
	O = pattern.New(0b110110110, 9)
	P = pattern.New(0b1011011010, 10)
	Q = pattern.New(0b11011010110, 11)
	R = pattern.New(0b1011010, 7)
	S = pattern.New(0b101010, 6)
	T = pattern.New(0b110, 3)
	U = pattern.New(0b1010110, 7)
	V = pattern.New(0b101010110, 9)
	W = pattern.New(0b10110110, 8)
	X = pattern.New(0b1101010110, 10)
	Y = pattern.New(0b11010110110, 11)
	Z = pattern.New(0b1101101010, 10)

	Zero  = pattern.New(0b110110110110110, 15)
	One   = pattern.New(0b10110110110110, 14)
	Two   = pattern.New(0b1010110110110, 13)
	Three = pattern.New(0b101010110110, 12)
	Four  = pattern.New(0b10101010110, 11)
	Five  = pattern.New(0b1010101010, 10)
	Six   = pattern.New(0b11010101010, 11)
	Seven = pattern.New(0b110110101010, 12)
	Eight = pattern.New(0b1101101101010, 13)
	Nine  = pattern.New(0b11011011011010, 14)

	FullStop      = pattern.New(0b101101011010110, 15)
	Comma         = pattern.New(0b1101101010110110, 16)
	Colon         = pattern.New(0b110110110101010, 15)
	QuestionMark  = pattern.New(0b10101101101010, 14)
	Apostrophe    = pattern.New(0b1011011011011010, 16)
	Hyphen        = pattern.New(0b11010101010110, 14)
	FractionBar   = pattern.New(0b110101011010, 12)
	Brackets      = pattern.New(0b1101011011010110, 16)
	QuotationMark = pattern.New(0b10110101011010, 14)
	AtSign        = pattern.New(0b101101101011010, 15)
	EqualsSign    = pattern.New(0b110101010110, 12)

	// Error is the error/correction prosign: eight dots
	Error = pattern.New(0b1010101010101010, 16)

	SOS = S.Append(O).Append(S)
)

var code = map[rune]pattern.Pattern{
	'A': A, 'B': B, 'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'H': H, 'I': I,
	'J': J, 'K': K, 'L': L, 'M': M, 'N': N, 'O': O, 'P': P, 'Q': Q, 'R': R,
	'S': S, 'T': T, 'U': U, 'V': V, 'W': W, 'X': X, 'Y': Y, 'Z': Z,
	'0': Zero, '1': One, '2': Two, '3': Three, '4': Four,
	'5': Five, '6': Six, '7': Seven, '8': Eight, '9': Nine,
	'.': FullStop, ',': Comma, ':': Colon, '?': QuestionMark,
	'\'': Apostrophe, '-': Hyphen, '/': FractionBar,
	'(': Brackets, ')': Brackets, '"': QuotationMark,
	'@': AtSign, '=': EqualsSign,
}

// letterGap extends a symbol's trailing gap to the three steps separating
// letters. wordGap adds the further four steps separating words.
var (
	letterGap = pattern.New(0, 2)
	wordGap   = pattern.New(0, 4)
)

// Encode converts text to a sequence of morse patterns, one per character,
// with gap patterns between letters and words. It fails on characters that
// have no morse code.
func Encode(text string) ([]pattern.Pattern, error) {
	var patterns []pattern.Pattern
	for _, c := range strings.ToUpper(text) {
		if c == ' ' {
			patterns = append(patterns, wordGap)
			continue
		}
		p, ok := code[c]
		if !ok {
			return nil, fmt.Errorf("no morse code for %q", c)
		}
		patterns = append(patterns, p, letterGap)
	}
	return patterns, nil
}
