// Package pattern implements binary blink patterns: sequences of up to 32
// on/off steps packed into a uint32, read most significant bit first.
package pattern

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxLen is the maximum number of steps in a Pattern.
const MaxLen = 32

// Pattern is an immutable sequence of on/off steps. The zero value is the
// empty pattern, which plays in zero steps.
type Pattern struct {
	bits   uint32
	length int
}

// New creates a Pattern from its bits, written in natural reading order: the
// most significant of the length bits is the first step.
//
//	// 25% on, 75% off duty cycle
//	p := pattern.New(0b1000, 4)
//
// New panics if length is not in [0, MaxLen].
func New(b uint32, length int) Pattern {
	if length < 0 || length > MaxLen {
		panic(fmt.Sprintf("pattern: invalid length %d", length))
	}
	if length == 0 {
		return Pattern{}
	}
	// discard bits beyond length so they can't leak into Append results
	return Pattern{bits: b & (^uint32(0) >> (MaxLen - length)), length: length}
}

// Len returns the number of steps in the pattern.
func (p Pattern) Len() int {
	return p.length
}

// At returns the state of step i, with At(0) being the first step played.
// It panics if i is out of range.
func (p Pattern) At(i int) bool {
	if i < 0 || i >= p.length {
		panic(fmt.Sprintf("pattern: step %d out of range [0,%d)", i, p.length))
	}
	return (p.bits>>(p.length-1-i))&1 == 1
}

// Append returns a pattern that plays p and then q. If the combined length
// exceeds MaxLen, trailing steps of q are dropped.
func (p Pattern) Append(q Pattern) Pattern {
	if room := MaxLen - p.length; q.length > room {
		q = Pattern{bits: q.bits >> (q.length - room), length: room}
	}
	return Pattern{bits: p.bits<<q.length | q.bits, length: p.length + q.length}
}

// Reverse returns the pattern played back to front.
func (p Pattern) Reverse() Pattern {
	if p.length == 0 {
		return p
	}
	masked := p.bits & (^uint32(0) >> (MaxLen - p.length))
	return Pattern{bits: bits.Reverse32(masked) >> (MaxLen - p.length), length: p.length}
}

// String renders the pattern as a string of 1s and 0s, first step first.
func (p Pattern) String() string {
	var b strings.Builder
	for i := 0; i < p.length; i++ {
		if p.At(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Parse converts a string of 1s and 0s, as produced by String, to a Pattern.
func Parse(s string) (Pattern, error) {
	if len(s) > MaxLen {
		return Pattern{}, fmt.Errorf("pattern too long: %d steps (max %d)", len(s), MaxLen)
	}
	var b uint32
	for _, c := range s {
		b <<= 1
		switch c {
		case '1':
			b |= 1
		case '0':
		default:
			return Pattern{}, fmt.Errorf("invalid step %q: should be '0' or '1'", c)
		}
	}
	return Pattern{bits: b, length: len(s)}, nil
}
