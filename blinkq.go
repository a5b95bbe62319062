// Package blinkq implements a fixed-capacity queue of blink patterns that
// drives a single LED, one step at a time. Patterns play in FIFO order; when
// the queue runs dry the LED is driven to its inactive level.
//
// The queue does no internal locking: it is meant to be stepped from a
// single execution context (a timer loop). Callers that enqueue from
// another goroutine must serialize access themselves, e.g. through a
// channel (see internal/player).
package blinkq

import (
	"errors"

	"github.com/clambin/blinkq/pattern"
)

// ErrQueueFull is returned by Enqueue when the queue is at capacity.
var ErrQueueFull = errors.New("queue full")

// Setter drives the physical LED. internal/ledsetter and internal/serialpin
// implement Setter for sysfs LEDs and serial DTR lines.
type Setter interface {
	SetLED(state bool) error
}

// Queue is a fixed-capacity FIFO of blink patterns plus a cursor into the
// pattern currently playing.
type Queue struct {
	setter    Setter
	activeLow bool
	patterns  []pattern.Pattern
	head      int
	count     int
	cursor    int
}

// New creates a Queue that drives setter, with room for capacity patterns.
// If activeLow is true, a pattern's on steps drive the LED low. The LED is
// driven to its inactive level on creation. New panics if capacity < 1.
func New(setter Setter, activeLow bool, capacity int) *Queue {
	if capacity < 1 {
		panic("blinkq: capacity must be at least 1")
	}
	q := &Queue{
		setter:    setter,
		activeLow: activeLow,
		patterns:  make([]pattern.Pattern, capacity),
	}
	_ = q.setter.SetLED(q.activeLow)
	return q
}

// Enqueue adds a pattern to the back of the queue. It returns ErrQueueFull,
// leaving the queue unchanged, when the queue is at capacity. Zero-length
// patterns are accepted; they are skipped during stepping without consuming
// a step.
func (q *Queue) Enqueue(p pattern.Pattern) error {
	if q.count == len(q.patterns) {
		return ErrQueueFull
	}
	q.patterns[(q.head+q.count)%len(q.patterns)] = p
	q.count++
	return nil
}

// Step advances the queue by one time unit: it drives the LED to the state
// of the current pattern's next step, or to its inactive level when the
// queue is empty. It returns the level driven, and any error reported by
// the Setter. The queue advances even if the Setter fails.
//
// Step has no concept of time: call it at the rate that gives the patterns
// their meaning. E.g. for "10" to be a 1Hz blink, call Step every 500ms.
func (q *Queue) Step() (bool, error) {
	for q.count > 0 && q.patterns[q.head].Len() == 0 {
		q.pop()
	}
	if q.count == 0 {
		return q.activeLow, q.setter.SetLED(q.activeLow)
	}
	front := q.patterns[q.head]
	state := front.At(q.cursor) != q.activeLow
	q.cursor++
	if q.cursor == front.Len() {
		q.pop()
	}
	return state, q.setter.SetLED(state)
}

func (q *Queue) pop() {
	q.head = (q.head + 1) % len(q.patterns)
	q.count--
	q.cursor = 0
}

// Len returns the number of queued patterns, including the one currently
// playing.
func (q *Queue) Len() int {
	return q.count
}

// Cap returns the maximum number of patterns the queue can hold.
func (q *Queue) Cap() int {
	return len(q.patterns)
}
