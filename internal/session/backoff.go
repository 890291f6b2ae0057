package session

import "time"

// Backoff produces the reconnect delay sequence: exponential from the
// initial delay, capped at max, never giving up. Not safe for concurrent
// use; only the Run loop touches it.
type Backoff struct {
	initial time.Duration
	max     time.Duration
	next    time.Duration
}

// NewBackoff creates a backoff with the given initial delay and ceiling.
func NewBackoff(initial, max time.Duration) *Backoff {
	if initial <= 0 {
		initial = time.Second
	}
	if max < initial {
		max = initial
	}
	return &Backoff{initial: initial, max: max}
}

// Next returns the delay to wait before the next attempt and advances the
// sequence. The returned delays are non-decreasing until Reset.
func (b *Backoff) Next() time.Duration {
	if b.next == 0 {
		b.next = b.initial
	}
	d := b.next
	b.next *= 2
	if b.next > b.max {
		b.next = b.max
	}
	return d
}

// Reset restarts the sequence after a successful connection.
func (b *Backoff) Reset() {
	b.next = 0
}
