// SPDX-License-Identifier: MIT

package history

import (
	"errors"
	"sync"
)

// DefaultCapacity is the number of records a Log keeps before evicting.
const DefaultCapacity = 20

// ErrBadCapacity is returned by New when the capacity is not positive.
var ErrBadCapacity = errors.New("history: capacity must be > 0")

// Log is a bounded, most-recent-first ledger of human-readable records.
type Log struct {
	mu   sync.RWMutex
	buf  []string // ring storage, len == capacity
	head int      // index of the next write
	size int      // number of live records, ≤ len(buf)
}

// New returns an empty Log holding at most capacity records.
func New(capacity int) (*Log, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Log{buf: make([]string, capacity)}, nil
}

// NewDefault returns an empty Log with DefaultCapacity.
func NewDefault() *Log {
	return &Log{buf: make([]string, DefaultCapacity)}
}

// Add records entry as the newest record, evicting the oldest one when full.
// Complexity: O(1).
func (l *Log) Add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf[l.head] = entry
	l.head = (l.head + 1) % len(l.buf)
	if l.size < len(l.buf) {
		l.size++
	}
}

// Entries returns a copy of the records, newest first.
// Complexity: O(n).
func (l *Log) Entries() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, l.size)
	idx := l.head
	for i := 0; i < l.size; i++ {
		idx = (idx - 1 + len(l.buf)) % len(l.buf)
		out[i] = l.buf[idx]
	}

	return out
}

// Latest returns the newest record, or false when the log is empty.
func (l *Log) Latest() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.size == 0 {
		return "", false
	}

	return l.buf[(l.head-1+len(l.buf))%len(l.buf)], true
}

// Len reports the number of records currently held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.size
}

// Cap reports the maximum number of records.
func (l *Log) Cap() int {
	return len(l.buf)
}

// Clear drops every record.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.buf {
		l.buf[i] = ""
	}
	l.head, l.size = 0, 0
}
