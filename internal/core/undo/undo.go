// Package undo provides the bounded LIFO journal of pre-update field values
// backing single-step undo. The stack stores entries, nothing more; replaying
// previousFields against the CRM is the orchestrating caller's job.
//
// Not safe for concurrent use; callers that share a stack across goroutines
// own the locking
package undo

import "time"

// Capacity is the hard cap on retained entries. Pushing beyond it evicts the
// oldest entry rather than failing: FIFO eviction under LIFO access
const Capacity = 10

// Entry records one applied update. Immutable once pushed; the stack owns it
// exclusively
type Entry struct {
	ObjectName     string         `json:"objectName"`
	RecordID       string         `json:"recordId"`
	PreviousFields map[string]any `json:"previousFields"`
	UpdatedFields  map[string]any `json:"updatedFields"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Stack is the bounded LIFO journal
type Stack struct {
	entries []Entry
}

// New returns an empty stack
func New() *Stack {
	return &Stack{entries: make([]Entry, 0, Capacity)}
}

// Push appends e as the most recent entry, evicting the oldest when the
// stack is full
func (s *Stack) Push(e Entry) {
	if len(s.entries) >= Capacity {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, e)
}

// Pop removes and returns the most recent entry, or nil when empty
func (s *Stack) Pop() *Entry {
	n := len(s.entries)
	if n == 0 {
		return nil
	}
	e := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return &e
}

// Peek returns the most recent entry without removing it, or nil when empty
func (s *Stack) Peek() *Entry {
	n := len(s.entries)
	if n == 0 {
		return nil
	}
	e := s.entries[n-1]
	return &e
}

// Clear drops all entries
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Size returns the number of retained entries
func (s *Stack) Size() int { return len(s.entries) }

// IsEmpty reports whether no entries are retained
func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }
