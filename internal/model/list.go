package model

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by list mutators given an invalid position
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateID is returned when a keyed list already holds the id
	ErrDuplicateID = errors.New("duplicate id")
)

// ObservableList is an ordered sequence that reports each mutation to a
// single observer before the mutating call returns.
type ObservableList[T any] struct {
	items    []T
	key      func(T) string
	observer ListObserver[T]
}

// NewObservableList creates an empty list. When key is non-nil the list
// rejects elements whose key is already present.
func NewObservableList[T any](key func(T) string) *ObservableList[T] {
	return &ObservableList[T]{
		items: make([]T, 0),
		key:   key,
	}
}

// SetObserver sets the consumer of change events
func (l *ObservableList[T]) SetObserver(observer ListObserver[T]) {
	l.observer = observer
}

// Len returns the number of elements
func (l *ObservableList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics if i is out of range.
func (l *ObservableList[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the elements in order
func (l *ObservableList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// IndexFunc returns the index of the first element satisfying match, or -1
func (l *ObservableList[T]) IndexFunc(match func(T) bool) int {
	for i, v := range l.items {
		if match(v) {
			return i
		}
	}
	return -1
}

// Append adds v at the end of the list
func (l *ObservableList[T]) Append(v T) error {
	return l.Insert(len(l.items), v)
}

// Insert places v at index i, shifting later elements right
func (l *ObservableList[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert at %d (len %d): %w", i, len(l.items), ErrIndexOutOfRange)
	}
	if err := l.checkKey(v, -1); err != nil {
		return err
	}

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v

	l.notify(addChange(i))
	return nil
}

// RemoveAt deletes the element at index i and returns it
func (l *ObservableList[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, fmt.Errorf("remove at %d (len %d): %w", i, len(l.items), ErrIndexOutOfRange)
	}

	removed := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]

	l.notify(removeChange(i))
	return removed, nil
}

// Move relocates the element at oldIdx so that it ends up at newIdx
func (l *ObservableList[T]) Move(oldIdx, newIdx int) error {
	n := len(l.items)
	if oldIdx < 0 || oldIdx >= n || newIdx < 0 || newIdx >= n {
		return fmt.Errorf("move %d to %d (len %d): %w", oldIdx, newIdx, n, ErrIndexOutOfRange)
	}
	if oldIdx == newIdx {
		return nil
	}

	moveWithin(l.items, oldIdx, newIdx)
	l.notify(moveChange(oldIdx, newIdx))
	return nil
}

// Replace overwrites the element at index i
func (l *ObservableList[T]) Replace(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("replace at %d (len %d): %w", i, len(l.items), ErrIndexOutOfRange)
	}
	if err := l.checkKey(v, i); err != nil {
		return err
	}

	l.items[i] = v
	l.notify(replaceChange(i))
	return nil
}

// Clear removes every element
func (l *ObservableList[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	l.notify(resetChange())
}

// Reset replaces the whole content with values
func (l *ObservableList[T]) Reset(values []T) error {
	if l.key != nil {
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			k := l.key(v)
			if _, dup := seen[k]; dup {
				return fmt.Errorf("reset: %q: %w", k, ErrDuplicateID)
			}
			seen[k] = struct{}{}
		}
	}

	l.items = append(make([]T, 0, len(values)), values...)
	l.notify(resetChange())
	return nil
}

// checkKey rejects v when another element (other than skip) has the same key
func (l *ObservableList[T]) checkKey(v T, skip int) error {
	if l.key == nil {
		return nil
	}
	k := l.key(v)
	for i, existing := range l.items {
		if i != skip && l.key(existing) == k {
			return fmt.Errorf("%q: %w", k, ErrDuplicateID)
		}
	}
	return nil
}

func (l *ObservableList[T]) notify(change Change) {
	if l.observer != nil {
		l.observer.ListChanged(change, l)
	}
}

// moveWithin shifts s[oldIdx] to newIdx in place
func moveWithin[T any](s []T, oldIdx, newIdx int) {
	v := s[oldIdx]
	if oldIdx < newIdx {
		copy(s[oldIdx:newIdx], s[oldIdx+1:newIdx+1])
	} else {
		copy(s[newIdx+1:oldIdx+1], s[newIdx:oldIdx])
	}
	s[newIdx] = v
}
