package model

import "fmt"

// ChangeAction describes how an observable sequence was mutated
type ChangeAction int

const (
	// ChangeAdd means one element was inserted at NewIndex
	ChangeAdd ChangeAction = iota

	// ChangeRemove means the element at OldIndex was removed
	ChangeRemove

	// ChangeReplace means the element at OldIndex was overwritten in place
	ChangeReplace

	// ChangeMove means the element at OldIndex now lives at NewIndex
	ChangeMove

	// ChangeReset means the whole sequence was cleared or replaced
	ChangeReset
)

// String returns the string representation of ChangeAction
func (a ChangeAction) String() string {
	switch a {
	case ChangeAdd:
		return "Add"
	case ChangeRemove:
		return "Remove"
	case ChangeReplace:
		return "Replace"
	case ChangeMove:
		return "Move"
	case ChangeReset:
		return "Reset"
	default:
		return fmt.Sprintf("ChangeAction(%d)", int(a))
	}
}

// Change is the event dispatched to a sequence observer after a mutation.
// Indices that do not apply to the action are -1.
type Change struct {
	Action   ChangeAction
	NewIndex int
	OldIndex int
}

func addChange(i int) Change {
	return Change{Action: ChangeAdd, NewIndex: i, OldIndex: -1}
}

func removeChange(i int) Change {
	return Change{Action: ChangeRemove, NewIndex: -1, OldIndex: i}
}

func replaceChange(i int) Change {
	return Change{Action: ChangeReplace, NewIndex: i, OldIndex: i}
}

func moveChange(oldIdx, newIdx int) Change {
	return Change{Action: ChangeMove, NewIndex: newIdx, OldIndex: oldIdx}
}

func resetChange() Change {
	return Change{Action: ChangeReset, NewIndex: -1, OldIndex: -1}
}

// String formats the change for logs
func (c Change) String() string {
	switch c.Action {
	case ChangeAdd:
		return fmt.Sprintf("Add(%d)", c.NewIndex)
	case ChangeRemove, ChangeReplace:
		return fmt.Sprintf("%s(%d)", c.Action, c.OldIndex)
	case ChangeMove:
		return fmt.Sprintf("Move(%d->%d)", c.OldIndex, c.NewIndex)
	default:
		return c.Action.String()
	}
}

// Sequence is the read side of an ordered collection
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// ListObserver receives every change of the sequence it is attached to.
// The source reflects the state after the change.
type ListObserver[T any] interface {
	ListChanged(change Change, source Sequence[T])
}

// ListObserverFunc adapts a plain function to ListObserver
type ListObserverFunc[T any] func(change Change, source Sequence[T])

// ListChanged calls f(change, source)
func (f ListObserverFunc[T]) ListChanged(change Change, source Sequence[T]) {
	f(change, source)
}
