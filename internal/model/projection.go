package model

// TopItemsLimit is the number of items a group exposes to grid views.
// Twelve fills grid columns evenly whether 1, 2, 3, 4 or 6 rows are shown.
const TopItemsLimit = 12

// Projection mirrors the first Limit elements of a primary sequence.
// It is only edited through ListChanged, which the owner of the primary
// sequence calls after every mutation.
//
// Each local edit is reported to the projection's own observer (typically a
// UI binding), so a single primary change may produce two projection events.
type Projection[T any] struct {
	limit    int
	items    []T
	observer ListObserver[T]
}

// NewProjection creates an empty projection capped at limit elements.
// Non-positive limits fall back to TopItemsLimit.
func NewProjection[T any](limit int) *Projection[T] {
	if limit <= 0 {
		limit = TopItemsLimit
	}
	return &Projection[T]{
		limit: limit,
		items: make([]T, 0, limit),
	}
}

// Limit returns the maximum number of elements in the projection
func (p *Projection[T]) Limit() int {
	return p.limit
}

// SetObserver sets the consumer of projection change events
func (p *Projection[T]) SetObserver(observer ListObserver[T]) {
	p.observer = observer
}

// Len returns the number of projected elements
func (p *Projection[T]) Len() int {
	return len(p.items)
}

// At returns the projected element at index i
func (p *Projection[T]) At(i int) T {
	return p.items[i]
}

// Items returns a copy of the projected elements in order
func (p *Projection[T]) Items() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// ListChanged brings the projection back in line with source after change.
// Positions outside the window are no-ops. Only Reset rescans the source.
func (p *Projection[T]) ListChanged(change Change, source Sequence[T]) {
	limit := p.limit

	switch change.Action {
	case ChangeAdd:
		i := change.NewIndex
		if i >= limit {
			return
		}
		if i > len(p.items) {
			p.reset(source)
			return
		}
		p.makeRoom()
		p.insert(i, source.At(i))

	case ChangeMove:
		oldIdx, newIdx := change.OldIndex, change.NewIndex
		switch {
		case oldIdx < limit && newIdx < limit:
			p.move(oldIdx, newIdx)
		case oldIdx < limit:
			// The element left the window; the one now at its edge enters it.
			p.removeAt(oldIdx)
			if source.Len() >= limit {
				p.append(source.At(limit - 1))
			}
		case newIdx < limit:
			p.makeRoom()
			p.insert(newIdx, source.At(newIdx))
		}

	case ChangeRemove:
		i := change.OldIndex
		if i >= limit || i >= len(p.items) {
			return
		}
		p.removeAt(i)
		if source.Len() >= limit {
			p.append(source.At(limit - 1))
		}

	case ChangeReplace:
		i := change.OldIndex
		if i >= limit || i >= len(p.items) {
			return
		}
		p.items[i] = source.At(i)
		p.notify(replaceChange(i))

	case ChangeReset:
		p.reset(source)
	}
}

func (p *Projection[T]) insert(i int, v T) {
	var zero T
	p.items = append(p.items, zero)
	copy(p.items[i+1:], p.items[i:])
	p.items[i] = v
	p.notify(addChange(i))
}

func (p *Projection[T]) append(v T) {
	p.insert(len(p.items), v)
}

func (p *Projection[T]) removeAt(i int) {
	var zero T
	copy(p.items[i:], p.items[i+1:])
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
	p.notify(removeChange(i))
}

func (p *Projection[T]) move(oldIdx, newIdx int) {
	if oldIdx == newIdx {
		return
	}
	moveWithin(p.items, oldIdx, newIdx)
	p.notify(moveChange(oldIdx, newIdx))
}

// makeRoom drops the last element when the window is full, so that the
// following insert never takes the projection past its limit.
func (p *Projection[T]) makeRoom() {
	if len(p.items) >= p.limit {
		p.removeAt(len(p.items) - 1)
	}
}

func (p *Projection[T]) reset(source Sequence[T]) {
	clear(p.items)
	p.items = p.items[:0]
	n := min(source.Len(), p.limit)
	for i := 0; i < n; i++ {
		p.items = append(p.items, source.At(i))
	}
	p.notify(resetChange())
}

func (p *Projection[T]) notify(change Change) {
	if p.observer != nil {
		p.observer.ListChanged(change, p)
	}
}
