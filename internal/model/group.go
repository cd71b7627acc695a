package model

import "fmt"

// Group owns an ordered item sequence and keeps its top items projection
// in sync with it.
type Group struct {
	Common

	items *ObservableList[*Item]
	list  *ItemList
	top   *Projection[*Item]
}

// NewGroup creates a group whose projection is capped at TopItemsLimit
func NewGroup(id, title, subtitle, imagePath, description string) *Group {
	return NewGroupWithLimit(id, title, subtitle, imagePath, description, TopItemsLimit)
}

// NewGroupWithLimit creates a group with a custom projection size
func NewGroupWithLimit(id, title, subtitle, imagePath, description string, limit int) *Group {
	if id == "" {
		id = GenerateID("group")
	}
	g := &Group{
		Common: newCommon(id, title, subtitle, imagePath, description),
		items:  NewObservableList(itemID),
		top:    NewProjection[*Item](limit),
	}
	g.list = &ItemList{group: g}
	g.items.SetObserver(g)
	return g
}

// Items returns the full item sequence. Mutate the group through it.
func (g *Group) Items() *ItemList {
	return g.list
}

// TopItems returns the capped projection of Items
func (g *Group) TopItems() *Projection[*Item] {
	return g.top
}

// AddItem appends item to the group
func (g *Group) AddItem(item *Item) error {
	return g.list.Append(item)
}

// FindItem returns the item with id, if the group holds it
func (g *Group) FindItem(id string) (*Item, bool) {
	idx := g.items.IndexFunc(func(it *Item) bool { return it.ID() == id })
	if idx < 0 {
		return nil, false
	}
	return g.items.At(idx), true
}

// SetID renames the group and re-stamps the GroupID of every item
func (g *Group) SetID(id string) {
	if !SetProperty(&g.Bindable, &g.id, id, PropertyID) {
		return
	}
	for _, it := range g.items.items {
		it.setGroup(g)
	}
}

// ListChanged stamps ownership on incoming items and forwards the change
// to the projection.
func (g *Group) ListChanged(change Change, source Sequence[*Item]) {
	switch change.Action {
	case ChangeAdd:
		source.At(change.NewIndex).setGroup(g)
	case ChangeReplace:
		source.At(change.OldIndex).setGroup(g)
	case ChangeReset:
		for i := 0; i < source.Len(); i++ {
			source.At(i).setGroup(g)
		}
	}
	g.top.ListChanged(change, source)
}

// checkRename rejects renaming item to an id another member already has
func (g *Group) checkRename(item *Item, id string) error {
	if other, ok := g.FindItem(id); ok && other != item {
		return fmt.Errorf("rename %s to %q in group %s: %w", item.ID(), id, g.ID(), ErrDuplicateID)
	}
	return nil
}

func itemID(it *Item) string {
	return it.ID()
}

// ItemList is the mutable view of a group's items. Every mutation goes
// through the group, which keeps the top items projection and the items'
// group references current.
type ItemList struct {
	group *Group
}

// Len returns the number of items
func (l *ItemList) Len() int {
	return l.group.items.Len()
}

// At returns the item at index i. It panics if i is out of range.
func (l *ItemList) At(i int) *Item {
	return l.group.items.At(i)
}

// Items returns a copy of the items in order
func (l *ItemList) Items() []*Item {
	return l.group.items.Items()
}

// IndexFunc returns the index of the first item satisfying match, or -1
func (l *ItemList) IndexFunc(match func(*Item) bool) int {
	return l.group.items.IndexFunc(match)
}

// Append adds item at the end of the group
func (l *ItemList) Append(item *Item) error {
	return l.group.items.Append(item)
}

// Insert places item at index i
func (l *ItemList) Insert(i int, item *Item) error {
	return l.group.items.Insert(i, item)
}

// RemoveAt removes the item at index i and detaches it from the group
func (l *ItemList) RemoveAt(i int) (*Item, error) {
	removed, err := l.group.items.RemoveAt(i)
	if err != nil {
		return nil, err
	}
	removed.setGroup(nil)
	return removed, nil
}

// Move relocates the item at oldIdx to newIdx
func (l *ItemList) Move(oldIdx, newIdx int) error {
	return l.group.items.Move(oldIdx, newIdx)
}

// Replace overwrites the item at index i; the previous item is detached
func (l *ItemList) Replace(i int, item *Item) error {
	var old *Item
	if i >= 0 && i < l.Len() {
		old = l.At(i)
	}
	if err := l.group.items.Replace(i, item); err != nil {
		return err
	}
	if old != nil && old != item {
		old.setGroup(nil)
	}
	return nil
}

// Clear removes and detaches every item
func (l *ItemList) Clear() {
	old := l.Items()
	l.group.items.Clear()
	for _, it := range old {
		it.setGroup(nil)
	}
}

// Reset replaces the whole content; items not kept are detached
func (l *ItemList) Reset(items []*Item) error {
	old := l.Items()
	if err := l.group.items.Reset(items); err != nil {
		return err
	}
	kept := make(map[*Item]struct{}, len(items))
	for _, it := range items {
		kept[it] = struct{}{}
	}
	for _, it := range old {
		if _, ok := kept[it]; !ok {
			it.setGroup(nil)
		}
	}
	return nil
}
