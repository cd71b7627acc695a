package ui

import (
	"log/slog"

	"fyne.io/fyne/v2/data/binding"

	"github.com/ytget/interior-hub/internal/model"
)

// observableItems is a sequence of items that accepts one observer, such as
// a group's top items projection
type observableItems interface {
	model.Sequence[*model.Item]
	SetObserver(observer model.ListObserver[*model.Item])
}

// ItemsBinding mirrors a model item sequence into a fyne UntypedList so that
// data-bound widgets follow it
type ItemsBinding struct {
	data binding.UntypedList
}

// BindItems becomes the observer of source and seeds the binding with its
// current elements
func BindItems(source observableItems) *ItemsBinding {
	b := &ItemsBinding{data: binding.NewUntypedList()}
	source.SetObserver(b)
	b.sync(source)
	return b
}

// SnapshotItems binds a fixed copy of items
func SnapshotItems(items []*model.Item) *ItemsBinding {
	b := &ItemsBinding{data: binding.NewUntypedList()}
	b.set(items)
	return b
}

// Data returns the bound list
func (b *ItemsBinding) Data() binding.UntypedList {
	return b.data
}

// Len returns the number of bound items
func (b *ItemsBinding) Len() int {
	return b.data.Length()
}

// ItemAt returns the bound item at index i, or nil
func (b *ItemsBinding) ItemAt(i int) *model.Item {
	v, err := b.data.GetValue(i)
	if err != nil {
		return nil
	}
	item, _ := v.(*model.Item)
	return item
}

// ListChanged implements model.ListObserver
func (b *ItemsBinding) ListChanged(change model.Change, source model.Sequence[*model.Item]) {
	slog.Debug("items binding changed", "change", change.String(), "len", source.Len())
	b.sync(source)
}

func (b *ItemsBinding) sync(source model.Sequence[*model.Item]) {
	items := make([]*model.Item, source.Len())
	for i := range items {
		items[i] = source.At(i)
	}
	b.set(items)
}

func (b *ItemsBinding) set(items []*model.Item) {
	values := make([]any, len(items))
	for i, it := range items {
		values[i] = it
	}
	if err := b.data.Set(values); err != nil {
		slog.Warn("items binding set failed", "error", err)
	}
}

// itemFromDataItem extracts the item carried by a bound list element
func itemFromDataItem(di binding.DataItem) *model.Item {
	u, ok := di.(binding.Untyped)
	if !ok {
		return nil
	}
	v, err := u.Get()
	if err != nil {
		return nil
	}
	item, _ := v.(*model.Item)
	return item
}
