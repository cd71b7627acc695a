package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/interior-hub/internal/model"
)

// GroupSection is one hub row: a header button naming the group and a grid of
// its top items
type GroupSection struct {
	group    *model.Group
	items    *ItemsBinding
	columns  int
	header   *widget.Button
	count    *widget.Label
	grid     *widget.GridWrap
	spacer   *canvas.Rectangle
	content  *fyne.Container
	loc      *Localization
	listener binding.DataListener

	onOpenGroup func(groupID string)
	onOpenItem  func(itemID string)
}

// NewGroupSection creates a hub section bound to the group's top items.
// The section becomes the sole observer of group.TopItems().
func NewGroupSection(group *model.Group, columns int, loc *Localization) *GroupSection {
	s := &GroupSection{
		group:   group,
		items:   BindItems(group.TopItems()),
		columns: max(columns, 1),
		loc:     loc,
	}
	s.createUI()
	return s
}

// SetCallbacks sets navigation handlers for header and tile taps
func (s *GroupSection) SetCallbacks(onOpenGroup, onOpenItem func(id string)) {
	s.onOpenGroup = onOpenGroup
	s.onOpenItem = onOpenItem
}

// Container returns the section's root object
func (s *GroupSection) Container() fyne.CanvasObject {
	return s.content
}

// Items returns the binding the grid renders
func (s *GroupSection) Items() *ItemsBinding {
	return s.items
}

// RefreshTexts re-applies localized strings
func (s *GroupSection) RefreshTexts() {
	s.header.SetText(s.group.Title() + " " + IconChevron)
	s.count.SetText(s.loc.ItemCount(s.group.Items().Len()))
}

// Close detaches the section from its data
func (s *GroupSection) Close() {
	s.items.Data().RemoveListener(s.listener)
}

func (s *GroupSection) createUI() {
	s.header = widget.NewButton("", func() {
		if s.onOpenGroup != nil {
			s.onOpenGroup(s.group.ID())
		}
	})
	s.header.Alignment = widget.ButtonAlignLeading
	s.header.Importance = widget.LowImportance
	s.count = widget.NewLabel("")
	s.count.Importance = widget.LowImportance

	s.grid = widget.NewGridWrapWithData(
		s.items.Data(),
		func() fyne.CanvasObject { return NewItemTile() },
		func(di binding.DataItem, obj fyne.CanvasObject) {
			obj.(*ItemTile).SetItem(itemFromDataItem(di))
		},
	)
	s.grid.OnSelected = func(id widget.GridWrapItemID) {
		s.grid.UnselectAll()
		if item := s.items.ItemAt(id); item != nil && s.onOpenItem != nil {
			s.onOpenItem(item.ID())
		}
	}

	// GridWrap scrolls on its own, so the spacer reserves room for every row
	s.spacer = canvas.NewRectangle(color.Transparent)
	s.listener = binding.NewDataListener(s.resize)
	s.items.Data().AddListener(s.listener)

	s.RefreshTexts()
	s.content = container.NewVBox(
		container.NewBorder(nil, nil, nil, s.count, s.header),
		container.NewStack(s.spacer, s.grid),
	)
}

// resize grows the reserved grid height to fit the current rows
func (s *GroupSection) resize() {
	rows := sectionRows(s.items.Len(), s.columns)
	s.spacer.SetMinSize(fyne.NewSize(float32(s.columns)*TileWidth, float32(rows)*TileHeight))
	s.spacer.Refresh()
	if s.count != nil {
		s.count.SetText(s.loc.ItemCount(s.group.Items().Len()))
	}
}

// sectionRows returns the rows needed to lay out n tiles in columns
func sectionRows(n, columns int) int {
	if n <= 0 || columns <= 0 {
		return 0
	}
	return (n + columns - 1) / columns
}
