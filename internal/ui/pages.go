package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/interior-hub/internal/model"
)

// NewGroupPage shows the group header and every item of the group in a grid
// of the given column count
func NewGroupPage(group *model.Group, columns int, loc *Localization, onOpenItem func(itemID string)) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(group.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel(group.Subtitle())
	count := widget.NewLabel(loc.ItemCount(group.Items().Len()))
	count.Importance = widget.LowImportance

	description := widget.NewLabel(group.Description())
	description.Wrapping = fyne.TextWrapWord

	// The group page renders a snapshot; the projection keeps its own observer.
	items := SnapshotItems(group.Items().Items())
	tiles := make([]fyne.CanvasObject, 0, items.Len())
	for i := 0; i < items.Len(); i++ {
		item := items.ItemAt(i)
		tile := NewItemTile()
		tile.SetItem(item)
		tiles = append(tiles, newTappable(tile, func() {
			if onOpenItem != nil {
				onOpenItem(item.ID())
			}
		}))
	}

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, count, title),
		subtitle,
		description,
		widget.NewSeparator(),
	)
	grid := container.NewGridWithColumns(max(columns, 1), tiles...)
	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(grid))
}

// NewItemPage shows the full details of an item
func NewItemPage(item *model.Item) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(item.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel(item.Subtitle())
	subtitle.Importance = widget.LowImportance

	image := canvas.NewImageFromResource(itemImage(item.ImagePath(), item.Image))
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(fyne.NewSize(DetailImageWidth, DetailImageHeight))

	description := widget.NewLabel(item.Description())
	description.Wrapping = fyne.TextWrapWord
	content := widget.NewLabel(item.Content())
	content.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(
		title,
		subtitle,
		image,
		description,
		widget.NewSeparator(),
		content,
	)
	return container.NewVScroll(body)
}

// tappable wraps an object so that a tap anywhere on it runs onTapped
type tappable struct {
	widget.BaseWidget
	child    fyne.CanvasObject
	onTapped func()
}

func newTappable(child fyne.CanvasObject, onTapped func()) *tappable {
	t := &tappable{child: child, onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

// Tapped implements fyne.Tappable
func (t *tappable) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// CreateRenderer implements fyne.Widget
func (t *tappable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.child)
}
