package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/interior-hub/internal/model"
)

// Tile layout constants
const (
	TileTitleMaxChars = 28
)

// ItemTile shows an item image with its title and subtitle underneath
type ItemTile struct {
	widget.BaseWidget

	item *model.Item

	image    *canvas.Image
	title    *widget.Label
	subtitle *widget.Label
}

// NewItemTile creates an empty tile; call SetItem to fill it
func NewItemTile() *ItemTile {
	t := &ItemTile{
		image:    canvas.NewImageFromResource(theme.FileImageIcon()),
		title:    widget.NewLabel(""),
		subtitle: widget.NewLabel(""),
	}
	t.image.FillMode = canvas.ImageFillContain
	t.image.SetMinSize(fyne.NewSize(TileWidth, TileImageHeight))
	t.title.TextStyle = fyne.TextStyle{Bold: true}
	t.title.Truncation = fyne.TextTruncateEllipsis
	t.subtitle.Truncation = fyne.TextTruncateEllipsis
	t.subtitle.Importance = widget.LowImportance

	t.ExtendBaseWidget(t)
	return t
}

// Item returns the item currently shown
func (t *ItemTile) Item() *model.Item {
	return t.item
}

// SetItem updates the tile to show item
func (t *ItemTile) SetItem(item *model.Item) {
	t.item = item
	if item == nil {
		t.title.SetText("")
		t.subtitle.SetText("")
		t.image.Resource = theme.FileImageIcon()
		t.image.Refresh()
		return
	}

	t.title.SetText(truncateText(item.Title(), TileTitleMaxChars))
	t.subtitle.SetText(item.Subtitle())
	t.image.Resource = itemImage(item.ImagePath(), item.Image)
	t.image.Refresh()
}

// CreateRenderer implements fyne.Widget
func (t *ItemTile) CreateRenderer() fyne.WidgetRenderer {
	labels := container.NewVBox(t.title, t.subtitle)
	return widget.NewSimpleRenderer(container.NewBorder(nil, labels, nil, nil, t.image))
}

// MinSize keeps every tile the same size inside a grid
func (t *ItemTile) MinSize() fyne.Size {
	return fyne.NewSize(TileWidth, TileHeight)
}

// itemImage resolves an image through load, falling back to a placeholder
// icon when the path is empty or the resource cannot be loaded
func itemImage(path string, load func() (fyne.Resource, error)) fyne.Resource {
	res, err := load()
	if err != nil {
		slog.Warn("image unavailable", "path", path, "error", err)
		return theme.BrokenImageIcon()
	}
	if res == nil {
		return theme.FileImageIcon()
	}
	return res
}

// truncateText shortens s to limit runes, adding an ellipsis when cut
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
