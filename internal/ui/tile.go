package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/launchgrid/internal/model"
)

// Tile renders one grid slot: an application icon, a folder with a preview
// of its first items, or nothing for a placeholder. Pointer input is
// forwarded to the callbacks so the grid can track drags across tiles.
type Tile struct {
	widget.BaseWidget

	element  model.Element
	icons    *IconCache
	iconSize float32

	highlighted bool
	hovered     bool
	dragging    bool

	// Callbacks
	OnTapped    func(model.Element)
	OnSecondary func(model.Element, *fyne.PointEvent)
	OnDragged   func(model.Element, *fyne.DragEvent)
	OnDragEnd   func(model.Element)
}

// NewTile creates a tile for element
func NewTile(element model.Element, icons *IconCache, iconSize float32) *Tile {
	t := &Tile{
		element:  element,
		icons:    icons,
		iconSize: iconSize,
	}
	t.ExtendBaseWidget(t)
	return t
}

// Element returns the element shown by the tile
func (t *Tile) Element() model.Element {
	return t.element
}

// SetHighlighted marks the tile as the current drop target
func (t *Tile) SetHighlighted(on bool) {
	if t.highlighted == on {
		return
	}
	t.highlighted = on
	t.Refresh()
}

// SetDragging dims the tile while it is being moved
func (t *Tile) SetDragging(on bool) {
	if t.dragging == on {
		return
	}
	t.dragging = on
	t.Refresh()
}

// Tapped implements fyne.Tappable
func (t *Tile) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil && !model.IsEmpty(t.element) {
		t.OnTapped(t.element)
	}
}

// TappedSecondary implements fyne.SecondaryTappable
func (t *Tile) TappedSecondary(ev *fyne.PointEvent) {
	if t.OnSecondary != nil && !model.IsEmpty(t.element) {
		t.OnSecondary(t.element, ev)
	}
}

// Dragged implements fyne.Draggable
func (t *Tile) Dragged(ev *fyne.DragEvent) {
	if t.OnDragged != nil {
		t.OnDragged(t.element, ev)
	}
}

// DragEnd implements fyne.Draggable
func (t *Tile) DragEnd() {
	if t.OnDragEnd != nil {
		t.OnDragEnd(t.element)
	}
}

// MouseIn implements desktop.Hoverable
func (t *Tile) MouseIn(*desktop.MouseEvent) {
	if model.IsEmpty(t.element) {
		return
	}
	t.hovered = true
	t.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (t *Tile) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (t *Tile) MouseOut() {
	if !t.hovered {
		return
	}
	t.hovered = false
	t.Refresh()
}

// CreateRenderer implements fyne.Widget
func (t *Tile) CreateRenderer() fyne.WidgetRenderer {
	r := &tileRenderer{
		tile:       t,
		background: canvas.NewRectangle(color.Transparent),
		folderBox:  canvas.NewRectangle(folderBackground),
		icon:       canvas.NewImageFromResource(nil),
		label:      canvas.NewText("", theme.Color(theme.ColorNameForeground)),
	}
	r.background.CornerRadius = TileCornerRad
	r.folderBox.CornerRadius = TileCornerRad
	r.icon.FillMode = canvas.ImageFillContain
	r.label.Alignment = fyne.TextAlignCenter
	r.label.TextSize = theme.CaptionTextSize()
	for i := 0; i < FolderPreview; i++ {
		img := canvas.NewImageFromResource(nil)
		img.FillMode = canvas.ImageFillContain
		r.previews = append(r.previews, img)
	}
	r.Refresh()
	return r
}

type tileRenderer struct {
	tile       *Tile
	background *canvas.Rectangle
	folderBox  *canvas.Rectangle
	icon       *canvas.Image
	previews   []*canvas.Image
	label      *canvas.Text
}

func (r *tileRenderer) Destroy() {}

func (r *tileRenderer) MinSize() fyne.Size {
	side := r.tile.iconSize + 2*TilePadding
	return fyne.NewSize(side, side+TileLabelHeight)
}

func (r *tileRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	iconSide := r.tile.iconSize
	if avail := size.Height - TileLabelHeight - 2*TilePadding; avail < iconSide {
		iconSide = avail
	}
	if avail := size.Width - 2*TilePadding; avail < iconSide {
		iconSide = avail
	}
	iconPos := fyne.NewPos((size.Width-iconSide)/2, TilePadding)

	r.icon.Resize(fyne.NewSize(iconSide, iconSide))
	r.icon.Move(iconPos)
	r.folderBox.Resize(fyne.NewSize(iconSide, iconSide))
	r.folderBox.Move(iconPos)

	// 2x2 preview grid inside the folder box
	cell := (iconSide - 3*TilePadding) / 2
	for i, img := range r.previews {
		col, row := float32(i%2), float32(i/2)
		img.Resize(fyne.NewSize(cell, cell))
		img.Move(fyne.NewPos(
			iconPos.X+TilePadding+col*(cell+TilePadding),
			iconPos.Y+TilePadding+row*(cell+TilePadding),
		))
	}

	r.label.Resize(fyne.NewSize(size.Width, TileLabelHeight))
	r.label.Move(fyne.NewPos(0, iconPos.Y+iconSide+TilePadding/2))
}

func (r *tileRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background, r.folderBox, r.icon}
	for _, img := range r.previews {
		objects = append(objects, img)
	}
	return append(objects, r.label)
}

func (r *tileRenderer) Refresh() {
	t := r.tile

	switch {
	case t.highlighted:
		r.background.FillColor = tileHighlight
	case t.hovered:
		r.background.FillColor = theme.Color(theme.ColorNameHover)
	default:
		r.background.FillColor = color.Transparent
	}

	r.folderBox.Hide()
	r.icon.Hide()
	for _, img := range r.previews {
		img.Hide()
	}
	r.label.Text = ""

	switch e := t.element.(type) {
	case model.Application:
		r.icon.Resource = t.icons.Resource(e.Icon)
		r.icon.Show()
		r.label.Text = truncateLabel(e.Name, MaxLabelRunes)
	case model.Folder:
		r.folderBox.Show()
		for i, item := range e.Items {
			if i >= len(r.previews) {
				break
			}
			r.previews[i].Resource = t.icons.Resource(item.Icon)
			r.previews[i].Show()
		}
		r.label.Text = truncateLabel(e.Name, MaxLabelRunes)
	}

	alpha := uint8(255)
	if t.dragging {
		alpha = DraggedTileAlpha
	}
	r.icon.Translucency = 1 - float64(alpha)/255
	for _, img := range r.previews {
		img.Translucency = r.icon.Translucency
	}
	r.label.Color = theme.Color(theme.ColorNameForeground)

	r.background.Refresh()
	r.folderBox.Refresh()
	r.icon.Refresh()
	for _, img := range r.previews {
		img.Refresh()
	}
	r.label.Refresh()
}

// truncateLabel shortens name to max runes, marking the cut with an ellipsis
func truncateLabel(name string, max int) string {
	runes := []rune(name)
	if max <= 1 || len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}
