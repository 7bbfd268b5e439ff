package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/launchgrid/internal/model"
)

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		expected string
	}{
		{"Safari", 14, "Safari"},
		{"Visual Studio Code", 14, "Visual Studio…"},
		{"Терминал GNOME", 8, "Термина…"},
		{"Mail", 1, "Mail"},
	}

	for _, tc := range tests {
		if got := truncateLabel(tc.name, tc.max); got != tc.expected {
			t.Errorf("truncateLabel(%q, %d) = %q, expected %q", tc.name, tc.max, got, tc.expected)
		}
	}
}

func TestTile_Callbacks(t *testing.T) {
	test.NewApp()
	app := model.NewApplication("Mail", "/Applications/Mail.app", "")
	tile := NewTile(app, NewIconCache(), 64)

	var tapped, secondary, dragged, ended int
	tile.OnTapped = func(model.Element) { tapped++ }
	tile.OnSecondary = func(model.Element, *fyne.PointEvent) { secondary++ }
	tile.OnDragged = func(model.Element, *fyne.DragEvent) { dragged++ }
	tile.OnDragEnd = func(model.Element) { ended++ }

	test.Tap(tile)
	test.TapSecondary(tile)
	tile.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 5}})
	tile.DragEnd()

	if tapped != 1 || secondary != 1 || dragged != 1 || ended != 1 {
		t.Errorf("Unexpected callback counts: tap=%d secondary=%d drag=%d end=%d", tapped, secondary, dragged, ended)
	}
}

func TestTile_EmptyIgnoresTaps(t *testing.T) {
	test.NewApp()
	tile := NewTile(model.NewEmpty(), NewIconCache(), 64)

	tapped := 0
	tile.OnTapped = func(model.Element) { tapped++ }
	tile.OnSecondary = func(model.Element, *fyne.PointEvent) { tapped++ }

	test.Tap(tile)
	test.TapSecondary(tile)
	if tapped != 0 {
		t.Errorf("Placeholder tiles should ignore taps, got %d", tapped)
	}
}

func TestTile_MinSize(t *testing.T) {
	test.NewApp()
	tile := NewTile(model.NewFolder("Tools", model.NewApplication("A", "/a", "")), NewIconCache(), 64)

	size := tile.MinSize()
	if size.Width != 64+2*TilePadding {
		t.Errorf("Unexpected width %v", size.Width)
	}
	if size.Height != 64+2*TilePadding+TileLabelHeight {
		t.Errorf("Unexpected height %v", size.Height)
	}
}
