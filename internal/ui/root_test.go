package ui

import (
	"context"
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/launcher"
	"github.com/ytget/launchgrid/internal/model"
)

type staticScanner struct {
	apps []model.Installed
}

func (s *staticScanner) Scan(context.Context) ([]model.Installed, error) {
	return s.apps, nil
}

func (s *staticScanner) Roots() []string {
	return nil
}

func newTestUI(t *testing.T, count int) (*RootUI, *launcher.Service, *[]string) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	scanner := &staticScanner{}
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("App%02d", i)
		scanner.apps = append(scanner.apps, model.Installed{Name: name, Path: "/Applications/" + name + ".app"})
	}

	launched := &[]string{}
	svc := launcher.NewService(layout.NewStore(6), nil, scanner, launcher.WithLaunchFunc(func(path string) error {
		*launched = append(*launched, path)
		return nil
	}))
	t.Cleanup(svc.Close)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)
	ui := NewRootUI(window, app, svc, Options{Columns: 3, DefaultThresholdMS: 1500})
	return ui, svc, launched
}

func TestRootUI_Pages(t *testing.T) {
	ui, _, _ := newTestUI(t, 8)

	if len(ui.Tiles()) != 6 {
		t.Fatalf("Expected 6 tiles on the first page, got %d", len(ui.Tiles()))
	}
	if ui.pageCount != 2 {
		t.Fatalf("Expected 2 pages, got %d", ui.pageCount)
	}

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	if ui.Page() != 1 {
		t.Errorf("Right arrow should show page 2, got page %d", ui.Page()+1)
	}
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	if ui.Page() != 1 {
		t.Errorf("Page should stay on the last page, got %d", ui.Page())
	}

	ui.onGesture(GestureSwipeRight)
	if ui.Page() != 0 {
		t.Errorf("Swipe right should go back to page 1, got %d", ui.Page())
	}
	if ui.settings.GetLastPage() != 0 {
		t.Errorf("Last page should be remembered, got %d", ui.settings.GetLastPage())
	}
}

func TestRootUI_SearchAndLaunch(t *testing.T) {
	ui, _, launched := newTestUI(t, 8)

	ui.searchEntry.SetText("app07")
	if ui.pageCount != 1 {
		t.Fatalf("Expected a single result page, got %d", ui.pageCount)
	}
	first, ok := ui.Tiles()[0].Element().(model.Application)
	if !ok || first.Name != "App07" {
		t.Fatalf("Expected App07 first, got %v", ui.Tiles()[0].Element())
	}

	ui.launchFirstMatch()
	if len(*launched) != 1 || (*launched)[0] != "/Applications/App07.app" {
		t.Errorf("Unexpected launches %v", *launched)
	}

	ui.searchEntry.SetText("nothing like this")
	if ui.pageCount != 0 || ui.emptyLabel.Hidden {
		t.Error("Expected the no-results label")
	}

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ui.searchEntry.Text != "" || ui.pageCount != 2 {
		t.Error("Escape should clear the search")
	}
}

func TestRootUI_DropWithoutTargetCancels(t *testing.T) {
	ui, svc, _ := newTestUI(t, 3)
	before := svc.Store().Elements()

	source := ui.Tiles()[0]
	ui.onTileDragged(source.Element(), &fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(-100, -100)}})
	if !ui.drag.active || !source.dragging {
		t.Fatal("Drag should be active")
	}
	ui.onTileDragEnd(source.Element())

	if ui.drag.active || source.dragging {
		t.Error("Drag state should be cleared")
	}
	after := svc.Store().Elements()
	for i := range before {
		if before[i].ElementID() != after[i].ElementID() {
			t.Fatalf("Layout changed at %d", i)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, count, expected int
	}{
		{0, 0, 0},
		{3, 2, 1},
		{-1, 4, 0},
		{2, 4, 2},
	}

	for _, tc := range tests {
		if got := clampPage(tc.page, tc.count); got != tc.expected {
			t.Errorf("clampPage(%d, %d) = %d, expected %d", tc.page, tc.count, got, tc.expected)
		}
	}
}
