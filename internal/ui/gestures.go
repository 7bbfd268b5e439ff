package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold float32 = 80.0
	ScrollPageThreshold   float32 = 40.0
)

// SwipeDetector accumulates a pointer drag and classifies it on release
type SwipeDetector struct {
	threshold float32
	dx, dy    float32
	active    bool
}

// NewSwipeDetector creates a detector that needs threshold pixels of
// horizontal travel to report a swipe
func NewSwipeDetector(threshold float32) *SwipeDetector {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeDetector{threshold: threshold}
}

// Dragged records one drag step
func (d *SwipeDetector) Dragged(ev *fyne.DragEvent) {
	d.active = true
	d.dx += ev.Dragged.DX
	d.dy += ev.Dragged.DY
}

// End finishes the drag and returns the detected gesture
func (d *SwipeDetector) End() GestureType {
	if !d.active {
		return GestureNone
	}
	gesture := classifySwipe(d.dx, d.dy, d.threshold)
	d.dx, d.dy, d.active = 0, 0, false
	return gesture
}

// classifySwipe reports a horizontal swipe when the horizontal travel is
// both dominant and past threshold. Dragging content to the left reveals
// the next page.
func classifySwipe(dx, dy, threshold float32) GestureType {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}
	if absDx < threshold || absDx <= absDy {
		return GestureNone
	}
	if dx < 0 {
		return GestureSwipeLeft
	}
	return GestureSwipeRight
}

// swipeArea sits behind the grid and turns drags and scroll wheel motion on
// the background into page changes
type swipeArea struct {
	widget.BaseWidget
	detector  *SwipeDetector
	onGesture func(GestureType)
	scrolled  float32
}

func newSwipeArea(onGesture func(GestureType)) *swipeArea {
	a := &swipeArea{
		detector:  NewSwipeDetector(DefaultSwipeThreshold),
		onGesture: onGesture,
	}
	a.ExtendBaseWidget(a)
	return a
}

// CreateRenderer implements fyne.Widget
func (a *swipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// Dragged implements fyne.Draggable
func (a *swipeArea) Dragged(ev *fyne.DragEvent) {
	a.detector.Dragged(ev)
}

// DragEnd implements fyne.Draggable
func (a *swipeArea) DragEnd() {
	a.trigger(a.detector.End())
}

// Scrolled implements fyne.Scrollable
func (a *swipeArea) Scrolled(ev *fyne.ScrollEvent) {
	a.scrolled += ev.Scrolled.DX + ev.Scrolled.DY
	switch {
	case a.scrolled <= -ScrollPageThreshold:
		a.scrolled = 0
		a.trigger(GestureSwipeLeft)
	case a.scrolled >= ScrollPageThreshold:
		a.scrolled = 0
		a.trigger(GestureSwipeRight)
	}
}

func (a *swipeArea) trigger(gesture GestureType) {
	if gesture != GestureNone && a.onGesture != nil {
		a.onGesture(gesture)
	}
}

// slotRect is the on-canvas area of one grid slot
type slotRect struct {
	pos  fyne.Position
	size fyne.Size
}

func (r slotRect) contains(p fyne.Position) bool {
	return p.X >= r.pos.X && p.X < r.pos.X+r.size.Width &&
		p.Y >= r.pos.Y && p.Y < r.pos.Y+r.size.Height
}

// hitTest returns the index of the slot containing p, or -1
func hitTest(rects []slotRect, p fyne.Position) int {
	for i, r := range rects {
		if r.contains(p) {
			return i
		}
	}
	return -1
}
