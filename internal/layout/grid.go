package layout

import "github.com/ytget/launchgrid/internal/model"

// grid is the working copy a mutation operates on
type grid struct {
	size  int
	items []model.Element
}

// bounds returns the half-open range [start, end) of the page holding flat
// index i. end is clamped to the sequence length.
func (g *grid) bounds(i int) (int, int) {
	start := (i / g.size) * g.size
	end := start + g.size
	if end > len(g.items) {
		end = len(g.items)
	}
	return start, end
}

func (g *grid) valid(i int) bool {
	return i >= 0 && i < len(g.items)
}

func (g *grid) swap(a, b int) bool {
	if a == b || !g.valid(a) || !g.valid(b) {
		return false
	}
	g.items[a], g.items[b] = g.items[b], g.items[a]
	return true
}

// normalizePage stably moves the occupied elements of the page holding i to
// the front and its placeholders to the back. Placeholders keep their IDs.
func (g *grid) normalizePage(i int) bool {
	if !g.valid(i) {
		return false
	}
	start, end := g.bounds(i)
	page := make([]model.Element, 0, end-start)
	var empties []model.Element
	for _, e := range g.items[start:end] {
		if model.IsEmpty(e) {
			empties = append(empties, e)
			continue
		}
		page = append(page, e)
	}
	copy(g.items[start:end], append(page, empties...))
	return true
}

func (g *grid) normalizeAll() {
	for start := 0; start < len(g.items); start += g.size {
		g.normalizePage(start)
	}
}

// fixTail restores len % size == 0 by trimming surplus trailing placeholders
// or padding the final page with new ones. Trailing pages holding only
// placeholders are dropped; the first page always stays.
func (g *grid) fixTail() {
	if rem := len(g.items) % g.size; rem != 0 {
		if allEmpty(g.items[len(g.items)-rem:]) {
			g.items = g.items[:len(g.items)-rem]
		} else {
			for i := rem; i < g.size; i++ {
				g.items = append(g.items, model.NewEmpty())
			}
		}
	}
	for len(g.items) > g.size && allEmpty(g.items[len(g.items)-g.size:]) {
		g.items = g.items[:len(g.items)-g.size]
	}
}

func allEmpty(elements []model.Element) bool {
	for _, e := range elements {
		if !model.IsEmpty(e) {
			return false
		}
	}
	return true
}

// insertAt puts app at pos inside the page [start, end), making room by
// shifting the run between pos and the nearest placeholder: forward first,
// then backward. pos == end appends after the page's last slot. It reports
// false when the page has no placeholder to absorb the shift.
func (g *grid) insertAt(app model.Application, pos, start, end int) bool {
	if pos < start || pos > end {
		return false
	}
	if pos < end && model.IsEmpty(g.items[pos]) {
		g.items[pos] = app
		return true
	}
	for j := pos + 1; j < end; j++ {
		if model.IsEmpty(g.items[j]) {
			copy(g.items[pos+1:j+1], g.items[pos:j])
			g.items[pos] = app
			return true
		}
	}
	for k := pos - 1; k >= start; k-- {
		if model.IsEmpty(g.items[k]) {
			copy(g.items[k:pos-1], g.items[k+1:pos])
			g.items[pos-1] = app
			return true
		}
	}
	return false
}

// insertAfter places app directly after target, confined to target's page
func (g *grid) insertAfter(app model.Application, target int) bool {
	if !g.valid(target) {
		return false
	}
	start, end := g.bounds(target)
	return g.insertAt(app, target+1, start, end)
}

// removeAt deletes the element at i, closing the gap inside its page and
// putting a new placeholder in the page's last slot.
func (g *grid) removeAt(i int) {
	_, end := g.bounds(i)
	copy(g.items[i:end-1], g.items[i+1:end])
	g.items[end-1] = model.NewEmpty()
}

// stripEmpties drops every placeholder from the sequence
func (g *grid) stripEmpties() {
	kept := g.items[:0]
	for _, e := range g.items {
		if !model.IsEmpty(e) {
			kept = append(kept, e)
		}
	}
	g.items = kept
}
