package layout

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ytget/launchgrid/internal/model"
)

// Filtered returns the elements matching query, case-insensitively, by
// application name or by the name of any application inside a folder.
// Placeholders never match. Only the empty query returns the whole layout;
// whitespace is matched literally.
func (s *Store) Filtered(query string) []model.Element {
	elements := s.Elements()
	if query == "" {
		return elements
	}

	matches := func(name string) bool {
		return MatchesQuery(name, query)
	}

	out := make([]model.Element, 0)
	for _, e := range elements {
		switch v := e.(type) {
		case model.Application:
			if matches(v.Name) {
				out = append(out, v)
			}
		case model.Folder:
			for _, item := range v.Items {
				if matches(item.Name) {
					out = append(out, v)
					break
				}
			}
		}
	}
	return out
}

// MatchesQuery reports whether name contains query, ignoring case
func MatchesQuery(name, query string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(name), fold.String(query))
}

// Pages splits Filtered(query) into pages. With an active query the last
// page may be shorter than the page size.
func (s *Store) Pages(query string) [][]model.Element {
	return chunk(s.Filtered(query), s.pageSize)
}

// Page returns one page of the unfiltered layout, or nil if out of range
func (s *Store) Page(n int) []model.Element {
	pages := s.Pages("")
	if n < 0 || n >= len(pages) {
		return nil
	}
	return pages[n]
}

func chunk(elements []model.Element, size int) [][]model.Element {
	pages := make([][]model.Element, 0, (len(elements)+size-1)/size)
	for start := 0; start < len(elements); start += size {
		end := start + size
		if end > len(elements) {
			end = len(elements)
		}
		pages = append(pages, elements[start:end])
	}
	return pages
}
