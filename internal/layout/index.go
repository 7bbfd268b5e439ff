package layout

import "github.com/ytget/launchgrid/internal/model"

// Location is where an element lives in the layout. Top-level elements have
// an empty Folder; applications inside a folder carry the folder's ID and
// their position among its items.
type Location struct {
	Index  int
	Folder model.ID
	Inner  int
}

// InFolder reports whether the location points inside a folder
func (l Location) InFolder() bool {
	return l.Folder != ""
}

// Page returns the page holding the location's top-level slot
func (l Location) Page(pageSize int) int {
	return l.Index / pageSize
}

// buildIndex maps every element and folder item ID to its location
func buildIndex(elements []model.Element) map[model.ID]Location {
	index := make(map[model.ID]Location, len(elements))
	for i, e := range elements {
		index[e.ElementID()] = Location{Index: i, Inner: -1}
		if f, ok := e.(model.Folder); ok {
			for j, item := range f.Items {
				index[item.ID] = Location{Index: i, Folder: f.ID, Inner: j}
			}
		}
	}
	return index
}
