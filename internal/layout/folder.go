package layout

import (
	"strings"

	"github.com/ytget/launchgrid/internal/model"
)

// ReturnApp moves an application out of its folder back onto the grid. When
// it is the folder's last item it takes the folder's slot; otherwise it is
// inserted right after the folder. It reports false when the application is
// not in that folder or no slot is free.
func (s *Store) ReturnApp(appID, folderID model.ID) bool {
	return s.mutate("return_app", func(g *grid) bool {
		loc, ok := s.locate(appID)
		if !ok || loc.Folder != folderID {
			return false
		}
		folder := g.items[loc.Index].(model.Folder)
		app := folder.Items[loc.Inner]
		folder.Items = append(folder.Items[:loc.Inner], folder.Items[loc.Inner+1:]...)

		if len(folder.Items) == 0 {
			g.items[loc.Index] = app
			g.normalizeAll()
			return true
		}
		g.items[loc.Index] = folder

		pos := loc.Index + 1
		if pos >= len(g.items) {
			pos = len(g.items) - 1
		}
		start, end := g.bounds(pos)
		if pos == loc.Index {
			// folder is the very last slot; append after it on its own page
			pos = end
		}
		if !g.insertAt(app, pos, start, end) {
			return false
		}
		g.normalizePage(start)
		return true
	})
}

// DeleteApp removes an application from the layout. On the grid the rest of
// its page shifts left and a placeholder fills the page's last slot; inside
// a folder the item is dropped and an emptied folder becomes a placeholder.
func (s *Store) DeleteApp(id model.ID) bool {
	return s.mutate("delete_app", func(g *grid) bool {
		loc, ok := s.locate(id)
		if !ok {
			return false
		}

		if !loc.InFolder() {
			if _, isApp := g.items[loc.Index].(model.Application); !isApp {
				return false
			}
			g.removeAt(loc.Index)
			g.normalizePage(loc.Index)
			return true
		}

		folder := g.items[loc.Index].(model.Folder)
		folder.Items = append(folder.Items[:loc.Inner], folder.Items[loc.Inner+1:]...)
		if len(folder.Items) > 0 {
			g.items[loc.Index] = folder
			return true
		}
		g.items[loc.Index] = model.NewEmpty()
		g.normalizeAll()
		return true
	})
}

// ReorderInFolder moves the item at index from to index to within a folder
func (s *Store) ReorderInFolder(folderID model.ID, from, to int) bool {
	return s.mutate("reorder_folder", func(g *grid) bool {
		loc, ok := s.locate(folderID)
		if !ok || loc.InFolder() {
			return false
		}
		folder, ok := g.items[loc.Index].(model.Folder)
		if !ok || from == to || from < 0 || to < 0 || from >= len(folder.Items) || to >= len(folder.Items) {
			return false
		}
		item := folder.Items[from]
		folder.Items = append(folder.Items[:from], folder.Items[from+1:]...)
		folder.Items = append(folder.Items[:to], append([]model.Application{item}, folder.Items[to:]...)...)
		g.items[loc.Index] = folder
		return true
	})
}

// RenameFolder changes a folder's name. Blank names are refused.
func (s *Store) RenameFolder(folderID model.ID, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return s.mutate("rename_folder", func(g *grid) bool {
		loc, ok := s.locate(folderID)
		if !ok || loc.InFolder() {
			return false
		}
		folder, ok := g.items[loc.Index].(model.Folder)
		if !ok || folder.Name == name {
			return false
		}
		folder.Name = name
		g.items[loc.Index] = folder
		return true
	})
}
