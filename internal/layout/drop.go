package layout

import (
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/model"
)

// Action describes what a resolved drop did to the layout
type Action string

const (
	// ActionNone means the drop changed nothing
	ActionNone Action = "none"

	// ActionSwap means dragged and target exchanged slots
	ActionSwap Action = "swap"

	// ActionInsert means an application left its folder and was placed
	// after the target
	ActionInsert Action = "insert"

	// ActionAppend means an application joined an existing folder
	ActionAppend Action = "append"

	// ActionGroup means two applications formed a new folder
	ActionGroup Action = "group"

	// ActionRejected means the drop needed a free slot the page did not have
	ActionRejected Action = "rejected"
)

// String returns the string representation of Action
func (a Action) String() string {
	return string(a)
}

// Changed reports whether the action modified the layout
func (a Action) Changed() bool {
	return a != ActionNone && a != ActionRejected
}

// Outcome is the result of resolving a drop
type Outcome struct {
	Action  Action
	Dragged model.ID
	Target  model.ID
	// FolderID is set when the drop created or extended a folder
	FolderID model.ID
}

// ResolveDrop applies the layout change for dragging one element onto
// another. longHover is true when the pointer rested on the target long
// enough to request grouping.
//
// An application dragged out of a folder is placed after the target on the
// target's page. On a long hover a top-level application joins a target
// folder, or forms a new folder named after a target application. Every
// other combination swaps the two slots.
func (s *Store) ResolveDrop(dragged, target model.ID, longHover bool) Outcome {
	out := Outcome{Action: ActionNone, Dragged: dragged, Target: target}
	if dragged == target {
		return out
	}

	s.mutate("drop", func(g *grid) bool {
		dl, ok := s.locate(dragged)
		if !ok {
			return false
		}
		tl, ok := s.locate(target)
		if !ok || tl.InFolder() {
			return false
		}

		if dl.InFolder() {
			if longHover {
				return false
			}
			if !extractAfter(g, dl, tl.Index) {
				out.Action = ActionRejected
				return false
			}
			g.normalizePage(tl.Index)
			out.Action = ActionInsert
			return true
		}

		if longHover {
			app, isApp := g.items[dl.Index].(model.Application)
			switch t := g.items[tl.Index].(type) {
			case model.Folder:
				if isApp {
					if !t.Contains(app.ID) {
						t.Items = append(t.Items, app)
					}
					g.items[tl.Index] = t
					g.items[dl.Index] = model.NewEmpty()
					g.normalizeAll()
					out.Action = ActionAppend
					out.FolderID = t.ID
					return true
				}
			case model.Application:
				if isApp {
					folder := model.NewFolder(t.Name, t, app)
					g.items[tl.Index] = folder
					g.items[dl.Index] = model.NewEmpty()
					g.normalizeAll()
					out.Action = ActionGroup
					out.FolderID = folder.ID
					return true
				}
			}
		}

		if !g.swap(dl.Index, tl.Index) {
			return false
		}
		out.Action = ActionSwap
		return true
	})

	s.logger.Debug("drop resolved",
		zap.String("dragged", dragged.String()),
		zap.String("target", target.String()),
		zap.Bool("long_hover", longHover),
		zap.String("action", out.Action.String()),
	)
	return out
}

// extractAfter removes the application at loc from its folder and inserts it
// after anchor. A folder left without items becomes a placeholder.
func extractAfter(g *grid, loc Location, anchor int) bool {
	folder := g.items[loc.Index].(model.Folder)
	app := folder.Items[loc.Inner]
	folder.Items = append(folder.Items[:loc.Inner], folder.Items[loc.Inner+1:]...)
	if len(folder.Items) == 0 {
		g.items[loc.Index] = model.NewEmpty()
	} else {
		g.items[loc.Index] = folder
	}
	return g.insertAfter(app, anchor)
}
