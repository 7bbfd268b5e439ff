package layout

import (
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/ytget/launchgrid/internal/model"
)

// ReconcileResult summarizes a reconciliation pass
type ReconcileResult struct {
	Added   int
	Removed int
}

// Changed reports whether any application was added or removed
func (r ReconcileResult) Changed() bool {
	return r.Added > 0 || r.Removed > 0
}

// Reconcile brings the layout in line with the applications found on disk.
// Applications whose path disappeared are removed, including from folders.
// Newly found paths are appended after the existing elements, sorted by
// name, once placeholders have been squeezed out. Without new paths only the
// pages that lost an element are compacted. Manual order and folder
// contents are otherwise kept, and icon handles are refreshed.
func (s *Store) Reconcile(installed []model.Installed) ReconcileResult {
	var result ReconcileResult

	s.mutate("reconcile", func(g *grid) bool {
		scanned := make(map[string]model.Installed, len(installed))
		for _, inst := range installed {
			if inst.Path == "" {
				continue
			}
			if _, dup := scanned[inst.Path]; !dup {
				scanned[inst.Path] = inst
			}
		}

		known := make(map[string]bool, len(scanned))
		touched := make(map[int]bool)
		iconChanged := false

		keep := func(app model.Application) (model.Application, bool) {
			inst, ok := scanned[app.Path]
			if !ok {
				result.Removed++
				return app, false
			}
			known[app.Path] = true
			if app.Icon != inst.Icon {
				app.Icon = inst.Icon
				iconChanged = true
			}
			return app, true
		}

		for i, e := range g.items {
			switch v := e.(type) {
			case model.Application:
				if app, ok := keep(v); ok {
					g.items[i] = app
				} else {
					g.items[i] = model.NewEmpty()
					touched[i/g.size] = true
				}
			case model.Folder:
				items := make([]model.Application, 0, len(v.Items))
				for _, item := range v.Items {
					if app, ok := keep(item); ok {
						items = append(items, app)
					}
				}
				if len(items) == 0 {
					g.items[i] = model.NewEmpty()
					touched[i/g.size] = true
					continue
				}
				v.Items = items
				g.items[i] = v
			}
		}

		var added []model.Application
		for _, inst := range installed {
			if inst.Path == "" || known[inst.Path] {
				continue
			}
			known[inst.Path] = true
			name := inst.Name
			if name == "" {
				name = model.NameFromPath(inst.Path)
			}
			added = append(added, model.NewApplication(name, inst.Path, inst.Icon))
		}
		result.Added = len(added)

		if len(added) > 0 {
			sortByName(added)
			g.stripEmpties()
			for _, app := range added {
				g.items = append(g.items, app)
			}
			return true
		}
		for page := range touched {
			g.normalizePage(page * g.size)
		}
		return result.Removed > 0 || iconChanged
	})

	s.logger.Debug("layout reconciled",
		zap.Int("installed", len(installed)),
		zap.Int("added", result.Added),
		zap.Int("removed", result.Removed),
	)
	return result
}

// sortByName orders applications by case-folded name, then by path
func sortByName(apps []model.Application) {
	fold := cases.Fold()
	sort.SliceStable(apps, func(i, j int) bool {
		a, b := fold.String(apps[i].Name), fold.String(apps[j].Name)
		if a != b {
			return a < b
		}
		return apps[i].Path < apps[j].Path
	})
}
