package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ytget/launchgrid/internal/model"
)

// checkInvariants asserts what must hold for every observable layout
func checkInvariants(t *testing.T, s *Store) {
	t.Helper()

	elements := s.Elements()
	require.Zero(t, len(elements)%s.PageSize(), "length %d not a multiple of %d", len(elements), s.PageSize())
	if len(elements) > s.PageSize() {
		last := elements[len(elements)-s.PageSize():]
		occupied := false
		for _, e := range last {
			if !model.IsEmpty(e) {
				occupied = true
			}
		}
		require.True(t, occupied, "trailing page holds only placeholders")
	}

	seen := make(map[model.ID]bool)
	paths := make(map[string]bool)
	visit := func(id model.ID) {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		_, ok := s.Lookup(id)
		require.True(t, ok, "id %s not indexed", id)
	}
	for _, e := range elements {
		visit(e.ElementID())
		switch v := e.(type) {
		case model.Application:
			require.False(t, paths[v.Path], "path %s appears twice", v.Path)
			paths[v.Path] = true
		case model.Folder:
			require.NotEmpty(t, v.Items, "folder %s has no items", v.Name)
			for _, item := range v.Items {
				visit(item.ID)
				require.False(t, paths[item.Path], "path %s appears twice", item.Path)
				paths[item.Path] = true
			}
		}
	}
}

func allIDs(s *Store) []model.ID {
	var out []model.ID
	for _, e := range s.Elements() {
		out = append(out, e.ElementID())
		if f, ok := e.(model.Folder); ok {
			for _, item := range f.Items {
				out = append(out, item.ID)
			}
		}
	}
	return out
}

func TestStore_RandomGesturesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	universe := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		universe = append(universe, fmt.Sprintf("App%02d", i))
	}

	s := NewStore(6)
	s.Reconcile(installed(universe[:20]...))
	checkInvariants(t, s)

	pick := func() model.ID {
		all := allIDs(s)
		if len(all) == 0 {
			return model.NewID()
		}
		return all[rng.Intn(len(all))]
	}

	for step := 0; step < 2000; step++ {
		switch rng.Intn(8) {
		case 0, 1, 2:
			s.ResolveDrop(pick(), pick(), rng.Intn(2) == 0)
		case 3:
			s.Swap(rng.Intn(s.PageCount()+1), rng.Intn(6), rng.Intn(6))
		case 4:
			s.DeleteApp(pick())
		case 5:
			id := pick()
			if loc, ok := s.Lookup(id); ok && loc.InFolder() {
				s.ReturnApp(id, loc.Folder)
			}
		case 6:
			s.ReorderInFolder(pick(), rng.Intn(3), rng.Intn(3))
		case 7:
			subset := make([]string, 0, len(universe))
			for _, name := range universe {
				if rng.Intn(4) != 0 {
					subset = append(subset, name)
				}
			}
			s.Reconcile(installed(subset...))
		}
		checkInvariants(t, s)
	}
}
