package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/launchgrid/internal/model"
)

func app(name string) model.Application {
	return model.NewApplication(name, "/Applications/"+name+".app", "")
}

func installed(names ...string) []model.Installed {
	out := make([]model.Installed, 0, len(names))
	for _, name := range names {
		out = append(out, model.Installed{Name: name, Path: "/Applications/" + name + ".app"})
	}
	return out
}

// labels renders a layout compactly: apps by name, folders as [name:items],
// placeholders as "_".
func labels(elements []model.Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		switch v := e.(type) {
		case model.Application:
			out = append(out, v.Name)
		case model.Folder:
			s := "[" + v.Name + ":"
			for i, item := range v.Items {
				if i > 0 {
					s += ","
				}
				s += item.Name
			}
			out = append(out, s+"]")
		case model.Empty:
			out = append(out, "_")
		}
	}
	return out
}

func ids(elements []model.Element) []model.ID {
	out := make([]model.ID, len(elements))
	for i, e := range elements {
		out[i] = e.ElementID()
	}
	return out
}

func newStore(t *testing.T, pageSize int, elements ...model.Element) *Store {
	t.Helper()
	s := NewStore(pageSize)
	s.Replace(elements)
	require.Zero(t, s.Len()%pageSize)
	return s
}

func TestNewStore_DefaultPageSize(t *testing.T) {
	s := NewStore(0)
	assert.Equal(t, 35, s.PageSize())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.PageCount())
	assert.Empty(t, s.Pages(""))
}

func TestReplace_PadsAndCollapsesEmptyFolders(t *testing.T) {
	a, b := app("A"), app("B")
	s := newStore(t, 4, a, model.Folder{ID: model.NewID(), Name: "Dead"}, b)

	assert.Equal(t, []string{"A", "_", "B", "_"}, labels(s.Elements()))
	assert.Equal(t, 1, s.PageCount())
}

func TestSwap_ShortDropExchangesOnlyTwoSlots(t *testing.T) {
	elements := make([]model.Element, 0, 10)
	for i := 0; i < 10; i++ {
		elements = append(elements, app(fmt.Sprintf("App%d", i)))
	}
	s := newStore(t, 35, elements...)
	before := s.Elements()

	out := s.ResolveDrop(before[3].ElementID(), before[7].ElementID(), false)
	require.Equal(t, ActionSwap, out.Action)

	after := s.Elements()
	require.Len(t, after, 35)
	for i := range after {
		switch i {
		case 3:
			assert.Equal(t, before[7].ElementID(), after[i].ElementID())
		case 7:
			assert.Equal(t, before[3].ElementID(), after[i].ElementID())
		default:
			assert.Equal(t, before[i].ElementID(), after[i].ElementID(), "slot %d", i)
		}
	}
}

func TestSwap_ByPageAndSlot(t *testing.T) {
	s := newStore(t, 4, app("A"), app("B"), app("C"), app("D"), app("E"))

	assert.True(t, s.Swap(1, 0, 2))
	assert.Equal(t, []string{"A", "B", "C", "D", "_", "_", "E", "_"}, labels(s.Elements()))

	assert.False(t, s.Swap(0, 1, 1))
	assert.False(t, s.Swap(0, 0, 4))
	assert.False(t, s.Swap(5, 0, 1))
	assert.False(t, s.Swap(-1, 0, 1))
}

func TestNormalizePage_StableAndIdempotent(t *testing.T) {
	s := newStore(t, 4, app("A"), app("B"), app("C"), app("D"), app("E"))
	require.True(t, s.Swap(0, 0, 3))
	require.True(t, s.Swap(1, 0, 2))
	require.True(t, s.DeleteApp(s.Elements()[1].ElementID()))

	pageOne := ids(s.Elements()[4:])
	require.True(t, s.Swap(0, 0, 3))
	require.Equal(t, []string{"_", "C", "A", "D"}, labels(s.Elements()[:4]))

	require.True(t, s.NormalizePage(2))
	first := s.Elements()
	assert.Equal(t, []string{"C", "A", "D", "_"}, labels(first[:4]))
	assert.Equal(t, pageOne, ids(first[4:]), "other pages untouched")

	require.True(t, s.NormalizePage(0))
	assert.Equal(t, ids(first), ids(s.Elements()), "normalizing twice changes nothing")

	assert.False(t, s.NormalizePage(99))
}

func TestNormalizeAll(t *testing.T) {
	s := newStore(t, 3, app("A"), app("B"), app("C"), app("D"), app("E"), app("F"))
	require.True(t, s.Swap(0, 0, 2))
	require.True(t, s.DeleteApp(s.Elements()[3].ElementID()))
	require.True(t, s.Swap(1, 0, 2))

	s.NormalizeAll()
	assert.Equal(t, []string{"C", "B", "A", "F", "E", "_"}, labels(s.Elements()))
}

func TestLookupAndFind(t *testing.T) {
	x, y, a := app("X"), app("Y"), app("A")
	folder := model.NewFolder("F", x, y)
	s := newStore(t, 4, a, folder)

	loc, ok := s.Lookup(y.ID)
	require.True(t, ok)
	assert.True(t, loc.InFolder())
	assert.Equal(t, Location{Index: 1, Folder: folder.ID, Inner: 1}, loc)
	assert.Equal(t, 0, loc.Page(4))

	loc, ok = s.Lookup(a.ID)
	require.True(t, ok)
	assert.False(t, loc.InFolder())
	assert.Equal(t, 0, loc.Index)

	e, ok := s.Find(x.ID)
	require.True(t, ok)
	assert.Equal(t, x, e)

	e, ok = s.Find(folder.ID)
	require.True(t, ok)
	assert.Equal(t, model.KindFolder, e.Kind())

	_, ok = s.Find(model.NewID())
	assert.False(t, ok)
}

func TestElements_ReturnsCopy(t *testing.T) {
	s := newStore(t, 2, model.NewFolder("F", app("X")))

	elements := s.Elements()
	f := elements[0].(model.Folder)
	f.Items[0].Name = "changed"

	assert.Equal(t, "X", s.Elements()[0].(model.Folder).Items[0].Name)
}

func TestSubscribe_ReceivesSnapshotsUntilCancelled(t *testing.T) {
	s := newStore(t, 4, app("A"), app("B"))

	var got [][]string
	cancel := s.Subscribe(func(elements []model.Element) {
		got = append(got, labels(elements))
	})

	require.True(t, s.Swap(0, 0, 1))
	assert.False(t, s.Swap(0, 0, 0), "no-op does not notify")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"B", "A", "_", "_"}, got[0])

	cancel()
	require.True(t, s.Swap(0, 0, 1))
	assert.Len(t, got, 1)
}

func TestSubscribe_MayReadStore(t *testing.T) {
	s := newStore(t, 4, app("A"), app("B"))
	seen := 0
	s.Subscribe(func([]model.Element) {
		seen = s.Len()
	})

	require.True(t, s.Swap(0, 0, 1))
	assert.Equal(t, 4, seen)
}

func TestMutations_DropTrailingEmptyPages(t *testing.T) {
	s := NewStore(4)
	s.Reconcile(installed("A", "B", "C", "D", "E"))
	require.Equal(t, 2, s.PageCount())

	result := s.Reconcile(installed("A", "B", "C", "D"))
	assert.Equal(t, ReconcileResult{Removed: 1}, result)
	assert.Equal(t, []string{"A", "B", "C", "D"}, labels(s.Elements()))
	assert.Equal(t, 1, s.PageCount())

	s.Reconcile(installed("A", "B", "C", "D", "E"))
	e, ok := s.Find(s.Elements()[4].ElementID())
	require.True(t, ok)
	require.Equal(t, "E", model.DisplayName(e))

	require.True(t, s.DeleteApp(e.ElementID()))
	assert.Equal(t, []string{"A", "B", "C", "D"}, labels(s.Elements()))
	assert.Equal(t, 1, s.PageCount())
}

func TestMutations_KeepEmptyPagesBeforeOccupiedOnes(t *testing.T) {
	s := newStore(t, 2, app("A"), model.NewEmpty(), model.NewEmpty(), model.NewEmpty(), app("B"))

	assert.Equal(t, []string{"A", "_", "_", "_", "B", "_"}, labels(s.Elements()))

	require.True(t, s.DeleteApp(s.Elements()[4].ElementID()))
	assert.Equal(t, []string{"A", "_"}, labels(s.Elements()))
}
