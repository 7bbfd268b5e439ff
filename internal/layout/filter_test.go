package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/launchgrid/internal/model"
)

func TestFiltered(t *testing.T) {
	safari, mail, notes := app("Safari"), app("Mail"), app("Notes")
	folder := model.NewFolder("Office", mail)
	s := newStore(t, 4, safari, folder, model.NewEmpty(), notes)

	tests := []struct {
		query    string
		expected []string
	}{
		{"", []string{"Safari", "[Office:Mail]", "_", "Notes"}},
		{"   ", []string{}},
		{"saf", []string{"Safari"}},
		{"MAIL", []string{"[Office:Mail]"}},
		{"office", []string{}},
		{"s", []string{"Safari", "Notes"}},
		{"zzz", []string{}},
	}

	for _, test := range tests {
		got := labels(s.Filtered(test.query))
		assert.Equal(t, test.expected, got, "query %q", test.query)
	}
}

func TestFiltered_WhitespaceIsMatchedLiterally(t *testing.T) {
	s := newStore(t, 4, app("Visual Studio"), app("Mail"))

	assert.Equal(t, []string{"Visual Studio"}, labels(s.Filtered(" ")))
	assert.Equal(t, []string{"Visual Studio"}, labels(s.Filtered("l s")))
	assert.Empty(t, s.Filtered(" mail"))
	assert.False(t, MatchesQuery("Mail", " "))
	assert.True(t, MatchesQuery("Mail", ""))
}

func TestFiltered_UnicodeCaseFolding(t *testing.T) {
	s := newStore(t, 4, app("Straße"), app("ÉDITEUR"))

	assert.Equal(t, []string{"Straße"}, labels(s.Filtered("STRASSE")))
	assert.Equal(t, []string{"ÉDITEUR"}, labels(s.Filtered("éditeur")))
}

func TestPages_WithQueryMayBeShort(t *testing.T) {
	s := newStore(t, 2, app("A1"), app("B"), app("A2"), app("A3"))

	pages := s.Pages("a")
	require.Len(t, pages, 2)
	assert.Equal(t, []string{"A1", "A2"}, labels(pages[0]))
	assert.Equal(t, []string{"A3"}, labels(pages[1]))

	assert.Len(t, s.Page(1), 2)
	assert.Nil(t, s.Page(2))
	assert.Nil(t, s.Page(-1))
}
