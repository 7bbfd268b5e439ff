package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestParseID(t *testing.T) {
	id := NewID()

	parsed, err := ParseID(" " + id.String() + "\n")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid")
	assert.Error(t, err)
}

func TestElement_Kinds(t *testing.T) {
	tests := []struct {
		element Element
		kind    Kind
	}{
		{NewApplication("Safari", "/Applications/Safari.app", ""), KindApp},
		{NewFolder("Tools"), KindFolder},
		{NewEmpty(), KindEmpty},
	}

	for _, test := range tests {
		if got := test.element.Kind(); got != test.kind {
			t.Errorf("Kind() = %s, expected %s", got, test.kind)
		}
		if test.element.ElementID() == "" {
			t.Errorf("%s element has no id", test.kind)
		}
	}
}

func TestFolder_CloneIsIndependent(t *testing.T) {
	a := NewApplication("A", "/a.app", "")
	b := NewApplication("B", "/b.app", "")
	f := NewFolder("B", b, a)

	c := f.Clone()
	c.Items[0].Name = "changed"
	c.Items = append(c.Items, NewApplication("C", "/c.app", ""))

	assert.Equal(t, "B", f.Items[0].Name)
	assert.Len(t, f.Items, 2)
	assert.Equal(t, 1, f.IndexOf(a.ID))
	assert.True(t, f.Contains(b.ID))
	assert.Equal(t, -1, f.IndexOf(NewID()))
}

func TestCloneAll_DeepCopiesFolders(t *testing.T) {
	f := NewFolder("F", NewApplication("A", "/a.app", ""))
	src := []Element{f, NewEmpty()}

	dst := CloneAll(src)
	folder := dst[0].(Folder)
	folder.Items[0].Name = "mutated"

	assert.Equal(t, "A", src[0].(Folder).Items[0].Name)
	assert.Equal(t, src[1], dst[1])
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Mail", DisplayName(NewApplication("Mail", "/Mail.app", "")))
	assert.Equal(t, "Work", DisplayName(NewFolder("Work")))
	assert.Equal(t, "", DisplayName(NewEmpty()))
	assert.True(t, IsEmpty(NewEmpty()))
	assert.False(t, IsEmpty(NewFolder("x")))
}

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/Applications/Safari.app", "Safari"},
		{"/usr/share/applications/org.gnome.Terminal.desktop", "org.gnome.Terminal"},
		{"/opt/tool", "tool"},
		{"/tmp/.hidden", ".hidden"},
	}

	for _, test := range tests {
		if got := NameFromPath(test.path); got != test.expected {
			t.Errorf("NameFromPath(%q) = %q, expected %q", test.path, got, test.expected)
		}
	}
}
