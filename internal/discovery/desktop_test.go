package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDesktopEntry(t *testing.T) {
	const content = `# comment
[Desktop Entry]
Type=Application
Name=Terminal
Name[de]=Terminal (de)
Icon=utilities-terminal
Exec=gnome-terminal

[Desktop Action new-window]
Name=New Window
`
	entry, err := parseDesktopEntry(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "Terminal", entry.Name)
	assert.Equal(t, "utilities-terminal", entry.Icon)
	assert.True(t, entry.visible())
}

func TestDesktopEntry_Visible(t *testing.T) {
	tests := []struct {
		entry    desktopEntry
		expected bool
	}{
		{desktopEntry{Type: "Application"}, true},
		{desktopEntry{}, true},
		{desktopEntry{Type: "Link"}, false},
		{desktopEntry{Type: "Application", NoDisplay: true}, false},
		{desktopEntry{Type: "Application", Hidden: true}, false},
	}

	for _, test := range tests {
		if got := test.entry.visible(); got != test.expected {
			t.Errorf("%+v.visible() = %v, expected %v", test.entry, got, test.expected)
		}
	}
}
