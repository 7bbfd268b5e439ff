package discovery

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const desktopGroup = "[Desktop Entry]"

// desktopEntry holds the keys of a freedesktop .desktop file the launcher
// cares about
type desktopEntry struct {
	Name      string
	Icon      string
	Type      string
	NoDisplay bool
	Hidden    bool
}

// visible reports whether the entry should appear on the grid
func (e desktopEntry) visible() bool {
	if e.NoDisplay || e.Hidden {
		return false
	}
	return e.Type == "" || e.Type == "Application"
}

// parseDesktopEntry reads the [Desktop Entry] group. Localized keys such as
// Name[de] are ignored in favour of the unlocalized value.
func parseDesktopEntry(r io.Reader) (desktopEntry, error) {
	var entry desktopEntry
	inGroup := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == desktopGroup
			continue
		}
		if !inGroup {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "Name":
			entry.Name = value
		case "Icon":
			entry.Icon = value
		case "Type":
			entry.Type = value
		case "NoDisplay":
			entry.NoDisplay = value == "true"
		case "Hidden":
			entry.Hidden = value == "true"
		}
	}
	if err := scanner.Err(); err != nil {
		return desktopEntry{}, fmt.Errorf("read desktop entry: %w", err)
	}
	return entry, nil
}
