package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/bmatcuk/doublestar/v4"
)

const (
	AppIcon = "launchgrid.png"
)

// iconThemeDirs are searched for named icons from .desktop entries
var iconThemeDirs = []string{
	"/usr/share/icons/hicolor",
	"/usr/share/pixmaps",
}

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// IconCache resolves and caches application icons. Unresolvable icons fall
// back to a theme icon.
type IconCache struct {
	mu       sync.Mutex
	loaded   map[string]fyne.Resource
	dirs     []string
	fallback fyne.Resource
}

// NewIconCache creates an icon cache searching the default icon theme dirs
func NewIconCache() *IconCache {
	return &IconCache{
		loaded:   make(map[string]fyne.Resource),
		dirs:     iconThemeDirs,
		fallback: theme.ComputerIcon(),
	}
}

// Resource returns the icon for handle, which is a file path or an icon
// theme name
func (c *IconCache) Resource(handle string) fyne.Resource {
	if handle == "" {
		return c.fallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.loaded[handle]; ok {
		return res
	}
	res := c.fallback
	for _, path := range iconCandidates(handle, c.dirs) {
		if loaded, err := fyne.LoadResourceFromPath(path); err == nil {
			res = loaded
			break
		}
	}
	c.loaded[handle] = res
	return res
}

// iconCandidates lists files that may hold the icon named by handle,
// largest raster sizes first
func iconCandidates(handle string, dirs []string) []string {
	if filepath.IsAbs(handle) {
		return []string{handle}
	}
	if strings.ContainsAny(handle, `*?[]{}\/`) {
		return nil
	}

	var out []string
	for _, dir := range dirs {
		fsys := os.DirFS(dir)
		var matches []string
		for _, pattern := range []string{"*/apps/" + handle + ".{png,svg}", handle + ".{png,svg}"} {
			found, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				continue
			}
			matches = append(matches, found...)
		}
		sort.Slice(matches, func(i, j int) bool {
			return iconRank(matches[i]) > iconRank(matches[j])
		})
		for _, m := range matches {
			out = append(out, filepath.Join(dir, m))
		}
	}
	return out
}

// iconRank orders theme sizes such as "256x256/apps/x.png"; scalable
// vectors rank lowest since Fyne rasterizes them itself
func iconRank(match string) int {
	size, _, found := strings.Cut(match, "x")
	if !found {
		return 0
	}
	n := 0
	for _, r := range size {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
