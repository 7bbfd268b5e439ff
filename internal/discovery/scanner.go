package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/model"
	"github.com/ytget/launchgrid/internal/platform"
)

// ErrNoRoots is returned when a scanner has nothing to walk
var ErrNoRoots = errors.New("no discovery roots configured")

// Options configures a Scanner
type Options struct {
	Roots    []string
	Pattern  string // doublestar pattern matched against the entry's base name
	MaxDepth int    // levels below each root to inspect; 1 means direct children
}

// Scanner lists installed applications
type Scanner struct {
	opts   Options
	logger *zap.Logger
}

// NewScanner creates a scanner. An empty pattern matches every entry and a
// non-positive depth means direct children only.
func NewScanner(opts Options, logger *zap.Logger) *Scanner {
	if opts.Pattern == "" {
		opts.Pattern = "*"
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{opts: opts, logger: logger}
}

// Roots returns the directories the scanner walks
func (s *Scanner) Roots() []string {
	return append([]string(nil), s.opts.Roots...)
}

// Scan walks every root and returns the applications found, ordered by
// path. Roots that do not exist are skipped.
func (s *Scanner) Scan(ctx context.Context) ([]model.Installed, error) {
	if len(s.opts.Roots) == 0 {
		return nil, ErrNoRoots
	}
	if !doublestar.ValidatePattern(s.opts.Pattern) {
		return nil, fmt.Errorf("invalid bundle pattern %q", s.opts.Pattern)
	}

	var (
		mu    sync.Mutex
		found = make(map[string]model.Installed)
	)
	for _, root := range s.opts.Roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			s.logger.Debug("skipping discovery root", zap.String("root", root))
			continue
		}

		conf := fastwalk.Config{Follow: false}
		err = fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err != nil || path == root {
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			depth := len(strings.Split(rel, string(os.PathSeparator)))
			if depth > s.opts.MaxDepth {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			matched, _ := doublestar.Match(s.opts.Pattern, filepath.Base(path))
			if !matched {
				if d.IsDir() && depth == s.opts.MaxDepth {
					return filepath.SkipDir
				}
				return nil
			}

			inst, ok := s.inspect(path)
			if ok {
				mu.Lock()
				if _, dup := found[inst.Path]; !dup {
					found[inst.Path] = inst
				}
				mu.Unlock()
			}
			if d.IsDir() {
				// bundles are opaque
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	out := make([]model.Installed, 0, len(found))
	for _, inst := range found {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	s.logger.Debug("discovery scan finished",
		zap.Strings("roots", s.opts.Roots),
		zap.Int("found", len(out)),
	)
	return out, nil
}

// inspect turns a matching path into an Installed record. Desktop entries
// supply their own name and icon and may hide themselves.
func (s *Scanner) inspect(path string) (model.Installed, bool) {
	inst := model.Installed{Name: model.NameFromPath(path), Path: path}
	if !strings.HasSuffix(path, platform.DesktopEntryExt) {
		return inst, true
	}

	f, err := os.Open(path)
	if err != nil {
		s.logger.Debug("unreadable desktop entry", zap.String("path", path), zap.Error(err))
		return inst, false
	}
	defer f.Close()

	entry, err := parseDesktopEntry(f)
	if err != nil || !entry.visible() {
		return inst, false
	}
	if entry.Name != "" {
		inst.Name = entry.Name
	}
	inst.Icon = entry.Icon
	return inst, true
}
