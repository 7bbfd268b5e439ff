package layout

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/model"
)

// Grid dimensions used when no configuration is supplied
const (
	DefaultColumns  = 7
	DefaultRows     = 5
	DefaultPageSize = DefaultColumns * DefaultRows
)

// Store holds the launcher layout and serializes every change to it
type Store struct {
	mu       sync.RWMutex
	pageSize int
	elements []model.Element
	index    map[model.ID]Location

	pubMu   sync.Mutex // orders notifications to match commit order
	subsMu  sync.Mutex
	subs    map[int]func([]model.Element)
	nextSub int

	logger *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for mutation tracing
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an empty store whose pages hold pageSize elements.
// A non-positive pageSize falls back to DefaultPageSize.
func NewStore(pageSize int, opts ...Option) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &Store{
		pageSize: pageSize,
		index:    make(map[model.ID]Location),
		subs:     make(map[int]func([]model.Element)),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageSize returns the number of slots per page
func (s *Store) PageSize() int {
	return s.pageSize
}

// Len returns the number of slots in the layout
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// PageCount returns the number of pages in the unfiltered layout
func (s *Store) PageCount() int {
	return s.Len() / s.pageSize
}

// Elements returns a copy of the full layout
func (s *Store) Elements() []model.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneAll(s.elements)
}

// Lookup returns where the element with the given ID currently lives
func (s *Store) Lookup(id model.ID) (Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loc, ok := s.index[id]
	return loc, ok
}

// Find resolves an ID to its element. Applications inside folders are
// returned as themselves, not as their folder.
func (s *Store) Find(id model.ID) (model.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.index[id]
	if !ok {
		return nil, false
	}
	e := s.elements[loc.Index]
	if loc.InFolder() {
		return e.(model.Folder).Items[loc.Inner], true
	}
	return model.Clone(e), true
}

// Replace installs a complete layout, such as one loaded from disk. Folders
// without items become placeholders and the tail is padded to a full page.
func (s *Store) Replace(elements []model.Element) {
	s.mutate("replace", func(g *grid) bool {
		g.items = make([]model.Element, 0, len(elements))
		for _, e := range elements {
			if f, ok := e.(model.Folder); ok && len(f.Items) == 0 {
				e = model.NewEmpty()
			}
			g.items = append(g.items, model.Clone(e))
		}
		return true
	})
}

// Swap exchanges two slots of the same page. It is a no-op when either slot
// is out of range or both are the same.
func (s *Store) Swap(page, slotA, slotB int) bool {
	if page < 0 || slotA < 0 || slotB < 0 || slotA >= s.pageSize || slotB >= s.pageSize {
		return false
	}
	a, b := page*s.pageSize+slotA, page*s.pageSize+slotB
	return s.mutate("swap", func(g *grid) bool {
		return g.swap(a, b)
	})
}

// NormalizePage compacts the page holding flat index i so that occupied
// slots come first in their original order.
func (s *Store) NormalizePage(i int) bool {
	return s.mutate("normalize_page", func(g *grid) bool {
		return g.normalizePage(i)
	})
}

// NormalizeAll compacts every page
func (s *Store) NormalizeAll() {
	s.mutate("normalize_all", func(g *grid) bool {
		g.normalizeAll()
		return true
	})
}

// Subscribe registers fn to receive a snapshot after every committed
// mutation, in commit order. fn must not mutate the store synchronously.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func([]model.Element)) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

// mutate runs op against a copy of the layout. If op reports a change the
// copy is padded, committed and published; otherwise it is discarded and
// the layout is left exactly as it was.
func (s *Store) mutate(name string, op func(g *grid) bool) bool {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	g := &grid{size: s.pageSize, items: model.CloneAll(s.elements)}
	if !op(g) {
		s.mu.Unlock()
		s.logger.Debug("layout mutation skipped", zap.String("op", name))
		return false
	}
	g.fixTail()
	s.elements = g.items
	s.index = buildIndex(s.elements)
	snapshot := model.CloneAll(s.elements)
	s.mu.Unlock()

	s.logger.Debug("layout mutated",
		zap.String("op", name),
		zap.Int("slots", len(snapshot)),
	)
	s.notify(snapshot)
	return true
}

func (s *Store) notify(snapshot []model.Element) {
	s.subsMu.Lock()
	subs := make([]func([]model.Element), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(model.CloneAll(snapshot))
	}
}

// locate returns the location of id in the committed layout, which is also
// valid for a working copy that has not been changed yet. Caller holds mu.
func (s *Store) locate(id model.ID) (Location, bool) {
	loc, ok := s.index[id]
	return loc, ok
}
