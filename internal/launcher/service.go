package launcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/clock"
	"github.com/ytget/launchgrid/internal/discovery"
	"github.com/ytget/launchgrid/internal/hover"
	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/model"
	"github.com/ytget/launchgrid/internal/persist"
	"github.com/ytget/launchgrid/internal/platform"
)

// Errors returned by Launch
var (
	ErrUnknownElement = errors.New("unknown element")
	ErrNotApplication = errors.New("element is not an application")
)

// ErrClosed is returned by Start once Close has been called
var ErrClosed = errors.New("launcher closed")

var _ Launchpad = (*Service)(nil)

// Service handles launcher operations
type Service struct {
	store    *layout.Store
	intent   *hover.Intent
	repo     persist.Repository
	scanner  Scanner
	launch   LaunchFunc
	dispatch func(func())
	clock    clock.Clock
	logger   *zap.Logger

	threshold time.Duration
	watch     bool
	debounce  time.Duration

	refreshMu sync.Mutex // one scan at a time

	mu          sync.Mutex
	saver       *persist.Saver
	watcher     *discovery.Watcher
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	unsubscribe []func()
	onOutcome   func(layout.Outcome)
	started     bool
	closed      bool
}

// Option configures a Service
type Option func(*Service)

// WithDispatch applies scan results and timer-driven drops through fn. The
// Fyne shell passes fyne.Do so that every mutation happens on the UI thread.
func WithDispatch(fn func(func())) Option {
	return func(s *Service) {
		if fn != nil {
			s.dispatch = fn
		}
	}
}

// WithClock replaces the real clock for the hover and watcher timers
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLaunchFunc replaces platform.Launch
func WithLaunchFunc(fn LaunchFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.launch = fn
		}
	}
}

// WithWatcher enables rescans on filesystem changes under the scanner roots
func WithWatcher(debounce time.Duration) Option {
	return func(s *Service) {
		s.watch = true
		s.debounce = debounce
	}
}

// WithHoverThreshold sets the long-hover threshold
func WithHoverThreshold(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.threshold = d
		}
	}
}

// NewService creates a launcher service over store. Nothing is loaded or
// scanned until Start.
func NewService(store *layout.Store, repo persist.Repository, scanner Scanner, opts ...Option) *Service {
	s := &Service{
		store:     store,
		repo:      repo,
		scanner:   scanner,
		launch:    platform.Launch,
		dispatch:  func(fn func()) { fn() },
		clock:     clock.Real(),
		logger:    zap.NewNop(),
		threshold: hover.DefaultThreshold,
		debounce:  discovery.DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.intent = hover.New(s.resolve,
		hover.WithClock(s.clock),
		hover.WithThreshold(s.threshold),
		hover.WithDispatch(s.dispatch),
		hover.WithLogger(s.logger.Named("hover")),
	)
	return s
}

// Store returns the underlying layout store
func (s *Service) Store() *layout.Store {
	return s.store
}

// Start loads the saved layout, starts persisting changes, rescans the
// roots and, if enabled, starts watching them. A missing or unreadable
// layout is replaced by a fresh scan. A failed scan is logged and the
// launcher keeps whatever layout it has.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.started {
		s.mu.Unlock()
		return errors.New("launcher already started")
	}
	s.started = true
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.load()

	if s.repo != nil {
		saver := persist.NewSaver(s.repo, s.logger.Named("saver"))
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			saver.Close()
			return ErrClosed
		}
		s.saver = saver
		s.unsubscribe = append(s.unsubscribe, s.store.Subscribe(saver.Submit))
		s.mu.Unlock()
	}

	if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("startup scan failed", zap.Error(err))
	}

	if !s.watch {
		return nil
	}
	watcher, err := discovery.NewWatcher(s.scanner.Roots(), s.debounce, func() {
		s.refreshInBackground(ctx)
	},
		discovery.WithWatcherClock(s.clock),
		discovery.WithWatcherLogger(s.logger.Named("watcher")),
	)
	if err != nil {
		return fmt.Errorf("failed to watch application directories: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		watcher.Close()
		return ErrClosed
	}
	s.watcher = watcher
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("watcher stopped", zap.Error(err))
		}
	}()
	return nil
}

// load replaces the store contents with the saved layout, if there is one
func (s *Service) load() {
	if s.repo == nil {
		return
	}
	elements, err := s.repo.Load()
	switch {
	case err == nil:
		s.store.Replace(elements)
		s.logger.Info("layout loaded", zap.Int("elements", len(elements)))
	case errors.Is(err, persist.ErrNoLayout):
		s.logger.Info("no saved layout, starting from discovery")
	default:
		s.logger.Warn("failed to load layout, starting from discovery", zap.Error(err))
	}
}

// Refresh scans the roots and reconciles the layout with the result. The
// scan runs on the caller; the reconcile runs through the dispatcher. On a
// scan error the layout is left unchanged.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	installed, err := s.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan applications: %w", err)
	}

	s.dispatch(func() {
		result := s.store.Reconcile(installed)
		if result.Changed() {
			s.logger.Info("layout reconciled",
				zap.Int("added", result.Added),
				zap.Int("removed", result.Removed),
			)
		}
	})
	return nil
}

func (s *Service) refreshInBackground(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("rescan failed", zap.Error(err))
		}
	}()
}

// Close stops the watcher and any pending hover, then writes the last
// layout snapshot
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel, watcher, saver := s.cancel, s.watcher, s.saver
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	s.intent.Reset()
	if cancel != nil {
		cancel()
	}
	if watcher != nil {
		watcher.Close()
	}
	s.wg.Wait()

	for _, fn := range unsubscribe {
		fn()
	}
	if saver != nil {
		saver.Close()
	}
}

// SetUpdateCallback sets the callback function for layout updates
func (s *Service) SetUpdateCallback(callback func()) {
	if callback == nil {
		return
	}
	cancel := s.store.Subscribe(func([]model.Element) { callback() })

	s.mu.Lock()
	s.unsubscribe = append(s.unsubscribe, cancel)
	s.mu.Unlock()
}

// SetOutcomeCallback sets the callback receiving every drop outcome
func (s *Service) SetOutcomeCallback(callback func(layout.Outcome)) {
	s.mu.Lock()
	s.onOutcome = callback
	s.mu.Unlock()
}

// resolve is the hover intent's resolution hook
func (s *Service) resolve(dragged, target model.ID, longHover bool) {
	outcome := s.store.ResolveDrop(dragged, target, longHover)
	if outcome.Action == layout.ActionRejected {
		s.logger.Info("drop rejected, no free slot on the target page",
			zap.String("dragged", dragged.String()),
			zap.String("target", target.String()),
		)
	}

	s.mu.Lock()
	onOutcome := s.onOutcome
	s.mu.Unlock()
	if onOutcome != nil {
		onOutcome(outcome)
	}
}

// HoverEnter starts the long-hover timer for dragged resting over target
func (s *Service) HoverEnter(dragged, target model.ID) bool {
	return s.intent.Enter(dragged, target)
}

// HoverExit cancels a pending long hover
func (s *Service) HoverExit() {
	s.intent.Exit()
}

// Drop resolves a release of dragged over target
func (s *Service) Drop(dragged, target model.ID) bool {
	return s.intent.Drop(dragged, target)
}

// CancelDrag forgets a drag that ended outside the grid
func (s *Service) CancelDrag() {
	s.intent.Reset()
}

// SetHoverThreshold changes the long-hover threshold in milliseconds
func (s *Service) SetHoverThreshold(ms int) {
	s.intent.SetThreshold(time.Duration(ms) * time.Millisecond)
}

// Delete removes an application icon from the layout
func (s *Service) Delete(id model.ID) bool {
	return s.store.DeleteApp(id)
}

// ReturnApp moves an application out of its folder
func (s *Service) ReturnApp(appID, folderID model.ID) bool {
	return s.store.ReturnApp(appID, folderID)
}

// ReorderInFolder moves a folder item from one position to another
func (s *Service) ReorderInFolder(folderID model.ID, from, to int) bool {
	return s.store.ReorderInFolder(folderID, from, to)
}

// RenameFolder renames a folder
func (s *Service) RenameFolder(folderID model.ID, name string) bool {
	return s.store.RenameFolder(folderID, name)
}

// Swap exchanges two slots on one page
func (s *Service) Swap(page, slotA, slotB int) bool {
	return s.store.Swap(page, slotA, slotB)
}

// Pages returns the filtered layout split into pages
func (s *Service) Pages(query string) [][]model.Element {
	return s.store.Pages(query)
}

// PageSize returns the number of slots per page
func (s *Service) PageSize() int {
	return s.store.PageSize()
}

// Find returns the element with id, including applications inside folders
func (s *Service) Find(id model.ID) (model.Element, bool) {
	return s.store.Find(id)
}

// Launch starts the application with id
func (s *Service) Launch(id model.ID) error {
	element, ok := s.store.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, id)
	}
	app, ok := element.(model.Application)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotApplication, model.DisplayName(element))
	}
	if err := s.launch(app.Path); err != nil {
		return fmt.Errorf("failed to launch %s: %w", app.Name, err)
	}
	s.logger.Info("application launched", zap.String("name", app.Name), zap.String("path", app.Path))
	return nil
}
