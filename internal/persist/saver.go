package persist

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/model"
)

// Saver writes layout snapshots in the background. Only the most recent
// snapshot is kept; a failed write is logged and not retried.
type Saver struct {
	repo   Repository
	logger *zap.Logger

	mu      sync.Mutex
	pending []model.Element
	dirty   bool

	writeMu sync.Mutex
	wake    chan struct{}
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewSaver starts a background saver writing to repo
func NewSaver(repo Repository, logger *zap.Logger) *Saver {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Saver{
		repo:   repo,
		logger: logger,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.loop()
	return s
}

// Submit queues a snapshot, replacing any snapshot not yet written. It
// never blocks on I/O, so it can be used directly as a store subscriber.
func (s *Saver) Submit(elements []model.Element) {
	s.mu.Lock()
	s.pending = elements
	s.dirty = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Flush writes the queued snapshot, if any, before returning
func (s *Saver) Flush() {
	s.write()
}

// Close writes the queued snapshot and stops the background goroutine
func (s *Saver) Close() {
	s.once.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Saver) loop() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.write()
		case <-s.stop:
			s.write()
			return
		}
	}
}

// write takes the queued snapshot while holding writeMu so that writes
// land in the order the snapshots were taken.
func (s *Saver) write() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	elements, dirty := s.pending, s.dirty
	s.pending, s.dirty = nil, false
	s.mu.Unlock()

	if !dirty {
		return
	}
	if err := s.repo.Save(elements); err != nil {
		s.logger.Warn("failed to save layout", zap.Error(err))
		return
	}
	s.logger.Debug("layout saved", zap.Int("slots", len(elements)))
}
