// Package hover tells a plain drop apart from "hold here to group". Resting
// a dragged element on a target starts a single-shot timer; if the pointer
// stays until it elapses the drop is resolved as a long hover.
package hover

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/clock"
	"github.com/ytget/launchgrid/internal/model"
)

// DefaultThreshold is how long the pointer must rest on a target to group
const DefaultThreshold = 1500 * time.Millisecond

// State of the intent timer
type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateFired     State = "fired"
	StateCancelled State = "cancelled"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// ResolveFunc applies a drop. It is called with longHover true when the
// threshold elapsed and false for an immediate drop.
type ResolveFunc func(dragged, target model.ID, longHover bool)

// Pair identifies a dragged element and the target it rests on
type Pair struct {
	Dragged model.ID
	Target  model.ID
}

// Intent tracks at most one pending long-hover at a time
type Intent struct {
	mu         sync.Mutex
	clock      clock.Clock
	threshold  time.Duration
	resolve    ResolveFunc
	dispatch   func(func())
	logger     *zap.Logger
	state      State
	pending    Pair
	last       State
	lastPair   Pair
	timer      clock.Timer
	generation uint64
}

// Option configures an Intent
type Option func(*Intent)

// WithClock replaces the real clock, typically with a fake in tests
func WithClock(c clock.Clock) Option {
	return func(i *Intent) {
		if c != nil {
			i.clock = c
		}
	}
}

// WithThreshold sets the long-hover threshold
func WithThreshold(d time.Duration) Option {
	return func(i *Intent) {
		if d > 0 {
			i.threshold = d
		}
	}
}

// WithDispatch runs timer-driven resolutions through fn, for example to hop
// onto the UI thread. Immediate drops are resolved on the caller.
func WithDispatch(fn func(func())) Option {
	return func(i *Intent) {
		if fn != nil {
			i.dispatch = fn
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(i *Intent) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New creates an idle intent timer that reports drops to resolve
func New(resolve ResolveFunc, opts ...Option) *Intent {
	i := &Intent{
		clock:     clock.Real(),
		threshold: DefaultThreshold,
		resolve:   resolve,
		dispatch:  func(fn func()) { fn() },
		logger:    zap.NewNop(),
		state:     StateIdle,
		last:      StateIdle,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// State returns the current state. It is StatePending while a timer runs
// and StateIdle otherwise.
func (i *Intent) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Last returns how the most recent hover ended
func (i *Intent) Last() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.last
}

// Threshold returns the configured long-hover duration
func (i *Intent) Threshold() time.Duration {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.threshold
}

// SetThreshold changes the duration used by subsequent hovers
func (i *Intent) SetThreshold(d time.Duration) {
	if d <= 0 {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.threshold = d
}

// Enter starts the timer for dragged resting on target. It returns false
// without effect while another hover is pending or when the pair is
// degenerate.
func (i *Intent) Enter(dragged, target model.ID) bool {
	if dragged == "" || target == "" || dragged == target {
		return false
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state == StatePending {
		return false
	}
	i.generation++
	gen := i.generation
	i.state = StatePending
	i.pending = Pair{Dragged: dragged, Target: target}
	i.timer = i.clock.AfterFunc(i.threshold, func() { i.fire(gen) })

	i.logger.Debug("hover started",
		zap.String("dragged", dragged.String()),
		zap.String("target", target.String()),
		zap.Duration("threshold", i.threshold),
	)
	return true
}

// Exit cancels a pending hover
func (i *Intent) Exit() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state != StatePending {
		return
	}
	i.cancelLocked()
	i.logger.Debug("hover cancelled")
}

// Drop resolves the gesture at release time. A pending hover is cancelled
// and resolved as a plain drop. A drop that repeats the pair whose hover
// already fired is absorbed, since that gesture was resolved by the timer.
// It reports whether resolve was called.
func (i *Intent) Drop(dragged, target model.ID) bool {
	i.mu.Lock()
	switch {
	case i.state == StatePending:
		i.cancelLocked()
	case i.last == StateFired && i.lastPair == (Pair{Dragged: dragged, Target: target}):
		i.last = StateIdle
		i.mu.Unlock()
		return false
	}
	i.last = StateIdle
	resolve := i.resolve
	i.mu.Unlock()

	if dragged == "" || target == "" || dragged == target || resolve == nil {
		return false
	}
	resolve(dragged, target, false)
	return true
}

// Reset cancels any pending hover and forgets the last outcome, for example
// when a drag is abandoned outside the grid.
func (i *Intent) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state == StatePending {
		i.cancelLocked()
	}
	i.last = StateIdle
	i.lastPair = Pair{}
}

// cancelLocked stops the timer and returns to idle. Caller holds mu.
func (i *Intent) cancelLocked() {
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	i.generation++
	i.state = StateIdle
	i.last = StateCancelled
	i.lastPair = i.pending
	i.pending = Pair{}
}

// fire runs when the timer elapses. Stale generations belong to hovers that
// were cancelled after the timer was already scheduled to run.
func (i *Intent) fire(gen uint64) {
	i.mu.Lock()
	if i.state != StatePending || gen != i.generation {
		i.mu.Unlock()
		return
	}
	pair := i.pending
	i.timer = nil
	i.state = StateIdle
	i.last = StateFired
	i.lastPair = pair
	i.pending = Pair{}
	resolve, dispatch := i.resolve, i.dispatch
	i.mu.Unlock()

	i.logger.Debug("hover fired",
		zap.String("dragged", pair.Dragged.String()),
		zap.String("target", pair.Target.String()),
	)
	if resolve != nil {
		dispatch(func() { resolve(pair.Dragged, pair.Target, true) })
	}
}
