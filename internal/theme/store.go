package theme

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// Listener is notified with the new theme after every successful Set.
type Listener func(Theme)

// Store holds the current theme for the lifetime of an application.
//
// Readers get a copy from Current and never observe a half-applied change.
// Set calls are serialised end to end, so listeners see themes in the same
// order they were stored. Listeners must not call Set. Store is safe for
// concurrent use.
type Store struct {
	current atomic.Pointer[Theme]
	logger  hclog.Logger

	// setMu serialises Set, covering both the swap and the notification.
	setMu sync.Mutex

	mu        sync.Mutex
	nextID    int
	listeners []watcher
}

type watcher struct {
	id int
	fn Listener
}

// NewStore creates a store holding initial. A nil logger discards output.
func NewStore(initial Theme, logger hclog.Logger) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("invalid initial theme: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Store{logger: logger.Named("theme")}
	s.current.Store(&initial)
	return s, nil
}

// Current returns a snapshot of the current theme.
func (s *Store) Current() Theme {
	return *s.current.Load()
}

// Set replaces the current theme and notifies listeners in registration order.
// An invalid theme is rejected and the current theme is kept.
func (s *Store) Set(t Theme) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("rejecting theme %q: %w", t.Name, err)
	}

	s.setMu.Lock()
	defer s.setMu.Unlock()

	s.current.Store(&t)

	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	s.logger.Debug("theme changed", "name", t.Name, "background", t.Background, "listeners", len(listeners))
	for _, w := range listeners {
		w.fn(t)
	}
	return nil
}

// Watch registers a listener and returns a function that removes it.
// Listeners run on the goroutine that called Set.
func (s *Store) Watch(l Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, watcher{id: id, fn: l})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.listeners = slices.DeleteFunc(s.listeners, func(w watcher) bool { return w.id == id })
		s.mu.Unlock()
	}
}
