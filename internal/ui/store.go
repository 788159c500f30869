package ui

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/unidash/internal/pkg/kvstore"
)

// SidebarKey is the storage key of the desktop sidebar preference
const SidebarKey = "sidebar_open"

// DefaultToastDuration applies when a toast does not specify one
const DefaultToastDuration = 5 * time.Second

// ToastInput is what callers pass to show a toast. A nil Duration uses
// DefaultToastDuration; a zero Duration keeps the toast until dismissed.
type ToastInput struct {
	Title    string
	Message  string
	Type     MessageType
	Duration *time.Duration
}

// Store applies actions to the UI state and runs their side effects
type Store struct {
	mu      sync.Mutex
	state   State
	kv      kvstore.Store
	desktop bool
	timers  map[string]*time.Timer
	closed  bool
	now     func() time.Time
	logger  zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithDesktop sets whether the sidebar preference is remembered. Defaults to true.
func WithDesktop(desktop bool) Option {
	return func(s *Store) { s.desktop = desktop }
}

// WithClock replaces time.Now for notification timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store. On desktop the sidebar starts in the remembered
// position, open if nothing was stored; otherwise it starts closed.
func NewStore(kv kvstore.Store, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		desktop: true,
		timers:  make(map[string]*time.Timer),
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.desktop {
		s.state.SidebarOpen = true
		if v, ok := kv.Get(SidebarKey); ok {
			if open, err := strconv.ParseBool(v); err == nil {
				s.state.SidebarOpen = open
			}
		}
	}
	return s
}

// State returns the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and returns the new state
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(a)
}

func (s *Store) dispatchLocked(a Action) State {
	s.state = Reduce(s.state, a)

	switch a.(type) {
	case ToggleSidebar, SetSidebar:
		s.persistSidebar(s.state.SidebarOpen)
	}
	return s.state
}

func (s *Store) persistSidebar(open bool) {
	if !s.desktop {
		return
	}
	if err := s.kv.Set(SidebarKey, strconv.FormatBool(open)); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to save sidebar preference")
	}
}

// Toast shows a toast and schedules its dismissal. It returns the toast id,
// or an empty id once the store is closed and the toast was not shown.
func (s *Store) Toast(in ToastInput) string {
	duration := DefaultToastDuration
	if in.Duration != nil {
		duration = *in.Duration
	}

	toast := Toast{
		ID:       uuid.New().String(),
		Title:    in.Title,
		Message:  in.Message,
		Type:     in.Type,
		Duration: duration,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ""
	}
	s.dispatchLocked(AddToast{Toast: toast})
	if duration > 0 {
		s.timers[toast.ID] = time.AfterFunc(duration, func() { s.expire(toast.ID) })
	}
	return toast.ID
}

// DismissToast removes a toast and cancels its pending dismissal
func (s *Store) DismissToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.dispatchLocked(DismissToast{ID: id})
}

func (s *Store) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.timers[id]; !ok {
		return
	}
	delete(s.timers, id)
	s.dispatchLocked(DismissToast{ID: id})
}

// Notify adds an unread notification and returns its id
func (s *Store) Notify(title, message string, typ MessageType) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: s.now(),
	}
	s.dispatchLocked(AddNotification{Notification: n})
	return n.ID
}

// Close cancels every pending toast dismissal. The state is left as it is.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
