package store

import (
	"sync"

	"github.com/ghiac/appshell/model"
)

// Action is a state transition request handled by Reduce
type Action interface {
	actionName() string
}

// SetDarkMode turns dark mode on or off
type SetDarkMode struct {
	On bool
}

// ToggleDarkMode flips dark mode
type ToggleDarkMode struct{}

// LogIn marks the visitor as authenticated
type LogIn struct {
	User string
}

// LogOut clears authentication
type LogOut struct{}

func (SetDarkMode) actionName() string    { return "DARK_MODE" }
func (ToggleDarkMode) actionName() string { return "DARK_MODE_TOGGLE" }
func (LogIn) actionName() string          { return "LOG_IN" }
func (LogOut) actionName() string         { return "LOG_OUT" }

// ActionName returns the stable name of an action, used in logs and metrics
func ActionName(a Action) string {
	if a == nil {
		return ""
	}
	return a.actionName()
}

// Reduce returns the state that results from applying a to s
func Reduce(s model.AppSharedState, a Action) model.AppSharedState {
	switch act := a.(type) {
	case SetDarkMode:
		s.DarkMode = act.On
	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	case LogIn:
		s.IsAuthenticated = true
		s.CurrentUser = act.User
	case LogOut:
		s.IsAuthenticated = false
		s.CurrentUser = ""
	}
	return s
}

// AppStore holds the shared state of one visitor. Components only see
// snapshots through State; all writes go through Dispatch.
type AppStore struct {
	state model.AppSharedState
	mu    sync.RWMutex
}

// NewAppStore creates a store with the given initial state
func NewAppStore(initial model.AppSharedState) *AppStore {
	return &AppStore{state: initial}
}

// State returns a snapshot of the current state
func (s *AppStore) State() model.AppSharedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action and returns the new state
func (s *AppStore) Dispatch(a Action) model.AppSharedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

var _ model.StateReader = (*AppStore)(nil)
