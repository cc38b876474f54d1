package model

// AppSharedState is a read-only snapshot of the application-wide state the
// layout shell depends on
type AppSharedState struct {
	DarkMode        bool
	IsAuthenticated bool
	CurrentUser     string // display name, empty when signed out
}

// StateReader exposes the current shared state without allowing writes
type StateReader interface {
	State() AppSharedState
}
