// Package hooks turns the shared store and the incoming request into the
// callbacks and flags the layout components consume.
package hooks

import (
	"net/http"
	"strings"

	"github.com/mileusna/useragent"

	"github.com/ghiac/appshell/store"
)

// SwitchDarkMode returns a callback that flips dark mode on the given store
func SwitchDarkMode(s *store.AppStore) func() {
	return func() {
		s.Dispatch(store.ToggleDarkMode{})
	}
}

// Logout returns a callback that signs the visitor out
func Logout(s *store.AppStore) func() {
	return func() {
		s.Dispatch(store.LogOut{})
	}
}

// OnMobile classifies the request as coming from a narrow viewport.
// The Sec-CH-UA-Mobile client hint wins; otherwise phones and tablets are
// recognized from the User-Agent.
func OnMobile(r *http.Request) bool {
	if hint := r.Header.Get("Sec-CH-UA-Mobile"); hint != "" {
		return strings.TrimSpace(hint) == "?1"
	}
	ua := useragent.Parse(r.UserAgent())
	return ua.Mobile || ua.Tablet
}
