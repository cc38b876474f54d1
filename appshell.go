package appshell

import (
	"fmt"

	"github.com/ghiac/appshell/config"
	"github.com/ghiac/appshell/log"
	"github.com/ghiac/appshell/metrics"
	"github.com/ghiac/appshell/model"
	"github.com/ghiac/appshell/session"
	"github.com/ghiac/appshell/store"
)

// Shell serves the application layout shell: one page per navigation link
// plus the endpoints behind the sidebar controls
type Shell struct {
	cfg      *config.Config
	items    []model.LinkDescriptor
	visitors *store.Registry
	sessions *session.Manager
	metrics  *metrics.Metrics
}

// Options allows configuring Shell behavior
type Options struct {
	// Items replaces the menu loaded from cfg.MenuPath
	Items []model.LinkDescriptor
}

// New creates a Shell from configuration
func New(cfg *config.Config) (*Shell, error) {
	return NewWithOptions(cfg, nil)
}

// NewWithOptions creates a Shell with custom options
func NewWithOptions(cfg *config.Config, opts *Options) (*Shell, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var items []model.LinkDescriptor
	if opts != nil && opts.Items != nil {
		items = opts.Items
	} else {
		loaded, err := model.LoadMenu(cfg.MenuPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu: %w", err)
		}
		items = loaded
	}

	visitors, err := store.NewRegistry(cfg.Store.MaxVisitors, model.AppSharedState{
		DarkMode: cfg.Store.DarkModeDefault,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create visitor registry: %w", err)
	}

	if cfg.Session.Secret == "" {
		log.Log.Warnf("APPSHELL_SESSION_SECRET is not set; visitor cookies will not survive a restart")
	}
	sessions, err := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	sh := &Shell{
		cfg:      cfg,
		items:    items,
		visitors: visitors,
		sessions: sessions,
	}
	if cfg.Features.MetricsEnabled {
		sh.metrics = metrics.New(visitors.Len)
	}
	return sh, nil
}

// Items returns the navigation links in menu order
func (sh *Shell) Items() []model.LinkDescriptor {
	out := make([]model.LinkDescriptor, len(sh.items))
	copy(out, sh.items)
	return out
}

// Metrics returns the collectors, nil when metrics are disabled
func (sh *Shell) Metrics() *metrics.Metrics {
	return sh.metrics
}

// Version returns the current version of appshell
func Version() string {
	return "0.1.0"
}
