package appshell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/appshell/model"
)

func TestNew(t *testing.T) {
	sh, err := New(testConfig())
	require.NoError(t, err)

	// An empty menu path falls back to the built-in menu
	assert.Equal(t, model.DefaultMenu(), sh.Items())
	assert.NotNil(t, sh.Metrics())
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNewWithMenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`items:
  - title: Reports
    path: /reports
    icon: dashboard
  - title: Help
    path: /help
`), 0o644))

	cfg := testConfig()
	cfg.MenuPath = path
	sh, err := New(cfg)
	require.NoError(t, err)

	items := sh.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Reports", items[0].Title)
	assert.Equal(t, model.IconRef("dashboard"), items[0].Icon)
	assert.False(t, items[1].HasIcon())
}

func TestNewWithBadMenuFile(t *testing.T) {
	cfg := testConfig()
	cfg.MenuPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestItemsReturnsCopy(t *testing.T) {
	sh, err := NewWithOptions(testConfig(), &Options{Items: model.DefaultMenu()})
	require.NoError(t, err)

	items := sh.Items()
	items[0].Title = "changed"
	assert.NotEqual(t, "changed", sh.Items()[0].Title)
}
