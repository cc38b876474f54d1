package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Menu is the parsed structure of a menu YAML file
type Menu struct {
	Items []LinkDescriptor `yaml:"items"`
}

// DefaultMenu returns the built-in navigation links
func DefaultMenu() []LinkDescriptor {
	return []LinkDescriptor{
		{Title: "Home", Path: "/", Icon: "home"},
		{Title: "Dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Title: "Profile", Path: "/profile", Icon: "account"},
		{Title: "Settings", Path: "/settings", Icon: "settings"},
		{Title: "About", Path: "/about", Icon: "info"},
	}
}

// ParseMenu parses menu YAML. Every item needs a title and a path starting
// with "/" and free of ':' and '*'.
func ParseMenu(data []byte) ([]LinkDescriptor, error) {
	var menu Menu
	if err := yaml.Unmarshal(data, &menu); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	items := make([]LinkDescriptor, 0, len(menu.Items))
	for i, item := range menu.Items {
		item.Title = strings.TrimSpace(item.Title)
		item.Path = strings.TrimSpace(item.Path)
		item.Icon = IconRef(strings.TrimSpace(string(item.Icon)))
		if item.Title == "" {
			return nil, fmt.Errorf("menu item %d: title is required", i)
		}
		if !strings.HasPrefix(item.Path, "/") {
			return nil, fmt.Errorf("menu item %d (%s): path must start with '/', got %q", i, item.Title, item.Path)
		}
		// Each path is mounted as a literal route, so router wildcards are refused
		if strings.ContainsAny(item.Path, ":*") {
			return nil, fmt.Errorf("menu item %d (%s): path must not contain ':' or '*', got %q", i, item.Title, item.Path)
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadMenu reads a menu file. An empty path yields DefaultMenu.
func LoadMenu(path string) ([]LinkDescriptor, error) {
	if path == "" {
		return DefaultMenu(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return ParseMenu(data)
}
