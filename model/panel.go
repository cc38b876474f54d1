package model

import (
	"fmt"
	"strings"
)

// PanelVariant controls how the sidebar drawer takes part in the layout
type PanelVariant string

const (
	// VariantPermanent is always visible and takes layout space
	VariantPermanent PanelVariant = "permanent"
	// VariantPersistent can be toggled but still takes layout space when open
	VariantPersistent PanelVariant = "persistent"
	// VariantTemporary is an overlay dismissed by backdrop or navigation
	VariantTemporary PanelVariant = "temporary"
)

// ParsePanelVariant parses a variant name, case-insensitively
func ParsePanelVariant(s string) (PanelVariant, error) {
	switch v := PanelVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantPermanent, VariantPersistent, VariantTemporary:
		return v, nil
	}
	return "", fmt.Errorf("unknown panel variant %q", s)
}

// IsOverlay reports whether the panel floats above the content
func (v PanelVariant) IsOverlay() bool {
	return v == VariantTemporary
}

// Anchor is the screen edge the drawer attaches to
type Anchor string

const (
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// ParseAnchor parses an anchor name, case-insensitively
func ParseAnchor(s string) (Anchor, error) {
	switch a := Anchor(strings.ToLower(strings.TrimSpace(s))); a {
	case AnchorLeft, AnchorRight, AnchorTop, AnchorBottom:
		return a, nil
	}
	return "", fmt.Errorf("unknown anchor %q", s)
}
