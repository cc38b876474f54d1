package sidebar

import (
	"fmt"

	"github.com/ghiac/appshell/layout/ui"
	"github.com/ghiac/appshell/model"
)

// Geometry is the size and offset of the drawer paper
type Geometry struct {
	Width     int // px
	MarginTop string
	Height    string
}

// ComputeGeometry places the paper below the desktop top bar, except on
// narrow viewports and for the overlay variant where it covers the full height.
func ComputeGeometry(onMobile bool, variant model.PanelVariant) Geometry {
	if onMobile || variant == model.VariantTemporary {
		return Geometry{Width: ui.SidebarWidth, MarginTop: "0", Height: "100%"}
	}
	return Geometry{
		Width:     ui.SidebarWidth,
		MarginTop: ui.TopBarDesktopHeight,
		Height:    fmt.Sprintf("calc(100%% - %s)", ui.TopBarDesktopHeight),
	}
}

// Style renders the geometry as an inline CSS declaration
func (g Geometry) Style() string {
	return fmt.Sprintf("width: %dpx; margin-top: %s; height: %s;", g.Width, g.MarginTop, g.Height)
}
