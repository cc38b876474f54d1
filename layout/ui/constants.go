package ui

import "github.com/ghiac/appshell/model"

// Layout dimensions shared by the top bar and the sidebar
const (
	SidebarWidth        = 240 // px
	TopBarDesktopHeight = "64px"
	TopBarMobileHeight  = "56px"
)

// Edge the sidebar attaches to on each viewport class
const (
	SidebarMobileAnchor  = model.AnchorLeft
	SidebarDesktopAnchor = model.AnchorLeft
)
