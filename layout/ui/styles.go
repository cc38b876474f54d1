package ui

import "fmt"

// GetStyles returns the CSS for the layout shell.
// Colors come from custom properties so [data-theme="dark"] only swaps the palette.
func GetStyles() string {
	return fmt.Sprintf(`
        :root {
            --shell-bg: #f4f5fb;
            --shell-paper: #ffffff;
            --shell-text: #1f2330;
            --shell-muted: #6b7084;
            --shell-accent: #667eea;
            --shell-accent-2: #764ba2;
            --shell-divider: rgba(0,0,0,0.08);
            --shell-hover: rgba(102,126,234,0.10);
            --shell-backdrop: rgba(0,0,0,0.5);
        }
        [data-theme="dark"] {
            --shell-bg: #15161c;
            --shell-paper: #1f2029;
            --shell-text: #e8e9f0;
            --shell-muted: #9a9db0;
            --shell-accent: #8fa2ff;
            --shell-accent-2: #a783d6;
            --shell-divider: rgba(255,255,255,0.10);
            --shell-hover: rgba(143,162,255,0.14);
        }
        html, body {
            height: 100%%;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background: var(--shell-bg);
            color: var(--shell-text);
            margin: 0;
        }
        .topbar {
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            z-index: 1100;
            height: %[1]s;
            display: flex;
            align-items: center;
            gap: 1rem;
            padding: 0 1rem;
            color: #fff;
            background: linear-gradient(135deg, var(--shell-accent) 0%%, var(--shell-accent-2) 100%%);
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .topbar.topbar-mobile {
            height: %[2]s;
        }
        .topbar-title {
            flex: 1;
            font-weight: 600;
            font-size: 1.15rem;
        }
        .topbar-user {
            font-size: 0.9rem;
            opacity: 0.85;
        }
        .shell-main {
            padding: calc(%[1]s + 1.5rem) 2rem 2rem;
            transition: margin 0.2s;
        }
        .shell-main.shell-main-mobile {
            padding: calc(%[2]s + 1rem) 1rem 1rem;
        }
        .shell-main.with-sidebar {
            margin-left: %[3]dpx;
        }
        .sidebar-drawer[data-anchor="right"] ~ .shell-main.with-sidebar {
            margin-left: 0;
            margin-right: %[3]dpx;
        }
        .sidebar-drawer {
            position: fixed;
            top: 0;
            bottom: 0;
            z-index: 1000;
        }
        .sidebar-drawer[data-anchor="left"] { left: 0; }
        .sidebar-drawer[data-anchor="right"] { right: 0; }
        .sidebar-drawer[data-variant="temporary"] {
            z-index: 1200;
            left: 0;
            right: 0;
        }
        .sidebar-drawer[data-open="false"] {
            display: none;
        }
        .sidebar-backdrop {
            position: fixed;
            inset: 0;
            background: var(--shell-backdrop);
        }
        .sidebar-paper {
            position: relative;
            box-sizing: border-box;
            overflow-y: auto;
            background: var(--shell-paper);
            box-shadow: 4px 0 20px rgba(0,0,0,0.15);
        }
        .sidebar-drawer[data-anchor="right"] .sidebar-paper {
            margin-left: auto;
        }
        .stack {
            display: flex;
            flex-direction: column;
        }
        .stack-row {
            flex-direction: row;
            justify-content: space-evenly;
            align-items: center;
            margin-top: 16px;
        }
        .sidebar-content {
            height: 100%%;
            padding: 16px;
            box-sizing: border-box;
        }
        .sidebar-nav-list {
            display: flex;
            flex-direction: column;
            gap: 2px;
            padding: 8px 0;
        }
        .sidebar-nav-item {
            display: flex;
            align-items: center;
            gap: 0.6rem;
            padding: 0.65rem 1rem;
            border-radius: 6px;
            color: var(--shell-text);
            text-decoration: none;
            font-size: 0.95rem;
            transition: background 0.15s, color 0.15s;
        }
        .sidebar-nav-item:hover {
            background: var(--shell-hover);
        }
        .sidebar-nav-item.active {
            color: var(--shell-accent);
            font-weight: 600;
            background: var(--shell-hover);
        }
        .divider {
            border: none;
            border-top: 1px solid var(--shell-divider);
            margin: 8px 0;
        }
        .form-control-label {
            display: inline-flex;
            align-items: center;
            gap: 0.5rem;
            cursor: pointer;
            user-select: none;
        }
        .switch {
            appearance: none;
            width: 36px;
            height: 20px;
            border-radius: 10px;
            background: var(--shell-divider);
            position: relative;
            cursor: pointer;
            transition: background 0.15s;
        }
        .switch::after {
            content: "";
            position: absolute;
            top: 2px;
            left: 2px;
            width: 16px;
            height: 16px;
            border-radius: 50%%;
            background: #fff;
            box-shadow: 0 1px 3px rgba(0,0,0,0.3);
            transition: transform 0.15s;
        }
        .switch:checked {
            background: var(--shell-accent);
        }
        .switch:checked::after {
            transform: translateX(16px);
        }
        .tooltip {
            display: inline-flex;
        }
        .icon-button {
            display: inline-flex;
            align-items: center;
            justify-content: center;
            width: 40px;
            height: 40px;
            border: none;
            border-radius: 50%%;
            background: transparent;
            color: inherit;
            cursor: pointer;
        }
        .icon-button:hover {
            background: var(--shell-hover);
        }
        .inline-form {
            display: inline;
            margin: 0;
        }
        .card {
            background: var(--shell-paper);
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.08);
            margin-bottom: 1.5rem;
        }
        .card-header {
            padding: 0.9rem 1.25rem;
            color: #fff;
            font-weight: 600;
            border-radius: 10px 10px 0 0;
            background: linear-gradient(135deg, var(--shell-accent) 0%%, var(--shell-accent-2) 100%%);
        }
        .card-body {
            padding: 1.25rem;
        }
        .alert {
            padding: 0.9rem 1.25rem;
            border-radius: 8px;
            margin-bottom: 1rem;
            border: 1px solid var(--shell-divider);
        }
        .alert-warning {
            background: rgba(255,193,7,0.15);
        }
        .alert-info {
            background: var(--shell-hover);
        }
        .icon-placeholder {
            display: inline-flex;
            width: 18px;
            justify-content: center;
        }
    `, TopBarDesktopHeight, TopBarMobileHeight, SidebarWidth)
}
