package model

// IconRef names an icon from the UI icon registry (e.g. "home", "gear").
// The empty IconRef means no icon.
type IconRef string

// NoIcon is the absent icon
const NoIcon IconRef = ""

// LinkDescriptor describes one navigation link
type LinkDescriptor struct {
	Title string  `yaml:"title" json:"title"`
	Path  string  `yaml:"path" json:"path"`
	Icon  IconRef `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Key identifies the link for rendering, stable across re-renders
func (d LinkDescriptor) Key() string {
	return d.Title + "-" + d.Path
}

// HasIcon reports whether the descriptor carries an icon
func (d LinkDescriptor) HasIcon() bool {
	return d.Icon != NoIcon
}
