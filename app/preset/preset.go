package preset

import "strings"

// Preset is a named template for new projects.
//
// Path is a list for compatibility with the stored format, but only the first
// element is used as the base folder. Extra elements are kept as-is.
type Preset struct {
	Name     string   `json:"name"`
	Path     []string `json:"path"`
	EditorID string   `json:"ideBundleId"`
	Command  string   `json:"command"`
}

// BasePath returns the folder new projects are created in, or "" if none.
func (p Preset) BasePath() string {
	if len(p.Path) == 0 {
		return ""
	}
	return p.Path[0]
}

// HasCommand reports whether an init command should run.
func (p Preset) HasCommand() bool {
	return strings.TrimSpace(p.Command) != ""
}

// clone returns a copy that does not share the Path slice.
func (p Preset) clone() Preset {
	if p.Path != nil {
		p.Path = append([]string(nil), p.Path...)
	}
	return p
}
