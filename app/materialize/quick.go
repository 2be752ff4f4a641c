package materialize

import (
	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
)

// QuickPresets builds transient presets from the configured command mappings.
// Each uses the default base folder and editor; none are persisted.
func QuickPresets(cfg config.Config) []preset.Preset {
	mappings := cfg.Mappings()
	if len(mappings) == 0 {
		return nil
	}
	var path []string
	if cfg.BasePath != "" {
		path = []string{cfg.BasePath}
	}
	out := make([]preset.Preset, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, preset.Preset{
			Name:     m.Label,
			Path:     append([]string(nil), path...),
			EditorID: cfg.Editor,
			Command:  m.Command,
		})
	}
	return out
}

// Find returns the preset called name, preferring stored presets over quick ones.
func Find(name string, stored, quick []preset.Preset) (*preset.Preset, bool) {
	for _, list := range [][]preset.Preset{stored, quick} {
		for i := range list {
			if list[i].Name == name {
				p := list[i]
				return &p, true
			}
		}
	}
	return nil, false
}
