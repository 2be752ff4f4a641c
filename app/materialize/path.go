package materialize

import "strings"

// ExpandHome replaces a leading "~" with home when "~" is the whole path or
// is followed by a path separator. "~user" forms are returned unchanged.
func ExpandHome(path, home string) string {
	if !needsHome(path) {
		return path
	}
	return home + path[1:]
}

func needsHome(path string) bool {
	if path == "~" {
		return true
	}
	return strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`)
}
