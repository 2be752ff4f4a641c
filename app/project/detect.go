// Package project inspects freshly created project folders and remembers
// where projects were created.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Info describes what an init command left in a project folder.
type Info struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`               // primary type, e.g. nextjs, go, git
	Packages []string `json:"packages,omitempty"` // detected frameworks, sorted
	Remote   string   `json:"remote,omitempty"`   // git remote origin URL
}

// knownPackages maps package.json dependencies to framework names.
var knownPackages = map[string]string{
	"next":              "nextjs",
	"react":             "react",
	"gatsby":            "gatsby",
	"react-native":      "react-native",
	"@remix-run/react":  "remix",
	"vue":               "vue",
	"nuxt":              "nuxt",
	"@angular/core":     "angular",
	"svelte":            "svelte",
	"@sveltejs/kit":     "sveltekit",
	"astro":             "astro",
	"vite":              "vite",
	"tailwindcss":       "tailwindcss",
	"@mui/material":     "material-ui",
	"@chakra-ui/react":  "chakra-ui",
	"styled-components": "styled-components",
	"@sanity/cli":       "sanity",
	"sanity":            "sanity",
	"@shopify/cli":      "shopify",
	"typescript":        "typescript",
}

// typePriority picks the primary type among detected packages.
var typePriority = []string{"nextjs", "nuxt", "sveltekit", "remix", "astro", "gatsby", "react", "angular", "vue", "svelte", "sanity", "shopify"}

// markers are checked when there is no package.json, first match wins.
var markers = []struct {
	file string
	kind string
}{
	{"go.mod", "go"},
	{"Cargo.toml", "rust"},
	{"pyproject.toml", "python"},
	{"requirements.txt", "python"},
	{"Gemfile", "ruby"},
	{"composer.json", "php"},
	{"pom.xml", "java"},
	{"build.gradle", "java"},
}

// Detect reports what kind of project dir contains. Only dir itself is
// inspected; a folder with no known marker yields false.
func Detect(dir string) (Info, bool) {
	info := Info{Name: filepath.Base(dir)}
	found := false

	if pkg, ok := readPackageJSON(dir); ok {
		found = true
		info.Type = "npm"
		if pkg.Name != "" {
			info.Name = pkg.Name
		}
		info.Packages = detectPackages(pkg)
		for _, t := range typePriority {
			if contains(info.Packages, t) {
				info.Type = t
				break
			}
		}
	} else {
		for _, m := range markers {
			if fileExists(filepath.Join(dir, m.file)) {
				info.Type = m.kind
				found = true
				break
			}
		}
	}

	if remote, ok := gitRemote(dir); ok {
		if !found {
			info.Type = "git"
			found = true
		}
		info.Remote = remote
	}
	return info, found
}

// String renders the type and packages on one line.
func (i Info) String() string {
	if len(i.Packages) == 0 {
		return i.Type
	}
	return i.Type + " (" + strings.Join(i.Packages, ", ") + ")"
}

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func readPackageJSON(dir string) (packageJSON, bool) {
	var pkg packageJSON
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return pkg, false
	}
	// An unparsable package.json still marks an npm project.
	_ = json.Unmarshal(data, &pkg)
	return pkg, true
}

func detectPackages(pkg packageJSON) []string {
	set := map[string]bool{}
	for _, deps := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for name := range deps {
			if fw, ok := knownPackages[name]; ok {
				set[fw] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for fw := range set {
		out = append(out, fw)
	}
	sort.Strings(out)
	return out
}

// gitRemote reports whether dir has a .git directory and, if configured,
// its origin URL.
func gitRemote(dir string) (string, bool) {
	gitDir := filepath.Join(dir, ".git")
	if st, err := os.Stat(gitDir); err != nil || !st.IsDir() {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(gitDir, "config"))
	if err != nil {
		return "", true
	}
	inOrigin := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == `[remote "origin"]`:
			inOrigin = true
		case inOrigin && strings.HasPrefix(line, "["):
			return "", true
		case inOrigin:
			if k, v, ok := strings.Cut(line, "="); ok && strings.TrimSpace(k) == "url" {
				return strings.TrimSpace(v), true
			}
		}
	}
	return "", true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
