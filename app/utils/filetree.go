package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileNode represents a node in the file tree.
type FileNode struct {
	Name     string
	Path     string // Path relative to the scanned root
	IsDir    bool
	Children map[string]*FileNode
}

// Entry is one scanned path, relative to the scan root.
type Entry struct {
	Path  string
	IsDir bool
}

// opaqueDirs are listed but never descended into.
var opaqueDirs = map[string]bool{".git": true, "node_modules": true, "vendor": true, ".venv": true}

// ScanDir lists root's contents down to maxDepth levels (1 = direct children).
func ScanDir(root string, maxDepth int) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return err
		}
		depth := strings.Count(filepath.ToSlash(rel), "/") + 1
		entries = append(entries, Entry{Path: rel, IsDir: d.IsDir()})
		if d.IsDir() && (depth >= maxDepth || opaqueDirs[d.Name()]) {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return entries, nil
}

// addChild adds (or retrieves) a child node.
func (n *FileNode) addChild(name string, isDir bool) *FileNode {
	if n.Children == nil {
		n.Children = make(map[string]*FileNode)
	}
	if child, ok := n.Children[name]; ok {
		child.IsDir = child.IsDir || isDir
		return child
	}
	child := &FileNode{Name: name, IsDir: isDir}
	n.Children[name] = child
	return child
}

// BuildFileTree builds a tree structure from scanned entries. Intermediate
// path segments are always directories.
func BuildFileTree(entries []Entry) *FileNode {
	root := &FileNode{Name: "", IsDir: true, Children: make(map[string]*FileNode)}
	for _, e := range entries {
		parts := strings.Split(filepath.ToSlash(e.Path), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.addChild(part, !last || e.IsDir)
			if last {
				current.Path = e.Path
			}
		}
	}
	return root
}

// RenderFileTree renders the file tree as a string using branch characters.
// The parameter skipSelf, if true, omits printing the current node header.
func RenderFileTree(node *FileNode, prefix string, isLast bool, skipSelf bool) string {
	var b strings.Builder
	if !skipSelf && node.Name != "" {
		branch := "┣"
		if isLast {
			branch = "┗"
		}
		// Use 📂 for directories and 📜 for files.
		icon := "📜"
		if node.IsDir {
			icon = "📂"
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", prefix, branch, icon, node.Name)
	}

	// Update prefix for subsequent children.
	newPrefix := prefix
	if node.Name != "" {
		if isLast {
			newPrefix += "   "
		} else {
			newPrefix += "┃  "
		}
	}

	// Directories first, then by name.
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, c := node.Children[names[i]], node.Children[names[j]]
		if a.IsDir != c.IsDir {
			return a.IsDir
		}
		return names[i] < names[j]
	})

	for i, name := range names {
		b.WriteString(RenderFileTree(node.Children[name], newPrefix, i == len(names)-1, false))
	}
	return b.String()
}

// SummarizeDir renders root as a header line followed by its tree.
func SummarizeDir(root string, maxDepth int) (string, error) {
	if _, err := os.Stat(root); err != nil {
		return "", err
	}
	entries, err := ScanDir(root, maxDepth)
	if err != nil {
		return "", err
	}
	tree := RenderFileTree(BuildFileTree(entries), "", true, true)
	return "📂 " + filepath.Base(root) + "\n" + tree, nil
}
