package engine

import (
	"path/filepath"
	"strings"
)

// uniqueFolderNames maps each directory to the shortest display name that
// distinguishes it from every other directory in the set. Names start at
// the directory's base name; whenever two directories render the same name,
// one more parent component is prepended to each of them, until the names
// differ or the paths are exhausted.
func uniqueFolderNames(dirs []string) map[string]string {
	if len(dirs) == 0 {
		return map[string]string{}
	}

	components := make(map[string][]string, len(dirs))
	depth := make(map[string]int, len(dirs))
	for _, d := range dirs {
		components[d] = splitPath(d)
		depth[d] = 1
	}

	render := func(d string) string {
		parts := components[d]
		k := depth[d]
		if k > len(parts) {
			k = len(parts)
		}
		if len(parts) == 0 {
			return d
		}
		return strings.Join(parts[len(parts)-k:], "/")
	}

	for {
		byName := make(map[string][]string)
		for _, d := range dirs {
			name := render(d)
			byName[name] = append(byName[name], d)
		}

		grown := false
		for _, group := range byName {
			if len(group) < 2 {
				continue
			}
			for _, d := range group {
				if depth[d] < len(components[d]) {
					depth[d]++
					grown = true
				}
			}
		}
		if !grown {
			break
		}
	}

	names := make(map[string]string, len(dirs))
	for _, d := range dirs {
		names[d] = render(d)
	}
	return names
}

// splitPath splits a cleaned directory path into its components.
func splitPath(dir string) []string {
	cleaned := filepath.ToSlash(filepath.Clean(dir))
	var parts []string
	for _, p := range strings.Split(cleaned, "/") {
		if p != "" && p != "." {
			parts = append(parts, p)
		}
	}
	return parts
}
