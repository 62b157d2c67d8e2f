package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// maxIterations bounds the walk towards the filesystem root
const maxIterations = 20

// FindUp walks from start towards the filesystem root and returns the first
// directory that contains rel.
func FindUp(start, rel string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for i := 0; i < maxIterations; i++ {
		if _, err := os.Stat(filepath.Join(dir, rel)); err == nil {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// GetProjectName returns the name field of the nearest package.json at or
// above dir, or an empty string if there is none.
func GetProjectName(dir string) string {
	root, ok := FindUp(dir, "package.json")
	if !ok {
		return ""
	}

	content, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return ""
	}

	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

// IsPackageInstalled reports whether node_modules/<name> is resolvable from
// dir the way Node resolves bare specifiers: in dir or any parent.
func IsPackageInstalled(dir, name string) bool {
	_, ok := FindUp(dir, filepath.Join("node_modules", filepath.FromSlash(name), "package.json"))
	return ok
}
