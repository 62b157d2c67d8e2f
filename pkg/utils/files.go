package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// prettierConfigNames are the file names Prettier reads its configuration from
var prettierConfigNames = []string{
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yaml",
	".prettierrc.yml",
	".prettierrc.json5",
	".prettierrc.js",
	".prettierrc.mjs",
	".prettierrc.cjs",
	".prettierrc.ts",
	".prettierrc.mts",
	".prettierrc.cts",
	".prettierrc.toml",
	"prettier.config.js",
	"prettier.config.mjs",
	"prettier.config.cjs",
	"prettier.config.ts",
	"prettier.config.mts",
	"prettier.config.cts",
}

// IsPrettierConfigFile checks if a file name is one Prettier loads its configuration from
func IsPrettierConfigFile(filename string) bool {
	return slices.Contains(prettierConfigNames, filepath.Base(filename))
}

// FindPrettierConfigs recursively finds Prettier configuration files under root
func FindPrettierConfigs(root string) ([]string, error) {
	var configs []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsPrettierConfigFile(path) {
			configs = append(configs, path)
		}

		return nil
	})

	return configs, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
