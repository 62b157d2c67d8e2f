package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/prettierconf/pkg/messages"
)

// fileNames is the ordered list of options file names to search for.
var fileNames = []string{
	"prettierconf.yaml",
	"prettierconf.yml",
	".prettierconf.yaml",
	".prettierconf.yml",
	"prettierconf.toml",
	".prettierconf.toml",
	"prettierconf.json",
	".prettierconf.json",
}

// Discover returns the path of the first options file found in dir,
// following the standard search order. It returns an empty string if
// no options file is found.
func Discover(dir string) string {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses an options file. If path is non-empty, that file is
// loaded directly. Otherwise, Load searches the current working directory
// using Discover. If no options file is found, an empty File is returned.
func Load(path string) (File, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return File{}, errors.Wrap(err, messages.ErrMsgFailedToGetWorkingDir)
		}
		path = Discover(wd)
	}

	if path == "" {
		return File{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "%s %s", messages.ErrMsgFailedToReadFile, path)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return File{}, errors.Wrapf(err, "%s %s", messages.ErrMsgFailedToParseFile, path)
	}
	f.Path = path
	return f, nil
}

// Parse decodes options file content. ext selects the decoder: ".yaml" and
// ".yml" for YAML, ".toml" for TOML, ".json" for JSON.
func Parse(data []byte, ext string) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, err
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return File{}, err
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&f); err != nil {
			return File{}, err
		}
		f.Extend = normalizeNumbers(f.Extend)
	default:
		return File{}, errors.Errorf(messages.ErrMsgUnsupportedOptionsFile, ext)
	}
	return f, nil
}

// normalizeNumbers turns json.Number values into int64 where they are whole
// and float64 otherwise, so whole numbers are written back as integers.
func normalizeNumbers(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		return normalizeNumbers(t)
	case []any:
		for i, item := range t {
			t[i] = normalizeValue(item)
		}
		return t
	}
	return v
}
