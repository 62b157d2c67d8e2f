package render

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/siyuan-infoblox/prettierconf/pkg/messages"
)

// Format is an encoding Prettier can read its configuration from
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	ESM  Format = "esm" // export default {...}
	CJS  Format = "cjs" // module.exports = {...}
)

// Formats lists every supported format
var Formats = []Format{JSON, YAML, TOML, ESM, CJS}

// ParseFormat maps a --format value to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "json5":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "esm", "js", "mjs", "ts":
		return ESM, nil
	case "cjs", "commonjs":
		return CJS, nil
	}
	return "", errors.Errorf(messages.ErrMsgUnsupportedOutputFormat, name)
}

// FormatForPath picks the format Prettier expects for a config file name
func FormatForPath(path string) (Format, error) {
	base := filepath.Base(path)
	if base == ".prettierrc" {
		// Prettier accepts JSON or YAML here; JSON is also valid YAML
		return JSON, nil
	}

	switch ext := strings.ToLower(filepath.Ext(base)); ext {
	case ".json", ".json5":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".js", ".mjs", ".ts", ".mts":
		return ESM, nil
	case ".cjs", ".cts":
		return CJS, nil
	default:
		return "", errors.Errorf(messages.ErrMsgUnsupportedOutputFormat, ext)
	}
}
