package prettier

import (
	"maps"
	"slices"
	"sort"
)

// Option keys the composer sets itself
const (
	KeyPlugins           = "plugins"
	KeyImportOrder       = "importOrder"
	KeyTailwindFunctions = "tailwindFunctions"
)

// Config is a resolved Prettier configuration: option name to value.
type Config map[string]any

// baselineKeys lists the baseline options in the order they are written out
var baselineKeys = []string{
	"printWidth",
	"tabWidth",
	"useTabs",
	"semi",
	"singleQuote",
	"quoteProps",
	"jsxSingleQuote",
	"trailingComma",
	"bracketSpacing",
	"bracketSameLine",
	"arrowParens",
	"requirePragma",
	"insertPragma",
	"proseWrap",
	"htmlWhitespaceSensitivity",
	"endOfLine",
	"embeddedLanguageFormatting",
}

// computedKeys follow the baseline in output order
var computedKeys = []string{KeyTailwindFunctions, KeyImportOrder}

// Baseline returns a fresh copy of the style options applied to every config.
func Baseline() Config {
	return Config{
		"printWidth":                 100,
		"tabWidth":                   2,
		"useTabs":                    false,
		"semi":                       true,
		"singleQuote":                true,
		"quoteProps":                 "as-needed",
		"jsxSingleQuote":             false,
		"trailingComma":              "all",
		"bracketSpacing":             true,
		"bracketSameLine":            false,
		"arrowParens":                "always",
		"requirePragma":              false,
		"insertPragma":               false,
		"proseWrap":                  "preserve",
		"htmlWhitespaceSensitivity":  "strict",
		"endOfLine":                  "lf",
		"embeddedLanguageFormatting": "off",
	}
}

// TailwindFunctions returns the class-name helpers Tailwind sorting applies to.
func TailwindFunctions() []string {
	return []string{"clsx", "cn", "cva"}
}

// Plugins returns the plugins entry, or nil when it is missing.
func (c Config) Plugins() []string {
	plugins, _ := c[KeyPlugins].([]string)
	return plugins
}

// ImportOrder returns the importOrder entry and whether it is present.
func (c Config) ImportOrder() ([]string, bool) {
	v, ok := c[KeyImportOrder]
	if !ok {
		return nil, false
	}
	order, ok := v.([]string)
	return order, ok
}

// Keys returns the option names in output order: baseline options, computed
// options, any other options sorted by name, and plugins last.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	known := make(map[string]bool, len(baselineKeys)+len(computedKeys)+1)

	for _, k := range slices.Concat(baselineKeys, computedKeys) {
		known[k] = true
		if _, ok := c[k]; ok {
			keys = append(keys, k)
		}
	}
	known[KeyPlugins] = true

	var rest []string
	for k := range c {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	if _, ok := c[KeyPlugins]; ok {
		keys = append(keys, KeyPlugins)
	}
	return keys
}

// Clone returns a copy of c whose lists and maps are not shared with c.
func (c Config) Clone() Config {
	out := maps.Clone(c)
	for k, v := range out {
		out[k] = cloneValue(v)
	}
	return out
}
