package prettier

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/prettierconf/pkg/importorder"
)

// StringList is a list of strings that may also be written as a single
// string in options files.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		*l = nil
		return nil
	}
	if value.Kind == yaml.ScalarNode {
		*l = StringList{value.Value}
		return nil
	}
	var many []string
	if err := value.Decode(&many); err != nil {
		return err
	}
	*l = many
	return nil
}

// UnmarshalTOML implements the BurntSushi/toml Unmarshaler interface.
func (l *StringList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = StringList{v}
	case []any:
		list := make(StringList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", item)
			}
			list = append(list, s)
		}
		*l = list
	default:
		return fmt.Errorf("expected string or array of strings, got %T", data)
	}
	return nil
}

// OrderOptions configures import sorting.
type OrderOptions struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	// Scope lists internal namespaces, matched as "@<scope>/..."
	Scope StringList `json:"scope,omitempty" yaml:"scope,omitempty" toml:"scope,omitempty"`
	// Alias lists path alias prefixes such as "@" or "~"
	Alias StringList `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty"`
}

// Options is the caller's configuration request. Every field is optional;
// a nil field means "use the default".
type Options struct {
	Order       *OrderOptions  `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty"`
	Tailwind    *bool          `json:"tailwind,omitempty" yaml:"tailwind,omitempty" toml:"tailwind,omitempty"`
	PackageJSON *bool          `json:"packageJson,omitempty" yaml:"packageJson,omitempty" toml:"packageJson,omitempty"`
	Extend      map[string]any `json:"extend,omitempty" yaml:"extend,omitempty" toml:"extend,omitempty"`
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// Clone returns a copy of o that shares no pointers, slices or top-level
// maps with it.
func (o Options) Clone() Options {
	out := Options{}
	if o.Order != nil {
		out.Order = &OrderOptions{
			Enabled: o.Order.Enabled,
			Scope:   slices.Clone(o.Order.Scope),
			Alias:   slices.Clone(o.Order.Alias),
		}
	}
	if o.Tailwind != nil {
		out.Tailwind = Bool(*o.Tailwind)
	}
	if o.PackageJSON != nil {
		out.PackageJSON = Bool(*o.PackageJSON)
	}
	if o.Extend != nil {
		out.Extend = make(map[string]any, len(o.Extend))
		for k, v := range o.Extend {
			out.Extend[k] = cloneValue(v)
		}
	}
	return out
}

// Settings is Options with every default applied. It is what the composer
// works from.
type Settings struct {
	OrderEnabled bool
	Scopes       []string
	Aliases      []string
	Tailwind     bool
	PackageJSON  bool
	// Overrides holds the extend block without its plugins entry
	Overrides map[string]any
	// ExtraPlugins holds the extend block's plugins entry
	ExtraPlugins []string
}

// Resolve applies the defaults to o: ordering, Tailwind and package.json
// formatting are off, scope, alias and overrides are empty. Blank scope,
// alias and plugin entries are dropped.
func Resolve(o Options) Settings {
	s := Settings{
		Scopes:       []string{},
		Aliases:      []string{},
		Overrides:    map[string]any{},
		ExtraPlugins: []string{},
	}

	if o.Order != nil {
		s.OrderEnabled = o.Order.Enabled
		s.Scopes = importorder.Filter(o.Order.Scope)
		s.Aliases = importorder.Filter(o.Order.Alias)
	}
	if o.Tailwind != nil {
		s.Tailwind = *o.Tailwind
	}
	if o.PackageJSON != nil {
		s.PackageJSON = *o.PackageJSON
	}

	for k, v := range o.Extend {
		if k == KeyPlugins {
			s.ExtraPlugins = pluginList(v)
			continue
		}
		s.Overrides[k] = cloneValue(v)
	}

	return s
}

// Plugins assembles the plugin list: managed plugins in fixed order, then
// the caller's extra plugins. Duplicates are kept.
func (s Settings) Plugins() []string {
	plugins := []string{}
	for _, fp := range featurePlugins {
		if fp.feature.enabled(s) {
			plugins = append(plugins, fp.plugin)
		}
	}
	return append(plugins, s.ExtraPlugins...)
}

// pluginList accepts the shapes a plugins entry takes after decoding from Go
// code, JSON, YAML or TOML. Non-string entries are dropped.
func pluginList(v any) []string {
	switch p := v.(type) {
	case string:
		return importorder.Filter([]string{p})
	case []string:
		return importorder.Filter(p)
	case StringList:
		return importorder.Filter(p)
	case []any:
		names := make([]string, 0, len(p))
		for _, item := range p {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return importorder.Filter(names)
	}
	return []string{}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case StringList:
		return slices.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := maps.Clone(t)
		for k, item := range out {
			out[k] = cloneValue(item)
		}
		return out
	}
	return v
}
