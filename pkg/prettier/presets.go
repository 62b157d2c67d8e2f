package prettier

import (
	"sort"
)

// Preset fills in the options a common project setup wants. Fields already
// set in the input are kept. A preset never shares memory with its input or
// with earlier results.
type Preset func(Options) Options

// NextJS is for Next.js projects using Tailwind CSS: Tailwind and import
// sorting on, package.json formatting off.
func NextJS(in Options) Options {
	out := in.Clone()
	if out.Tailwind == nil {
		out.Tailwind = Bool(true)
	}
	return withCommonDefaults(out)
}

// NodeJS is for plain Node.js projects: import sorting on, package.json
// formatting off. Tailwind is not part of this setup, so an input Tailwind
// setting is dropped.
func NodeJS(in Options) Options {
	out := in.Clone()
	out.Tailwind = nil
	return withCommonDefaults(out)
}

func withCommonDefaults(o Options) Options {
	if o.Order == nil {
		o.Order = &OrderOptions{Enabled: true}
	}
	if o.PackageJSON == nil {
		o.PackageJSON = Bool(false)
	}
	if o.Extend == nil {
		o.Extend = map[string]any{}
	}
	return o
}

// Presets returns the named presets.
func Presets() map[string]Preset {
	return map[string]Preset{
		"nextjs": NextJS,
		"nodejs": NodeJS,
	}
}

// LookupPreset returns the preset called name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := Presets()[name]
	return p, ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	presets := Presets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
