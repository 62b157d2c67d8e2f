package prettier

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/prettierconf/pkg/importorder"
	"github.com/siyuan-infoblox/prettierconf/pkg/log"
)

func TestDefine_defaults(t *testing.T) {
	req := require.New(t)

	cfg := Define(Options{})

	want := Baseline()
	want[KeyPlugins] = []string{}
	req.Equal(want, cfg)

	_, ok := cfg.ImportOrder()
	req.False(ok, "importOrder must be absent by default")
	req.NotContains(cfg, KeyTailwindFunctions)
}

func TestDefine_orderDisabledHasNoImportOrder(t *testing.T) {
	tests := []struct {
		name  string
		order *OrderOptions
	}{
		{"no order block", nil},
		{"disabled with scopes", &OrderOptions{Scope: StringList{"components"}}},
		{"disabled with aliases", &OrderOptions{Alias: StringList{"@", "~"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cfg := Define(Options{Order: tt.order})
			req.NotContains(cfg, KeyImportOrder)
			req.NotContains(cfg.Plugins(), PluginSortImports)
		})
	}
}

func TestDefine_importOrder(t *testing.T) {
	req := require.New(t)

	cfg := Define(Options{
		Order: &OrderOptions{Enabled: true, Scope: StringList{"components", "hooks"}},
	})

	order, ok := cfg.ImportOrder()
	req.True(ok)
	req.Equal([]string{
		"<BUILT_IN_MODULES>", "",
		"<THIRD_PARTY_MODULES>", "",
		"^@components(/.*)", "^@hooks(/.*)", "",
		"^[.]", "",
		"^(?!.*[.]css$)[./].*$",
		".css$",
	}, order)
	req.Equal([]string{PluginSortImports}, cfg.Plugins())
}

func TestDefine_blankScopesAreDropped(t *testing.T) {
	req := require.New(t)

	withBlanks := Define(Options{Order: &OrderOptions{Enabled: true, Scope: StringList{"", "components", "   "}}})
	clean := Define(Options{Order: &OrderOptions{Enabled: true, Scope: StringList{"components"}}})

	req.Equal(clean, withBlanks)
}

func TestDefine_tailwind(t *testing.T) {
	req := require.New(t)

	cfg := Define(Options{Tailwind: Bool(true)})

	req.Equal([]string{"clsx", "cn", "cva"}, cfg[KeyTailwindFunctions])
	req.Equal([]string{PluginTailwind}, cfg.Plugins())
}

func TestDefine_pluginAssembly(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "order, tailwind and extra plugin",
			opts: Options{
				Order:       &OrderOptions{Enabled: true},
				Tailwind:    Bool(true),
				PackageJSON: Bool(false),
				Extend:      map[string]any{"plugins": []string{"extra-plugin"}},
			},
			want: []string{PluginSortImports, PluginTailwind, "extra-plugin"},
		},
		{
			name: "all features",
			opts: Options{
				Order:       &OrderOptions{Enabled: true},
				Tailwind:    Bool(true),
				PackageJSON: Bool(true),
			},
			want: []string{PluginSortImports, PluginTailwind, PluginPackageJSON},
		},
		{
			name: "package json only",
			opts: Options{PackageJSON: Bool(true)},
			want: []string{PluginPackageJSON},
		},
		{
			name: "duplicates are kept",
			opts: Options{
				PackageJSON: Bool(true),
				Extend:      map[string]any{"plugins": []string{PluginPackageJSON}},
			},
			want: []string{PluginPackageJSON, PluginPackageJSON},
		},
		{
			name: "decoded plugin list",
			opts: Options{
				Extend: map[string]any{"plugins": []any{"a", 42, "", "b"}},
			},
			want: []string{"a", "b"},
		},
		{
			name: "single plugin string",
			opts: Options{
				Extend: map[string]any{"plugins": "prettier-plugin-organize-attributes"},
			},
			want: []string{"prettier-plugin-organize-attributes"},
		},
		{
			name: "unusable plugins value",
			opts: Options{
				Extend: map[string]any{"plugins": map[string]any{"a": true}},
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, Define(tt.opts).Plugins())
		})
	}
}

func TestDefine_overridePrecedence(t *testing.T) {
	req := require.New(t)

	cfg := Define(Options{
		Order:    &OrderOptions{Enabled: true},
		Tailwind: Bool(true),
		Extend: map[string]any{
			"printWidth":        120,
			"semi":              false,
			"importOrder":       []string{"^react$"},
			"tailwindFunctions": []string{"tw"},
			"overrides": []any{
				map[string]any{"files": "*.md", "options": map[string]any{"proseWrap": "always"}},
			},
		},
	})

	req.Equal(120, cfg["printWidth"])
	req.Equal(false, cfg["semi"])
	req.Equal([]string{"^react$"}, cfg["importOrder"], "extend replaces computed values")
	req.Equal([]string{"tw"}, cfg["tailwindFunctions"])
	req.Len(cfg["overrides"], 1, "unknown keys pass through")
	req.Equal(true, cfg["singleQuote"], "baseline keys untouched")
	req.Equal("preserve", cfg["proseWrap"])
}

func TestDefine_shallowMerge(t *testing.T) {
	req := require.New(t)

	nested := map[string]any{"a": 1}
	cfg := Define(Options{Extend: map[string]any{"embeddedLanguageFormatting": nested}})

	req.Equal(nested, cfg["embeddedLanguageFormatting"], "nested values replace instead of merging")
}

func TestDefine_pluginsNotOverwrittenByExtend(t *testing.T) {
	req := require.New(t)

	cfg := Define(Options{
		Tailwind: Bool(true),
		Extend:   map[string]any{"plugins": []string{"x"}},
	})

	req.Equal([]string{PluginTailwind, "x"}, cfg.Plugins())
}

func TestDefine_idempotent(t *testing.T) {
	req := require.New(t)
	opts := Options{
		Order:       &OrderOptions{Enabled: true, Scope: StringList{"components"}, Alias: StringList{"@"}},
		Tailwind:    Bool(true),
		PackageJSON: Bool(true),
		Extend:      map[string]any{"printWidth": 80, "plugins": []string{"extra"}},
	}

	first := Define(opts)
	second := Define(opts)
	req.Equal(first, second)

	first.Plugins()[0] = "mutated"
	first["tailwindFunctions"].([]string)[0] = "mutated"
	req.Equal(PluginSortImports, second.Plugins()[0], "results must not share storage")
	req.Equal("clsx", second["tailwindFunctions"].([]string)[0])
	req.Equal([]string{"extra"}, opts.Extend["plugins"], "input must not be modified")
}

func TestDefine_overridesAreCopied(t *testing.T) {
	req := require.New(t)
	opts := Options{
		Order: &OrderOptions{Enabled: true},
		Extend: map[string]any{
			"importOrder": []string{"^react$"},
			"overrides": []any{
				map[string]any{"files": "*.md", "options": map[string]any{"proseWrap": "always"}},
			},
		},
	}

	first := Define(opts)
	second := Define(opts)

	first["importOrder"].([]string)[0] = "mutated"
	first["overrides"].([]any)[0].(map[string]any)["files"] = "*.mdx"

	req.Equal([]string{"^react$"}, second["importOrder"])
	req.Equal("*.md", second["overrides"].([]any)[0].(map[string]any)["files"])
	req.Equal([]string{"^react$"}, opts.Extend["importOrder"])
	req.Equal("*.md", opts.Extend["overrides"].([]any)[0].(map[string]any)["files"])
}

func TestDefine_doesNotMutateBaseline(t *testing.T) {
	req := require.New(t)

	Define(Options{Extend: map[string]any{"printWidth": 40}})

	req.Equal(100, Baseline()["printWidth"])
}

type stubLocator map[string]bool

func (s stubLocator) Available(plugin string) bool {
	return s[plugin]
}

func TestComposer_Compose(t *testing.T) {
	opts := Options{
		Order:       &OrderOptions{Enabled: true},
		Tailwind:    Bool(true),
		PackageJSON: Bool(true),
		Extend:      map[string]any{"plugins": []string{"not-checked"}},
	}

	tests := []struct {
		name         string
		locator      Locator
		wantWarnings []string
	}{
		{
			name:    "everything installed",
			locator: stubLocator{PluginSortImports: true, PluginTailwind: true, PluginPackageJSON: true},
		},
		{
			name:    "tailwind missing",
			locator: stubLocator{PluginSortImports: true, PluginPackageJSON: true},
			wantWarnings: []string{
				"Warning: tailwind is enabled but prettier-plugin-tailwindcss is not installed. Install it with: npm install -D prettier-plugin-tailwindcss\n",
			},
		},
		{
			name:    "nothing installed",
			locator: stubLocator{},
			wantWarnings: []string{
				"Warning: order is enabled but @ianvs/prettier-plugin-sort-imports is not installed. Install it with: npm install -D @ianvs/prettier-plugin-sort-imports\n",
				"Warning: tailwind is enabled but prettier-plugin-tailwindcss is not installed. Install it with: npm install -D prettier-plugin-tailwindcss\n",
				"Warning: packageJson is enabled but prettier-plugin-packagejson is not installed. Install it with: npm install -D prettier-plugin-packagejson\n",
			},
		},
		{
			name: "no locator skips the check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			var buf bytes.Buffer
			c := NewComposer(WithLocator(tt.locator), WithLogger(log.New(&buf, false, false)))

			cfg := c.Compose(opts)

			req.Equal(Define(opts), cfg, "presence check must not change the result")
			want := ""
			for _, w := range tt.wantWarnings {
				want += w
			}
			req.Equal(want, buf.String())
		})
	}
}

func TestComposer_onlyEnabledFeaturesChecked(t *testing.T) {
	req := require.New(t)
	var asked []string
	locator := LocatorFunc(func(plugin string) bool {
		asked = append(asked, plugin)
		return false
	})

	c := NewComposer(WithLocator(locator))
	missing := c.MissingPlugins(Options{Tailwind: Bool(true)})

	req.Equal([]string{PluginTailwind}, missing)
	req.Equal([]string{PluginTailwind}, asked)
}

func TestComposer_defaultsToDefine(t *testing.T) {
	req := require.New(t)
	opts := Options{Order: &OrderOptions{Enabled: true, Alias: StringList{"~"}}}

	req.Equal(Define(opts), NewComposer().Compose(opts))
	req.Empty(NewComposer().MissingPlugins(opts))
	req.Equal(importorder.AliasPattern("~"), Define(opts)[KeyImportOrder].([]string)[4])
}
