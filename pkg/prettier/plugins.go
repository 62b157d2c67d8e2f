package prettier

// Plugins managed by the composer
const (
	PluginSortImports = "@ianvs/prettier-plugin-sort-imports"
	PluginTailwind    = "prettier-plugin-tailwindcss"
	PluginPackageJSON = "prettier-plugin-packagejson"
)

// Feature names an optional add-on toggled by Options
type Feature string

const (
	FeatureOrder       Feature = "order"
	FeatureTailwind    Feature = "tailwind"
	FeaturePackageJSON Feature = "packageJson"
)

type featurePlugin struct {
	feature Feature
	plugin  string
}

// featurePlugins lists the managed plugins in the order they are emitted
var featurePlugins = []featurePlugin{
	{FeatureOrder, PluginSortImports},
	{FeatureTailwind, PluginTailwind},
	{FeaturePackageJSON, PluginPackageJSON},
}

// SupportedPlugins returns the managed plugin identifier per feature.
func SupportedPlugins() map[Feature]string {
	plugins := make(map[Feature]string, len(featurePlugins))
	for _, fp := range featurePlugins {
		plugins[fp.feature] = fp.plugin
	}
	return plugins
}

// enabled reports whether the feature is switched on in s
func (f Feature) enabled(s Settings) bool {
	switch f {
	case FeatureOrder:
		return s.OrderEnabled
	case FeatureTailwind:
		return s.Tailwind
	case FeaturePackageJSON:
		return s.PackageJSON
	}
	return false
}
