// Package prettier composes Prettier configurations from a small set of
// options.
//
// A configuration is built in layers, each later layer winning on key
// collision:
//
//  1. the baseline style options
//  2. computed options (importOrder, tailwindFunctions)
//  3. the caller's extend block
//
// The merge is shallow: a nested value in extend replaces the whole value
// below it. The plugins entry of extend is not merged; it is appended to the
// plugins derived from the enabled features.
package prettier

import (
	"maps"

	"github.com/siyuan-infoblox/prettierconf/pkg/importorder"
	"github.com/siyuan-infoblox/prettierconf/pkg/log"
	"github.com/siyuan-infoblox/prettierconf/pkg/messages"
)

// Define builds the configuration for o. It never fails and has no side
// effects.
func Define(o Options) Config {
	return build(Resolve(o))
}

func build(s Settings) Config {
	cfg := Baseline()
	maps.Copy(cfg, computed(s))
	maps.Copy(cfg, s.Overrides)
	cfg[KeyPlugins] = s.Plugins()
	return cfg
}

// computed returns the options derived from the feature flags
func computed(s Settings) Config {
	block := Config{}
	if s.Tailwind {
		block[KeyTailwindFunctions] = TailwindFunctions()
	}
	if s.OrderEnabled {
		block[KeyImportOrder] = importorder.Patterns(true, s.Scopes, s.Aliases)
	}
	return block
}

// Composer builds configurations and reports enabled features whose plugin
// is not installed.
type Composer struct {
	locator Locator
	logger  *log.Logger
}

// ComposerOption configures a Composer
type ComposerOption func(*Composer)

// WithLocator enables the plugin presence check. A nil locator disables it.
func WithLocator(l Locator) ComposerOption {
	return func(c *Composer) {
		c.locator = l
	}
}

// WithLogger sets where presence warnings go.
func WithLogger(l *log.Logger) ComposerOption {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewComposer creates a Composer. Without WithLocator it never checks for
// plugins and behaves exactly like Define.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{logger: log.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the configuration for o. The presence check only logs; the
// returned value is always Define(o).
func (c *Composer) Compose(o Options) Config {
	s := Resolve(o)
	c.checkPlugins(s)
	return build(s)
}

// MissingPlugins returns the plugins of enabled features that the locator
// cannot find, in emission order.
func (c *Composer) MissingPlugins(o Options) []string {
	plugins := []string{}
	for _, fp := range c.missing(Resolve(o)) {
		plugins = append(plugins, fp.plugin)
	}
	return plugins
}

func (c *Composer) checkPlugins(s Settings) {
	for _, fp := range c.missing(s) {
		c.logger.Warnf(messages.WarnMsgMissingPlugin, fp.feature, fp.plugin, fp.plugin)
	}
}

func (c *Composer) missing(s Settings) []featurePlugin {
	if c.locator == nil {
		return nil
	}
	var missing []featurePlugin
	for _, fp := range featurePlugins {
		if fp.feature.enabled(s) && !c.locator.Available(fp.plugin) {
			missing = append(missing, fp)
		}
	}
	return missing
}
