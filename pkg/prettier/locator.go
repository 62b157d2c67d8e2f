package prettier

import (
	"github.com/siyuan-infoblox/prettierconf/pkg/utils"
)

// Environment variables consulted by AdvisoryEnabled
const (
	EnvNodeEnv   = "NODE_ENV"
	EnvSkipCheck = "PRETTIERCONF_SKIP_CHECK"
)

// Locator reports whether a plugin can be resolved in the current
// environment.
type Locator interface {
	Available(plugin string) bool
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(plugin string) bool

func (f LocatorFunc) Available(plugin string) bool {
	return f(plugin)
}

// NodeModulesLocator finds plugins in node_modules at Dir or any parent
// directory.
type NodeModulesLocator struct {
	Dir string
}

func (l NodeModulesLocator) Available(plugin string) bool {
	dir := l.Dir
	if dir == "" {
		dir = "."
	}
	return utils.IsPackageInstalled(dir, plugin)
}

// AdvisoryEnabled reports whether the plugin presence check should run. It
// is off in production environments and when explicitly skipped.
func AdvisoryEnabled(getenv func(string) string) bool {
	if getenv == nil {
		return false
	}
	if getenv(EnvNodeEnv) == "production" {
		return false
	}
	return getenv(EnvSkipCheck) == ""
}
