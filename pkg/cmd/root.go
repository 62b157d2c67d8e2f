package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/prettierconf/pkg/config"
	"github.com/siyuan-infoblox/prettierconf/pkg/importorder"
	"github.com/siyuan-infoblox/prettierconf/pkg/log"
	"github.com/siyuan-infoblox/prettierconf/pkg/messages"
	"github.com/siyuan-infoblox/prettierconf/pkg/prettier"
	"github.com/siyuan-infoblox/prettierconf/pkg/render"
	"github.com/siyuan-infoblox/prettierconf/pkg/utils"
	"github.com/siyuan-infoblox/prettierconf/pkg/version"
)

const (
	UseDescription   = "prettierconf [flags]"
	ShortDescription = "Prettier config generator - sensible defaults plus composable add-ons"
	LongDescription  = `prettierconf writes a complete Prettier configuration.

The configuration is built in three layers, later layers winning:
1. Baseline style options (printWidth 100, single quotes, trailing commas, ...)
2. Computed options (importOrder for import sorting, tailwindFunctions)
3. Overrides from the options file "extend" block and --set flags

Plugins are listed in a fixed order: import sorting, Tailwind CSS,
package.json formatting, then any extra plugins.

Options are read from prettierconf.yaml, prettierconf.toml or prettierconf.json
in --dir when present. A preset fills in unset options; flags win over both.

The output format follows the --output file name (.prettierrc.json,
.prettierrc.yaml, .prettierrc.toml, prettier.config.js, ...) or --format.`

	defaultOutputName = ".prettierrc.json"
)

type rootOptions struct {
	order       bool
	scopes      []string
	aliases     []string
	tailwind    bool
	packageJSON bool
	preset      string
	plugins     []string
	sets        []string
	configPath  string
	output      string
	format      string
	dir         string
	noCheck     bool
	explain     bool
	listPresets bool
	quiet       bool
	verbose     bool
	showVersion bool
}

// NewRootCommand builds the prettierconf command
func NewRootCommand() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:          UseDescription,
		Short:        ShortDescription,
		Long:         LongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&o.order, "order", false, "Enable import sorting with @ianvs/prettier-plugin-sort-imports")
	flags.StringSliceVar(&o.scopes, "scope", nil, "Internal scopes grouped as @<scope>/... (e.g., components,hooks)")
	flags.StringSliceVar(&o.aliases, "alias", nil, "Path alias prefixes grouped after third-party imports (e.g., @,~)")
	flags.BoolVar(&o.tailwind, "tailwind", false, "Enable prettier-plugin-tailwindcss")
	flags.BoolVar(&o.packageJSON, "package-json", false, "Enable prettier-plugin-packagejson")
	flags.StringVar(&o.preset, "preset", "", "Preset to start from ("+strings.Join(prettier.PresetNames(), ", ")+")")
	flags.StringSliceVar(&o.plugins, "plugin", nil, "Additional plugins appended to the plugin list")
	flags.StringArrayVar(&o.sets, "set", nil, "Override a Prettier option, value parsed as YAML (e.g., printWidth=120)")
	flags.StringVar(&o.configPath, "config", "", "Path to an options file (default: discovered in --dir)")
	flags.StringVarP(&o.output, "output", "o", "", "Write the config to this file instead of stdout")
	flags.StringVar(&o.format, "format", "", "Output format: json, yaml, toml, esm or cjs (default: from --output, else json)")
	flags.StringVar(&o.dir, "dir", ".", "Project directory used for options discovery and plugin checks")
	flags.BoolVar(&o.noCheck, "no-check", false, "Skip the check for installed plugins")
	flags.BoolVar(&o.explain, "explain", false, "Print the import order sections")
	flags.BoolVar(&o.listPresets, "list-presets", false, "List available presets and exit")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&o.verbose, "verbose", false, "Print details about how the config was resolved")
	flags.BoolVarP(&o.showVersion, "version", "v", false, "Show version information")

	return cmd
}

func run(cmd *cobra.Command, o *rootOptions) error {
	stdout := cmd.OutOrStdout()

	if o.showVersion {
		fmt.Fprintln(stdout, version.Get().String())
		return nil
	}

	if o.listPresets {
		fmt.Fprintln(stdout, messages.InfoMsgPresetHeader)
		for _, name := range prettier.PresetNames() {
			fmt.Fprintf(stdout, "  %s\n", name)
		}
		return nil
	}

	logger := log.New(cmd.ErrOrStderr(), o.verbose, o.quiet)
	cmd.SetContext(log.WithLogger(cmd.Context(), logger))

	opts, err := resolveOptions(cmd, o)
	if err != nil {
		return err
	}

	if name := utils.GetProjectName(o.dir); name != "" {
		logger.Debugf(messages.InfoMsgCurrentProject, name)
	}

	composerOpts := []prettier.ComposerOption{prettier.WithLogger(logger)}
	if !o.noCheck && prettier.AdvisoryEnabled(os.Getenv) {
		composerOpts = append(composerOpts, prettier.WithLocator(prettier.NodeModulesLocator{Dir: o.dir}))
	} else {
		logger.Debugf(messages.InfoMsgAdvisorySkipped)
	}
	cfg := prettier.NewComposer(composerOpts...).Compose(opts)

	if o.explain {
		explain(cmd, prettier.Resolve(opts))
	}

	return writeConfig(cmd, o, cfg)
}

// resolveOptions layers the options file, the preset and explicit flags
func resolveOptions(cmd *cobra.Command, o *rootOptions) (prettier.Options, error) {
	logger := log.FromContext(cmd.Context())
	path := o.configPath
	if path == "" {
		path = config.Discover(o.dir)
	}

	var file config.File
	if path != "" {
		var err error
		if file, err = config.Load(path); err != nil {
			return prettier.Options{}, err
		}
		logger.Debugf(messages.InfoMsgLoadedOptionsFile, file)
	}

	if o.preset != "" {
		file.Preset = o.preset
	}
	if file.Preset != "" {
		logger.Debugf(messages.InfoMsgUsingPreset, file.Preset)
	}

	opts, err := file.Resolve()
	if err != nil {
		return prettier.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("order") || flags.Changed("scope") || flags.Changed("alias") {
		if opts.Order == nil {
			opts.Order = &prettier.OrderOptions{}
		}
		if flags.Changed("order") {
			opts.Order.Enabled = o.order
		}
		if flags.Changed("scope") {
			opts.Order.Scope = o.scopes
		}
		if flags.Changed("alias") {
			opts.Order.Alias = o.aliases
		}
	}
	if flags.Changed("tailwind") {
		opts.Tailwind = prettier.Bool(o.tailwind)
	}
	if flags.Changed("package-json") {
		opts.PackageJSON = prettier.Bool(o.packageJSON)
	}

	overrides, err := parseOverrides(o.sets)
	if err != nil {
		return prettier.Options{}, err
	}
	if len(overrides) > 0 || len(o.plugins) > 0 {
		if opts.Extend == nil {
			opts.Extend = map[string]any{}
		}
		for k, v := range overrides {
			opts.Extend[k] = v
		}
		if len(o.plugins) > 0 {
			existing := prettier.Resolve(opts).ExtraPlugins
			opts.Extend[prettier.KeyPlugins] = append(existing, o.plugins...)
		}
	}

	return opts, nil
}

// parseOverrides turns key=value pairs into option values. Values are YAML,
// so numbers, booleans and [a, b] lists get their natural type.
func parseOverrides(sets []string) (map[string]any, error) {
	overrides := make(map[string]any, len(sets))
	for _, set := range sets {
		key, raw, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Errorf(messages.ErrMsgInvalidOverride, set)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, errors.Wrapf(err, messages.ErrMsgFailedToParseOverride, key)
		}
		if value == nil && strings.TrimSpace(raw) == "" {
			value = ""
		}
		overrides[key] = value
	}
	return overrides, nil
}

func explain(cmd *cobra.Command, s prettier.Settings) {
	logger := log.FromContext(cmd.Context())
	sections := importorder.Sections(s.OrderEnabled, s.Scopes, s.Aliases)
	if len(sections) == 0 {
		return
	}
	logger.Println(messages.InfoMsgImportOrderHeader)
	for _, section := range sections {
		logger.Printf("  %-12s %s\n", section.Group, strings.Join(section.Patterns, " "))
	}
}

func writeConfig(cmd *cobra.Command, o *rootOptions, cfg prettier.Config) error {
	logger := log.FromContext(cmd.Context())
	if o.output == "" {
		format := render.JSON
		if o.format != "" {
			var err error
			if format, err = render.ParseFormat(o.format); err != nil {
				return err
			}
		}
		return render.Encode(cmd.OutOrStdout(), cfg, format)
	}

	path := o.output
	if isDir, err := utils.IsDirectory(path); err == nil && isDir {
		path = filepath.Join(path, defaultOutputName)
	} else if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, messages.ErrMsgFailedToCheckPath)
	}

	var (
		format render.Format
		err    error
	)
	if o.format != "" {
		format, err = render.ParseFormat(o.format)
	} else {
		format, err = render.FormatForPath(path)
	}
	if err != nil {
		return err
	}

	if logger.Verbose() {
		reportOtherConfigs(logger, o.dir, path)
	}

	if err := render.WriteFile(path, cfg, format); err != nil {
		return err
	}
	logger.Printf(messages.InfoMsgWroteConfig+"\n", path)
	return nil
}

// reportOtherConfigs lists Prettier config files that would compete with
// the one being written
func reportOtherConfigs(logger *log.Logger, dir, target string) {
	configs, err := utils.FindPrettierConfigs(dir)
	if err != nil {
		return
	}
	targetAbs, _ := filepath.Abs(target)
	for _, c := range configs {
		if abs, _ := filepath.Abs(c); abs == targetAbs {
			continue
		}
		logger.Debugf(messages.InfoMsgExistingConfig, c)
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
