package messages

// Message constants for the prettierconf application
const (
	// Options file errors
	ErrMsgFailedToReadFile        = "failed to read options file"
	ErrMsgFailedToParseFile       = "failed to parse options file"
	ErrMsgUnsupportedOptionsFile  = "unsupported options file extension %q"
	ErrMsgFailedToGetWorkingDir   = "failed to get current working directory"
	ErrMsgUnknownPreset           = "unknown preset %q (available: %s)"
	ErrMsgInvalidOverride         = "invalid override %q: expected key=value"
	ErrMsgFailedToParseOverride   = "failed to parse value of override %q"
	ErrMsgUnsupportedOutputFormat = "unsupported output format %q"

	// Output errors
	ErrMsgFailedToRenderConfig = "failed to render config"
	ErrMsgFailedToWriteFile    = "failed to write config file"
	ErrMsgFailedToCheckPath    = "failed to check path"

	// Advisory messages
	WarnMsgMissingPlugin = "%s is enabled but %s is not installed. Install it with: npm install -D %s"

	// Info messages
	InfoMsgLoadedOptionsFile = "Loaded options from %s"
	InfoMsgUsingPreset       = "Using preset: %s"
	InfoMsgCurrentProject    = "Current project: %s"
	InfoMsgWroteConfig       = "Wrote %s"
	InfoMsgExistingConfig    = "Other Prettier config found: %s"
	InfoMsgAdvisorySkipped   = "Plugin presence check skipped"
	InfoMsgPresetHeader      = "Available presets:"
	InfoMsgImportOrderHeader = "Import order sections:"
)
