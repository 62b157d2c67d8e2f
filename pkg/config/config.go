// Package config loads prettierconf options files.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/siyuan-infoblox/prettierconf/pkg/messages"
	"github.com/siyuan-infoblox/prettierconf/pkg/prettier"
)

// File is the content of an options file: the composer options plus an
// optional preset applied underneath them.
type File struct {
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty" toml:"preset,omitempty"`

	prettier.Options `yaml:",inline"`

	// Path is where the file was loaded from, empty when none was found
	Path string `json:"-" yaml:"-" toml:"-"`
}

// Resolve returns the composer options the file describes. A named preset
// fills in whatever the file leaves unset.
func (f File) Resolve() (prettier.Options, error) {
	if f.Preset == "" {
		return f.Options.Clone(), nil
	}
	preset, ok := prettier.LookupPreset(f.Preset)
	if !ok {
		return prettier.Options{}, errors.Errorf(messages.ErrMsgUnknownPreset, f.Preset, strings.Join(prettier.PresetNames(), ", "))
	}
	return preset(f.Options), nil
}

// String describes where the options came from
func (f File) String() string {
	if f.Path == "" {
		return "<none>"
	}
	if f.Preset != "" {
		return fmt.Sprintf("%s (preset %s)", f.Path, f.Preset)
	}
	return f.Path
}
