// Package render writes resolved Prettier configurations in the file formats
// Prettier reads.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/prettierconf/pkg/messages"
	"github.com/siyuan-infoblox/prettierconf/pkg/prettier"
)

const typeAnnotation = `/** @type {import("prettier").Config} */`

// Encode writes cfg to w in the given format. JSON, YAML and the JavaScript
// formats keep the key order of cfg.Keys(); TOML sorts keys.
func Encode(w io.Writer, cfg prettier.Config, format Format) error {
	var (
		out []byte
		err error
	)

	switch format {
	case JSON:
		out, err = encodeJSON(cfg)
	case YAML:
		out, err = encodeYAML(cfg)
	case TOML:
		out, err = encodeTOML(cfg)
	case ESM:
		out, err = encodeModule(cfg, "export default config;")
	case CJS:
		out, err = encodeModule(cfg, "module.exports = config;")
	default:
		return errors.Errorf(messages.ErrMsgUnsupportedOutputFormat, format)
	}
	if err != nil {
		return errors.Wrap(err, messages.ErrMsgFailedToRenderConfig)
	}

	_, err = w.Write(out)
	return err
}

// Bytes renders cfg into memory
func Bytes(cfg prettier.Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile atomically writes cfg to path: it renders into a temp file next
// to path, then renames it into place.
func WriteFile(path string, cfg prettier.Config, format Format) error {
	data, err := Bytes(cfg, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, messages.ErrMsgFailedToWriteFile)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, messages.ErrMsgFailedToWriteFile)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(err, messages.ErrMsgFailedToWriteFile)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(err, messages.ErrMsgFailedToWriteFile)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, messages.ErrMsgFailedToWriteFile)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, messages.ErrMsgFailedToWriteFile)
	}
	return nil
}

func encodeJSON(cfg prettier.Config) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range cfg.Keys() {
		if i > 0 {
			compact.WriteByte(',')
		}
		k, err := marshalJSON(key)
		if err != nil {
			return nil, err
		}
		v, err := marshalJSON(cfg[key])
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", key)
		}
		compact.Write(k)
		compact.WriteByte(':')
		compact.Write(v)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshalJSON encodes v without escaping <, > and &, which appear in
// importOrder markers
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func encodeYAML(cfg prettier.Config) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range cfg.Keys() {
		value := &yaml.Node{}
		if err := value.Encode(cfg[key]); err != nil {
			return nil, errors.Wrapf(err, "option %s", key)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeTOML(cfg prettier.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any(cfg)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeModule(cfg prettier.Config, export string) ([]byte, error) {
	body, err := encodeJSON(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, typeAnnotation)
	fmt.Fprintf(&buf, "const config = %s;\n\n", bytes.TrimRight(body, "\n"))
	fmt.Fprintln(&buf, export)
	return buf.Bytes(), nil
}
