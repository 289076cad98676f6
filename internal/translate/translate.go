// Package translate marshals configuration structures into the on-disk
// format a client expects, and back.
package translate

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// ErrUnsupportedFormat is returned for formats outside the known set.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Marshal renders v in the given config format. JSON output is indented
// with two spaces and ends with a newline; JSONC renders as plain JSON
// since comments cannot be synthesized.
func Marshal(format schema.ConfigFormat, v any) ([]byte, error) {
	switch format {
	case schema.FormatJSON, schema.FormatJSONC:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
		return append(data, '\n'), nil

	case schema.FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
		return data, nil

	case schema.FormatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling TOML")
		}
		return data, nil

	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// Unmarshal parses data in the given config format into v. JSONC input is
// standardized first, so comments and trailing commas are accepted; plain
// JSON also parses under the JSONC format.
func Unmarshal(format schema.ConfigFormat, data []byte, v any) error {
	switch format {
	case schema.FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, "parsing JSON")
		}
		return nil

	case schema.FormatJSONC:
		std, err := hujson.Standardize(data)
		if err != nil {
			return errors.Wrap(err, "standardizing JSONC")
		}
		if err := json.Unmarshal(std, v); err != nil {
			return errors.Wrap(err, "parsing JSONC")
		}
		return nil

	case schema.FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, "parsing YAML")
		}
		return nil

	case schema.FormatTOML:
		if err := toml.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, "parsing TOML")
		}
		return nil

	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}
