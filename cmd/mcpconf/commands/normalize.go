package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpconf/internal/builder"
	"github.com/thoreinstein/mcpconf/internal/catalog"
	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
	"github.com/thoreinstein/mcpconf/internal/translate"
	"github.com/thoreinstein/mcpconf/pkg/fileutil"
)

var normalizeFormat string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeFormat, "format", "f", "json",
		"output format: json, yaml, toml")
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Convert an OpenCode config back to canonical server records",
	Long: `Read an OpenCode MCP configuration and emit the transport-agnostic
canonical record for each server entry: command and args split apart,
environment, URL, and headers.

Reads from the given file, or from OpenCode's own config file when no
file is given. Both the root-wrapped and the bare shape are accepted.

Deprecated in favor of consuming render output directly; kept for
configs produced by earlier releases.`,
	Example: `  # Normalize OpenCode's installed config
  mcpconf normalize

  # Normalize a specific file, as YAML
  mcpconf normalize opencode.json --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	for _, id := range GetClientFlag() {
		if id != schema.ClientOpenCode {
			return errors.NewUserError(
				errors.Newf("client %q configs cannot be normalized", id),
				"Only opencode configs have a normal form")
		}
	}

	desc, err := catalog.Get(schema.ClientOpenCode)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		path = catalog.ConfigPathFor(desc, runtime.GOOS)
		if path == "" {
			return errors.NewUserError(
				errors.Newf("no opencode config path on %s", runtime.GOOS),
				"Pass the config file as an argument")
		}
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return errors.NewUserError(err, "Pass an existing opencode config file")
	}

	var config map[string]any
	if err := translate.Unmarshal(schema.FormatJSONC, data, &config); err != nil {
		return errors.NewUserError(err, "The config must be a JSON object")
	}

	b, err := builder.NewOpenCode(builder.Params{Descriptor: desc})
	if err != nil {
		return err
	}

	records := b.NormalizedServersConfig(config)

	out, err := translate.Marshal(schema.ConfigFormat(normalizeFormat), records)
	if err != nil {
		if errors.Is(err, translate.ErrUnsupportedFormat) {
			return errors.NewUserError(err, "Valid formats: json, yaml, toml")
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
