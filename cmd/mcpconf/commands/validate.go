package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
	"github.com/thoreinstein/mcpconf/internal/translate"
	"github.com/thoreinstein/mcpconf/pkg/fileutil"
)

var (
	validateType   string
	validateFormat string
)

func init() {
	validateCmd.Flags().StringVarP(&validateType, "type", "t", "server",
		"document type: server, client, oauth")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text",
		"report format: text, json")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an MCP configuration document",
	Long: `Validate a JSON document against one of the mcpconf schemas: server
connection options, a client descriptor, or OAuth settings.

Reads from the given file, or from stdin when no file (or "-") is
given. Comments and trailing commas in the input are tolerated.

All schema violations are reported at once, in schema declaration
order, rather than stopping at the first.`,
	Example: `  # Validate server connection settings
  mcpconf validate --type server settings.json

  # Validate a client descriptor, machine-readable report
  mcpconf validate --type client --format json descriptor.json

  # Validate from stdin
  cat settings.json | mcpconf validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	reportFormat := schema.Format(validateFormat)
	switch reportFormat {
	case schema.FormatText, schema.FormatJSONReport:
	default:
		return errors.NewUserError(
			errors.Newf("unknown report format %q", validateFormat),
			"Valid formats: text, json")
	}

	data, err := readValidateInput(cmd, args)
	if err != nil {
		return err
	}

	var raw any
	if err := translate.Unmarshal(schema.FormatJSONC, data, &raw); err != nil {
		return errors.NewUserError(err, "input must be a JSON document")
	}

	var verr *schema.Error
	switch validateType {
	case "server":
		_, err = schema.ParseServerOptions(raw)
	case "client":
		_, err = schema.ParseClientDescriptor(raw)
	case "oauth":
		_, err = schema.ParseOAuth(raw)
	default:
		return errors.NewUserError(
			errors.Newf("unknown document type %q", validateType),
			"Valid types: server, client, oauth")
	}

	reporter := schema.NewReporter(cmd.OutOrStdout(), reportFormat)

	if err == nil {
		return reporter.Report(nil)
	}
	if !errors.As(err, &verr) {
		return err
	}

	if rerr := reporter.Report(verr); rerr != nil {
		return rerr
	}
	return errors.NewExitError(
		errors.Newf("invalid %s document: %d issue(s)", validateType, len(verr.Issues)),
		errors.ExitUser)
}

// readValidateInput reads the document from the file argument or stdin.
func readValidateInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), fileutil.MaxFileSize))
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return data, nil
	}
	return fileutil.ReadFileWithLimit(args[0])
}
