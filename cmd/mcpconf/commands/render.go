package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/mcpconf/internal/builder"
	"github.com/thoreinstein/mcpconf/internal/catalog"
	"github.com/thoreinstein/mcpconf/internal/cli"
	"github.com/thoreinstein/mcpconf/internal/cli/prompt"
	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/logging"
	"github.com/thoreinstein/mcpconf/internal/schema"
	"github.com/thoreinstein/mcpconf/internal/translate"
	"github.com/thoreinstein/mcpconf/pkg/fileutil"
)

var (
	renderTransport  string
	renderServerURL  string
	renderInstance   string
	renderToken      string
	renderServerName string
	renderPackage    string
	renderURLVars    map[string]string
	renderHeaders    map[string]string
	renderBare       bool
	renderOutput     string
	renderWrite      bool
)

func init() {
	renderCmd.Flags().StringVar(&renderTransport, "transport", "",
		"server transport: stdio, http")
	renderCmd.Flags().StringVar(&renderServerURL, "server-url", "",
		"server URL for http transport (placeholder templates allowed)")
	renderCmd.Flags().StringVar(&renderInstance, "instance", "",
		"instance identifier for stdio transport")
	renderCmd.Flags().StringVar(&renderToken, "token", "",
		"credential token for stdio transport")
	renderCmd.Flags().StringVar(&renderServerName, "server-name", "",
		"explicit server entry name (derived when omitted)")
	renderCmd.Flags().StringVar(&renderPackage, "package", "",
		"server package launched for stdio transport (npx -y <package>)")
	renderCmd.Flags().StringToStringVar(&renderURLVars, "url-var", nil,
		"URL placeholder substitution, key=value (repeatable)")
	renderCmd.Flags().StringToStringVar(&renderHeaders, "header", nil,
		"HTTP header, key=value (repeatable)")
	renderCmd.Flags().BoolVar(&renderBare, "bare", false,
		"emit the server entries without the client's root object")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"write the snippet to a file instead of stdout")
	renderCmd.Flags().BoolVarP(&renderWrite, "write", "w", false,
		"merge the entry into the client's config file")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an MCP server config snippet for a client",
	Long: `Render the configuration snippet a client needs to connect to an MCP
server. The connection settings are validated first; the snippet is
then built in the client's native shape and serialized in its config
file format.

With --write, the entry is merged into the client's config file using
an atomic write; otherwise the snippet goes to stdout or --output.`,
	Example: `  # Remote server for Claude Code
  mcpconf render --client claude-code --transport http \
    --server-url https://mcp.linear.app/mcp

  # Local server for OpenCode, written into its config
  mcpconf render --client opencode --transport stdio \
    --instance acme --token ghp_secret --package @acme/mcp-server --write

  # Placeholder template resolved at render time
  mcpconf render --client cursor --transport http \
    --server-url "https://[instance]-be.example.com/mcp" --url-var instance=acme`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, _ []string) error {
	desc, err := resolveRenderClient(cmd)
	if err != nil {
		return err
	}

	opts, err := parseRenderOptions(cmd)
	if err != nil {
		return err
	}

	b, err := builder.New(builder.Params{
		Descriptor:    desc,
		ServerPackage: renderPackage,
	})
	if err != nil {
		return err
	}

	servers, err := buildConfig(b, opts, !renderBare && !renderWrite)
	if err != nil {
		return renderBuildError(desc, err)
	}

	if renderWrite {
		return writeClientConfig(cmd, desc, servers)
	}

	data, err := translate.Marshal(desc.ConfigFormat, servers)
	if err != nil {
		return err
	}

	if renderOutput != "" {
		if err := fileutil.AtomicWriteFile(renderOutput, data, 0644); err != nil {
			return errors.NewSystemError(err, "Check that the output directory exists")
		}
		logging.FromContext(cmd.Context()).Info("snippet written",
			"client", desc.ID, "path", renderOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// resolveRenderClient picks exactly one target client: the --client flag,
// or an interactive choice among detected clients.
func resolveRenderClient(cmd *cobra.Command) (*schema.ClientDescriptor, error) {
	descs, err := cli.ResolveClients(GetClientFlag())
	if err != nil {
		if errors.Is(err, cli.ErrNoClientsAvailable) {
			return nil, errors.NewUserError(err, "Pass --client to target a client explicitly")
		}
		return nil, err
	}
	if len(descs) == 1 {
		return descs[0], nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return cli.PickClient(descs)
	}
	return prompt.SelectClientDefault(descs)
}

// parseRenderOptions validates the flag values through the server schema so
// flag input and file input report identical issues.
func parseRenderOptions(cmd *cobra.Command) (*schema.ServerOptions, error) {
	raw := map[string]any{
		"transport": renderTransport,
	}
	if renderServerURL != "" {
		raw["serverUrl"] = renderServerURL
	}
	if renderInstance != "" {
		raw["instance"] = renderInstance
	}
	if renderToken != "" {
		raw["token"] = renderToken
	}
	if renderServerName != "" {
		raw["serverName"] = renderServerName
	}
	if len(renderURLVars) > 0 {
		raw["urlVariables"] = renderURLVars
	}
	if len(renderHeaders) > 0 {
		raw["headers"] = renderHeaders
	}

	opts, err := schema.ParseServerOptions(raw)
	if err != nil {
		var verr *schema.Error
		if errors.As(err, &verr) {
			reporter := schema.NewReporter(cmd.ErrOrStderr(), schema.FormatText)
			if rerr := reporter.Report(verr); rerr != nil {
				return nil, rerr
			}
			return nil, errors.NewUserError(
				errors.Newf("invalid server options: %d issue(s)", len(verr.Issues)),
				"See 'mcpconf render --help' for the required flags per transport")
		}
		return nil, err
	}
	return opts, nil
}

// buildConfig dispatches to the transport-specific build method.
func buildConfig(b builder.Builder, opts *schema.ServerOptions, includeRoot bool) (map[string]any, error) {
	switch opts.Transport {
	case schema.TransportHTTP:
		return b.BuildHTTPConfig(opts, includeRoot)
	default:
		return b.BuildStdioConfig(opts, includeRoot)
	}
}

// renderBuildError maps builder contract errors to user-facing exit errors.
func renderBuildError(desc *schema.ClientDescriptor, err error) error {
	var unsupported *builder.UnsupportedTransportError
	if errors.As(err, &unsupported) {
		return errors.NewUserError(err,
			fmt.Sprintf("Run 'mcpconf clients' to see what %q supports", desc.ID))
	}
	if errors.Is(err, builder.ErrMissingServerPackage) {
		return errors.NewUserError(err, "Pass --package to name the server package")
	}
	if errors.Is(err, builder.ErrMissingServerURL) {
		return errors.NewUserError(err, "Pass --server-url for the http transport")
	}
	return err
}

// writeClientConfig merges the bare server entries into the client's config
// file, creating it when absent. The write is atomic.
func writeClientConfig(cmd *cobra.Command, desc *schema.ClientDescriptor, servers map[string]any) error {
	path := catalog.ConfigPathFor(desc, runtime.GOOS)
	if path == "" {
		return errors.NewUserError(
			errors.Newf("client %q has no config path on %s", desc.ID, runtime.GOOS),
			"Use --output to write the snippet elsewhere")
	}

	existing := map[string]any{}
	data, err := fileutil.ReadFileWithLimit(path)
	switch {
	case err == nil:
		// JSON configs are read JSONC-tolerantly so hand-edited files with
		// comments survive the round trip.
		readFormat := desc.ConfigFormat
		if readFormat == schema.FormatJSON {
			readFormat = schema.FormatJSONC
		}
		if err := translate.Unmarshal(readFormat, data, &existing); err != nil {
			return errors.NewUserError(err,
				fmt.Sprintf("Fix or move the existing config at %s", path))
		}
	case errors.Is(err, os.ErrNotExist):
		// No config yet; start fresh
	default:
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	serversKey := desc.ConfigStructure.ServersKey
	collection, _ := existing[serversKey].(map[string]any)
	if collection == nil {
		collection = map[string]any{}
	}
	for name, entry := range servers {
		collection[name] = entry
	}
	existing[serversKey] = collection

	out, err := translate.Marshal(desc.ConfigFormat, existing)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+filepath.Dir(path))
	}
	if err := fileutil.AtomicWriteFile(path, out, 0644); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	logging.FromContext(cmd.Context()).Info("config updated",
		"client", desc.ID, "path", path, "entries", len(servers))
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
	return nil
}
