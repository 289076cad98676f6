// Package commands implements the CLI commands for mcpconf.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpconf/internal/config"
	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/logging"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// clientFlag holds the value of the --client flag.
var clientFlag []string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringSliceVarP(&clientFlag, "client", "c", nil,
		`target client(s), e.g. claude-code, opencode (default: all detected)`)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	_, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mcpconf",
	Short: "Validate and generate MCP server configurations for AI clients",
	Long: `mcpconf validates MCP server connection settings and renders the
configuration snippet each AI client expects, covering Claude Code,
Claude Desktop, OpenCode, Cursor, VS Code, Windsurf, Cline, Codex,
and Gemini CLI.

Describe the server once (transport, credentials or URL) and let
mcpconf translate it to each client's native config shape and format.

Use the --client flag to target specific clients, or omit it to
target all detected/installed clients.`,
	Example: `  # Validate server connection settings
  mcpconf validate --type server settings.json

  # Render a snippet for Claude Code
  mcpconf render --client claude-code --transport http --server-url https://mcp.linear.app/mcp

  # List known clients
  mcpconf clients`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateClientFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MCPCONF_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// validateClientFlag checks that all specified clients are valid.
func validateClientFlag(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	// Check for config load errors first
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	// If no clients specified, that's fine - we'll use detected clients
	if len(clientFlag) == 0 {
		return nil
	}

	// Validate each specified client
	var invalid []string
	for _, c := range clientFlag {
		if !schema.ValidClientID(c) {
			invalid = append(invalid, c)
		}
	}

	if len(invalid) > 0 {
		err := errors.Newf("invalid client(s): %s (valid: %s)",
			strings.Join(invalid, ", "),
			strings.Join(schema.KnownClientIDs(), ", "))
		return errors.NewUserError(err, "Run 'mcpconf clients' to see valid clients")
	}

	return nil
}

// GetClientFlag returns the current value of the --client flag.
// This is used by subcommands to access the flag value.
func GetClientFlag() []string {
	return clientFlag
}

// SetClientFlag sets the client flag value.
// This is used for programmatic override (e.g., interactive mode).
func SetClientFlag(clients []string) {
	clientFlag = clients
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
