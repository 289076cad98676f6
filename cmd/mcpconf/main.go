// Package main is the entry point for the mcpconf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/mcpconf/cmd/mcpconf/commands"
	"github.com/thoreinstein/mcpconf/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(errors.ExitUser)
	}
}
