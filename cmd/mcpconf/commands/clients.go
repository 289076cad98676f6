package commands

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpconf/internal/catalog"
	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

var clientsJSON bool

func init() {
	clientsCmd.Flags().BoolVar(&clientsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(clientsCmd)
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List known MCP clients and their detection status",
	Long: `List every client mcpconf can render configurations for, with the
transports it supports, its config file format and location, and
whether it is installed on this machine.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if clientsJSON {
			return printClientsJSON(cmd)
		}
		printClientsText(cmd)
		return nil
	},
}

// clientInfo is the JSON projection of a catalog entry.
type clientInfo struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Transports []schema.Transport  `json:"transports"`
	Format     schema.ConfigFormat `json:"configFormat"`
	ConfigPath string              `json:"configPath,omitempty"`
	Installed  bool                `json:"installed"`
}

func printClientsJSON(cmd *cobra.Command) error {
	infos := make([]clientInfo, 0, len(catalog.All()))
	for _, desc := range catalog.All() {
		infos = append(infos, clientInfo{
			ID:         desc.ID,
			Name:       desc.Name,
			Transports: desc.Transports,
			Format:     desc.ConfigFormat,
			ConfigPath: catalog.ConfigPathFor(desc, runtime.GOOS),
			Installed:  catalog.Installed(desc, runtime.GOOS),
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling client list")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printClientsText(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	gray := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)

	for _, desc := range catalog.All() {
		transports := make([]string, len(desc.Transports))
		for i, t := range desc.Transports {
			transports[i] = string(t)
		}

		marker := " "
		if catalog.Installed(desc, runtime.GOOS) {
			marker = green.Sprint("✓")
		}

		fmt.Fprintf(out, "%s %s %s\n", marker, bold.Sprint(desc.Name), gray.Sprintf("(%s)", desc.ID))
		if desc.Description != "" {
			fmt.Fprintf(out, "    %s\n", truncate(desc.Description, 70))
		}
		fmt.Fprintf(out, "    transports: %s  format: %s\n", strings.Join(transports, ", "), desc.ConfigFormat)
		if path := catalog.ConfigPathFor(desc, runtime.GOOS); path != "" {
			fmt.Fprintf(out, "    config: %s\n", path)
		}
	}
}
