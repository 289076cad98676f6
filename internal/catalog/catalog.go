// Package catalog supplies the descriptors for every known MCP client.
//
// The catalog is the collaborator the schema layer's closed id enumeration
// points at: each descriptor here validates against the client descriptor
// schema, and the set of ids matches schema.KnownClientIDs exactly.
package catalog

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// descriptors holds one descriptor per known client id, in the enumeration's
// declaration order.
var descriptors = []*schema.ClientDescriptor{
	{
		ID:                 schema.ClientClaudeCode,
		Name:               "Claude Code",
		Description:        "Claude Code CLI",
		UserConfigurable:   true,
		DocumentationURL:   "https://docs.anthropic.com/en/docs/claude-code/mcp",
		Transports:         []schema.Transport{schema.TransportStdio, schema.TransportHTTP},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath:         homePaths(".claude.json"),
		ConfigStructure:    schema.ConfigStructure{ServersKey: "mcpServers"},
		SupportedAuth:      []schema.AuthMode{schema.AuthToken, schema.AuthOAuthDCR},
		OAuth: &schema.OAuth{
			DCR: &schema.OAuthDCR{
				RedirectURIPatterns: []string{"http://localhost:*/callback"},
			},
		},
	},
	{
		ID:                 schema.ClientClaudeDesktop,
		Name:               "Claude Desktop",
		Description:        "Claude desktop application",
		UserConfigurable:   true,
		DocumentationURL:   "https://modelcontextprotocol.io/quickstart/user",
		Transports:         []schema.Transport{schema.TransportStdio},
		SupportedPlatforms: []string{"darwin", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath: map[string]string{
			"darwin":  homePath("Library", "Application Support", "Claude", "claude_desktop_config.json"),
			"windows": homePath("AppData", "Roaming", "Claude", "claude_desktop_config.json"),
		},
		ConfigStructure: schema.ConfigStructure{ServersKey: "mcpServers"},
		SupportedAuth:   []schema.AuthMode{schema.AuthToken},
	},
	{
		ID:                 schema.ClientOpenCode,
		Name:               "OpenCode",
		Description:        "OpenCode terminal assistant",
		UserConfigurable:   true,
		DocumentationURL:   "https://opencode.ai/docs/mcp-servers",
		Transports:         []schema.Transport{schema.TransportStdio, schema.TransportHTTP},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath:         configHomePaths("opencode", "opencode.json"),
		ConfigStructure:    schema.ConfigStructure{ServersKey: "mcp"},
		SupportedAuth:      []schema.AuthMode{schema.AuthToken},
	},
	{
		ID:                 schema.ClientCursor,
		Name:               "Cursor",
		Description:        "Cursor editor",
		UserConfigurable:   true,
		DocumentationURL:   "https://docs.cursor.com/context/model-context-protocol",
		Transports:         []schema.Transport{schema.TransportStdio, schema.TransportHTTP},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath:         homePaths(".cursor", "mcp.json"),
		ConfigStructure:    schema.ConfigStructure{ServersKey: "mcpServers"},
		SupportedAuth:      []schema.AuthMode{schema.AuthToken, schema.AuthOAuthDCR},
		OAuth:              &schema.OAuth{},
	},
	{
		ID:                 schema.ClientVSCode,
		Name:               "Visual Studio Code",
		Description:        "VS Code editor",
		UserConfigurable:   true,
		DocumentationURL:   "https://code.visualstudio.com/docs/copilot/chat/mcp-servers",
		Transports:         []schema.Transport{schema.TransportStdio, schema.TransportHTTP},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSONC,
		ConfigPath: map[string]string{
			"darwin":  homePath("Library", "Application Support", "Code", "User", "mcp.json"),
			"linux":   homePath(".config", "Code", "User", "mcp.json"),
			"windows": homePath("AppData", "Roaming", "Code", "User", "mcp.json"),
		},
		ConfigStructure: schema.ConfigStructure{ServersKey: "servers"},
		SupportedAuth:   []schema.AuthMode{schema.AuthToken},
	},
	{
		ID:                 schema.ClientWindsurf,
		Name:               "Windsurf",
		Description:        "Windsurf editor",
		UserConfigurable:   true,
		DocumentationURL:   "https://docs.windsurf.com/windsurf/mcp",
		Transports:         []schema.Transport{schema.TransportStdio, schema.TransportHTTP},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath:         homePaths(".codeium", "windsurf", "mcp_config.json"),
		ConfigStructure:    schema.ConfigStructure{ServersKey: "mcpServers"},
		SupportedAuth:      []schema.AuthMode{schema.AuthToken},
	},
	{
		ID:                 schema.ClientCline,
		Name:               "Cline",
		Description:        "VS Code Cline extension",
		UserConfigurable:   true,
		Transports:         []schema.Transport{schema.TransportStdio},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath: map[string]string{
			"darwin": homePath("Library", "Application Support", "Code", "User",
				"globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json"),
			"linux": homePath(".config", "Code", "User",
				"globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json"),
			"windows": homePath("AppData", "Roaming", "Code", "User",
				"globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json"),
		},
		ConfigStructure: schema.ConfigStructure{ServersKey: "mcpServers"},
		SupportedAuth:   []schema.AuthMode{},
	},
	{
		ID:                 schema.ClientCodex,
		Name:               "Codex",
		Description:        "Codex CLI",
		UserConfigurable:   true,
		DocumentationURL:   "https://github.com/openai/codex",
		Transports:         []schema.Transport{schema.TransportStdio},
		SupportedPlatforms: []string{"darwin", "linux"},
		ConfigFormat:       schema.FormatTOML,
		ConfigPath:         homePaths(".codex", "config.toml"),
		ConfigStructure:    schema.ConfigStructure{ServersKey: "mcp_servers"},
		SupportedAuth:      []schema.AuthMode{schema.AuthToken},
	},
	{
		ID:                 schema.ClientGeminiCLI,
		Name:               "Gemini CLI",
		Description:        "Gemini command line interface",
		UserConfigurable:   true,
		DocumentationURL:   "https://github.com/google-gemini/gemini-cli",
		Transports:         []schema.Transport{schema.TransportStdio, schema.TransportHTTP},
		SupportedPlatforms: []string{"darwin", "linux", "windows"},
		ConfigFormat:       schema.FormatJSON,
		ConfigPath:         homePaths(".gemini", "settings.json"),
		ConfigStructure:    schema.ConfigStructure{ServersKey: "mcpServers"},
		SupportedAuth:      []schema.AuthMode{schema.AuthToken},
	},
}

// Get returns the descriptor for a client id.
// Returns ErrUnknownClient for ids outside the catalog.
func Get(id string) (*schema.ClientDescriptor, error) {
	for _, desc := range descriptors {
		if desc.ID == id {
			return desc, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrUnknownClient, "%q", id)
}

// All returns every descriptor in deterministic order.
func All() []*schema.ClientDescriptor {
	out := make([]*schema.ClientDescriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// ConfigPathFor returns the client's config file path on the given OS
// platform, or empty when the client has no config location there.
func ConfigPathFor(desc *schema.ClientDescriptor, platform string) string {
	return desc.ConfigPath[platform]
}

// Installed reports whether the client's config file exists on the given
// platform. A client with no path for the platform is never installed.
func Installed(desc *schema.ClientDescriptor, platform string) bool {
	path := ConfigPathFor(desc, platform)
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// home returns the user's home directory, empty when unknown.
func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

// homePath joins path elements under the home directory.
func homePath(elems ...string) string {
	h := home()
	if h == "" {
		return ""
	}
	return filepath.Join(append([]string{h}, elems...)...)
}

// homePaths maps every OS platform to the same home-relative path.
func homePaths(elems ...string) map[string]string {
	path := homePath(elems...)
	return map[string]string{
		"darwin":  path,
		"linux":   path,
		"windows": path,
	}
}

// configHomePaths maps every OS platform to a path under the XDG config
// home (which xdg resolves per platform at runtime).
func configHomePaths(elems ...string) map[string]string {
	path := filepath.Join(append([]string{xdg.ConfigHome}, elems...)...)
	return map[string]string{
		"darwin":  path,
		"linux":   path,
		"windows": path,
	}
}
