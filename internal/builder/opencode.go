package builder

import (
	"strings"

	"github.com/thoreinstein/mcpconf/internal/schema"
)

// Type constants for OpenCode MCP server entries.
const (
	// TypeLocal marks a local process server (canonical "stdio").
	TypeLocal = "local"

	// TypeRemote marks a remote HTTP server (canonical "http").
	TypeRemote = "remote"
)

// Environment keys through which stdio credentials reach the launched
// server package.
const (
	envInstance = "MCP_INSTANCE"
	envToken    = "MCP_TOKEN"
)

// defaultServersKey is the OpenCode root object key.
const defaultServersKey = "mcp"

// OpenCode renders server entries in the OpenCode config dialect:
//   - servers live under an "mcp" root key
//   - "type" is "local"/"remote" rather than a transport name
//   - local entries carry a single combined command vector
//   - local entries use "environment" rather than "env"
type OpenCode struct {
	base
}

func init() {
	if err := Register(schema.ClientOpenCode, func(p Params) (Builder, error) {
		return NewOpenCode(p)
	}); err != nil {
		panic(err)
	}
}

// NewOpenCode creates an OpenCode builder for the given descriptor.
func NewOpenCode(p Params) (*OpenCode, error) {
	b, err := newBase(p)
	if err != nil {
		return nil, err
	}
	return &OpenCode{base: b}, nil
}

// BuildStdioConfig renders a local server entry:
//
//	{ <name>: { "type": "local", "command": [...], "environment": {...} } }
//
// The command vector defaults to "npx -y <serverPackage>"; a stdio entry in
// the command override table replaces it.
func (b *OpenCode) BuildStdioConfig(opts *schema.ServerOptions, includeRootObject bool) (map[string]any, error) {
	if err := b.requireTransport(schema.TransportStdio); err != nil {
		return nil, err
	}

	command, err := b.stdioCommandVector(opts)
	if err != nil {
		return nil, err
	}

	entry := map[string]any{
		"type":    TypeLocal,
		"command": command,
	}
	if env := b.stdioEnvironment(opts); len(env) > 0 {
		entry["environment"] = env
	}

	servers := map[string]any{
		b.BuildServerName(opts): entry,
	}
	return b.wrap(servers, includeRootObject), nil
}

// BuildHTTPConfig renders a remote server entry:
//
//	{ <name>: { "type": "remote", "url": <resolved>, "headers": {...} } }
//
// Placeholder segments in the server URL are resolved from opts.URLVariables.
func (b *OpenCode) BuildHTTPConfig(opts *schema.ServerOptions, includeRootObject bool) (map[string]any, error) {
	if err := b.requireTransport(schema.TransportHTTP); err != nil {
		return nil, err
	}
	if opts.ServerURL == "" {
		return nil, ErrMissingServerURL
	}

	entry := map[string]any{
		"type": TypeRemote,
		"url":  ResolveURL(opts.ServerURL, opts.URLVariables),
	}
	if len(opts.Headers) > 0 {
		entry["headers"] = opts.Headers
	}

	servers := map[string]any{
		b.BuildServerName(opts): entry,
	}
	return b.wrap(servers, includeRootObject), nil
}

// stdioCommandVector builds the combined executable + arguments vector.
func (b *OpenCode) stdioCommandVector(opts *schema.ServerOptions) ([]string, error) {
	if override, ok := b.BuildStdioCommand(opts); ok {
		return strings.Fields(override), nil
	}
	if b.serverPackage == "" {
		return nil, ErrMissingServerPackage
	}
	return []string{"npx", "-y", b.serverPackage}, nil
}

// stdioEnvironment exposes the instance and credential to the launched
// package. Absent fields are omitted.
func (b *OpenCode) stdioEnvironment(opts *schema.ServerOptions) map[string]string {
	env := make(map[string]string, 2)
	if opts.Instance != "" {
		env[envInstance] = opts.Instance
	}
	if opts.Token != "" {
		env[envToken] = opts.Token
	}
	return env
}

// serversKey returns the configured root key, defaulting to "mcp".
func (b *OpenCode) serversKey() string {
	if key := b.base.serversKey(); key != "" {
		return key
	}
	return defaultServersKey
}

// wrap nests servers under the OpenCode root key when requested.
func (b *OpenCode) wrap(servers map[string]any, includeRootObject bool) map[string]any {
	if !includeRootObject {
		return servers
	}
	return map[string]any{b.serversKey(): servers}
}
