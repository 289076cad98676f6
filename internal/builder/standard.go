package builder

import (
	"strings"

	"github.com/thoreinstein/mcpconf/internal/schema"
)

// Property names for the common mcpServers-style entry shape. Descriptors
// may remap them through their config structure.
const (
	defaultCommandKey = "command"
	defaultArgsKey    = "args"
	defaultURLKey     = "url"
	defaultHeadersKey = "headers"
	defaultEnvKey     = "env"
)

// Standard renders server entries in the shape shared by most clients
// (Claude Code, Claude Desktop, Cursor, VS Code, Windsurf, Cline, Codex,
// Gemini CLI): stdio entries carry separate command/args/env properties,
// http entries carry url/headers. Property names come from the descriptor's
// config structure when it remaps them.
type Standard struct {
	base
}

func init() {
	for _, id := range schema.KnownClientIDs() {
		if id == schema.ClientOpenCode {
			continue
		}
		if err := Register(id, func(p Params) (Builder, error) {
			return NewStandard(p)
		}); err != nil {
			panic(err)
		}
	}
}

// NewStandard creates a Standard builder for the given descriptor.
func NewStandard(p Params) (*Standard, error) {
	b, err := newBase(p)
	if err != nil {
		return nil, err
	}
	return &Standard{base: b}, nil
}

// BuildStdioConfig renders a stdio server entry:
//
//	{ <name>: { "command": <exe>, "args": [...], "env": {...} } }
//
// The command defaults to "npx" with args "-y <serverPackage>"; a stdio
// entry in the command override table replaces both.
func (b *Standard) BuildStdioConfig(opts *schema.ServerOptions, includeRootObject bool) (map[string]any, error) {
	if err := b.requireTransport(schema.TransportStdio); err != nil {
		return nil, err
	}

	command, args, err := b.stdioCommand(opts)
	if err != nil {
		return nil, err
	}

	entry := map[string]any{
		b.commandKey(): command,
	}
	if len(args) > 0 {
		entry[b.argsKey()] = args
	}
	if env := b.stdioEnv(opts); len(env) > 0 {
		entry[defaultEnvKey] = env
	}

	servers := map[string]any{
		b.BuildServerName(opts): entry,
	}
	return b.wrap(servers, includeRootObject), nil
}

// BuildHTTPConfig renders an http server entry:
//
//	{ <name>: { "url": <resolved>, "headers": {...} } }
//
// Placeholder segments in the server URL are resolved from opts.URLVariables.
func (b *Standard) BuildHTTPConfig(opts *schema.ServerOptions, includeRootObject bool) (map[string]any, error) {
	if err := b.requireTransport(schema.TransportHTTP); err != nil {
		return nil, err
	}
	if opts.ServerURL == "" {
		return nil, ErrMissingServerURL
	}

	entry := map[string]any{
		b.urlKey(): ResolveURL(opts.ServerURL, opts.URLVariables),
	}
	if len(opts.Headers) > 0 {
		entry[b.headersKey()] = opts.Headers
	}

	servers := map[string]any{
		b.BuildServerName(opts): entry,
	}
	return b.wrap(servers, includeRootObject), nil
}

// stdioCommand splits the launch command into executable and arguments.
func (b *Standard) stdioCommand(opts *schema.ServerOptions) (string, []string, error) {
	if override, ok := b.BuildStdioCommand(opts); ok {
		fields := strings.Fields(override)
		if len(fields) == 0 {
			return "", nil, ErrMissingServerPackage
		}
		return fields[0], fields[1:], nil
	}
	if b.serverPackage == "" {
		return "", nil, ErrMissingServerPackage
	}
	return "npx", []string{"-y", b.serverPackage}, nil
}

// stdioEnv exposes the instance and credential to the launched package.
func (b *Standard) stdioEnv(opts *schema.ServerOptions) map[string]string {
	env := make(map[string]string, 2)
	if opts.Instance != "" {
		env[envInstance] = opts.Instance
	}
	if opts.Token != "" {
		env[envToken] = opts.Token
	}
	return env
}

func (b *Standard) commandKey() string {
	if m := b.desc.ConfigStructure.Stdio; m != nil && m.CommandKey != "" {
		return m.CommandKey
	}
	return defaultCommandKey
}

func (b *Standard) argsKey() string {
	if m := b.desc.ConfigStructure.Stdio; m != nil && m.ArgsKey != "" {
		return m.ArgsKey
	}
	return defaultArgsKey
}

func (b *Standard) urlKey() string {
	if m := b.desc.ConfigStructure.HTTP; m != nil && m.URLKey != "" {
		return m.URLKey
	}
	return defaultURLKey
}

func (b *Standard) headersKey() string {
	if m := b.desc.ConfigStructure.HTTP; m != nil && m.HeadersKey != "" {
		return m.HeadersKey
	}
	return defaultHeadersKey
}
