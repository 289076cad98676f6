// Package builder renders validated server connection options into the
// JSON-compatible nested structure a particular MCP client expects.
//
// One builder variant exists per client family. Variants are registered in a
// lookup keyed by client id; each is constructed once per client descriptor
// and is stateless across calls, so a single instance may be shared by
// concurrent call sites.
package builder

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/mcpconf/internal/schema"
)

// Sentinel errors for builder-contract violations. These signal programmer
// errors at the call site, not input-shape problems: schema violations are
// reported by the schema package before options ever reach a builder.
var (
	// ErrNilDescriptor indicates a builder was constructed without a client
	// descriptor.
	ErrNilDescriptor = errors.New("client descriptor is required")

	// ErrMissingServerURL indicates an http config was requested without a
	// server URL to satisfy it.
	ErrMissingServerURL = errors.New("server URL is required to build an http config")

	// ErrMissingServerPackage indicates a stdio config was requested but no
	// server package or command override was supplied at construction.
	ErrMissingServerPackage = errors.New("server package is required to build a stdio config")
)

// UnsupportedTransportError reports that a builder was asked to render a
// transport its client descriptor does not declare support for.
type UnsupportedTransportError struct {
	ClientID  string
	Transport schema.Transport
}

// Error implements the error interface.
func (e *UnsupportedTransportError) Error() string {
	return fmt.Sprintf("client %q does not support the %s transport", e.ClientID, e.Transport)
}

// CommandFunc formats a client-specific launch command string for one
// transport. Override tables map transports to CommandFuncs.
type CommandFunc func(opts *schema.ServerOptions) string

// Params configures a builder at construction. Everything here is captured
// read-only; builders hold no mutable per-call state.
type Params struct {
	// Descriptor is the validated client descriptor the builder renders for.
	Descriptor *schema.ClientDescriptor

	// ServerPackage names the package launched by the default stdio command
	// vector ("npx -y <package>"). Supplied by the package/launch resolver.
	ServerPackage string

	// Commands optionally overrides the launch command per transport. When a
	// transport has no entry the variant's default applies.
	Commands map[schema.Transport]CommandFunc
}

// Builder is the polymorphic contract implemented by each client family.
type Builder interface {
	// ClientID returns the id of the client this builder renders for.
	ClientID() string

	// BuildServerName derives the key under which a server entry is stored.
	// The derivation is deterministic: the same options always produce the
	// same name, and unrelated servers from the same client do not collide.
	BuildServerName(opts *schema.ServerOptions) string

	// BuildStdioConfig renders a stdio server entry, wrapped under the
	// client's root key when includeRootObject is true, bare otherwise.
	BuildStdioConfig(opts *schema.ServerOptions, includeRootObject bool) (map[string]any, error)

	// BuildHTTPConfig renders an http server entry, wrapped under the
	// client's root key when includeRootObject is true, bare otherwise.
	// Fails with ErrMissingServerURL when opts carries no server URL and
	// with *UnsupportedTransportError when the descriptor does not declare
	// http support.
	BuildHTTPConfig(opts *schema.ServerOptions, includeRootObject bool) (map[string]any, error)

	// BuildStdioCommand returns the client-specific stdio launch command
	// when an override was supplied at construction. The second return is
	// false when no command is available; this method never fails.
	BuildStdioCommand(opts *schema.ServerOptions) (string, bool)

	// BuildHTTPCommand is the http counterpart of BuildStdioCommand.
	BuildHTTPCommand(opts *schema.ServerOptions) (string, bool)
}

// ResolveURL substitutes bracketed placeholder segments in a URL template.
// Each "[key]" occurrence is replaced by vars["key"]; unmatched placeholders
// are left intact so callers can detect unresolved templates downstream.
func ResolveURL(url string, vars map[string]string) string {
	resolved := url
	for k, v := range vars {
		resolved = strings.ReplaceAll(resolved, "["+k+"]", v)
	}
	return resolved
}

// slugify lowercases s and collapses runs of non-alphanumeric characters
// into single hyphens, producing a stable map-key-safe name.
func slugify(s string) string {
	var sb strings.Builder
	lastHyphen := true // trim leading hyphens
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// packageBase returns the last path segment of a package name, e.g.
// "@modelcontextprotocol/server-github" -> "server-github".
func packageBase(pkg string) string {
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		return pkg[i+1:]
	}
	return pkg
}

// urlHost extracts the host-ish portion of a URL or placeholder template
// without parsing it as a URL (templates are not well-formed URLs).
func urlHost(rawURL string) string {
	rest := rawURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// base carries the construction-time state shared by all builder variants.
type base struct {
	desc          *schema.ClientDescriptor
	serverPackage string
	commands      map[schema.Transport]CommandFunc
}

func newBase(p Params) (base, error) {
	if p.Descriptor == nil {
		return base{}, ErrNilDescriptor
	}
	return base{
		desc:          p.Descriptor,
		serverPackage: p.ServerPackage,
		commands:      p.Commands,
	}, nil
}

// ClientID returns the descriptor's client id.
func (b *base) ClientID() string {
	return b.desc.ID
}

// BuildStdioCommand consults the override table for a stdio launch command.
func (b *base) BuildStdioCommand(opts *schema.ServerOptions) (string, bool) {
	return b.command(schema.TransportStdio, opts)
}

// BuildHTTPCommand consults the override table for an http launch command.
func (b *base) BuildHTTPCommand(opts *schema.ServerOptions) (string, bool) {
	return b.command(schema.TransportHTTP, opts)
}

func (b *base) command(t schema.Transport, opts *schema.ServerOptions) (string, bool) {
	fn, ok := b.commands[t]
	if !ok || fn == nil {
		return "", false
	}
	return fn(opts), true
}

// requireTransport returns an *UnsupportedTransportError when the descriptor
// does not declare support for t.
func (b *base) requireTransport(t schema.Transport) error {
	if !b.desc.SupportsTransport(t) {
		return &UnsupportedTransportError{ClientID: b.desc.ID, Transport: t}
	}
	return nil
}

// BuildServerName derives a stable entry name from the transport and either
// the explicit server name or the URL / package + instance.
func (b *base) BuildServerName(opts *schema.ServerOptions) string {
	if opts.ServerName != "" {
		return slugify(opts.ServerName)
	}

	if opts.Transport == schema.TransportHTTP && opts.ServerURL != "" {
		return slugify(urlHost(opts.ServerURL))
	}

	name := packageBase(b.serverPackage)
	if opts.Instance != "" {
		if name == "" {
			return slugify(opts.Instance)
		}
		return slugify(name) + "-" + slugify(opts.Instance)
	}
	return slugify(name)
}

// serversKey returns the client's root / servers-collection property name.
func (b *base) serversKey() string {
	return b.desc.ConfigStructure.ServersKey
}

// wrap nests servers under the root key when includeRootObject is set.
func (b *base) wrap(servers map[string]any, includeRootObject bool) map[string]any {
	if !includeRootObject {
		return servers
	}
	return map[string]any{b.serversKey(): servers}
}
