package schema

import "slices"

// Transport is a closed enumeration of server connection transports.
type Transport string

const (
	// TransportStdio is a local server launched as a child process.
	TransportStdio Transport = "stdio"

	// TransportHTTP is a remote server reached over HTTP.
	TransportHTTP Transport = "http"
)

// transports is the full closed set, in declaration order.
var transports = []Transport{TransportStdio, TransportHTTP}

// ValidTransport reports whether s is a recognized transport value.
func ValidTransport(s string) bool {
	return slices.Contains(transports, Transport(s))
}

// Transports returns all recognized transport values.
func Transports() []Transport {
	return slices.Clone(transports)
}

// ServerOptions are validated server connection options. The field set a
// consumer may inspect is determined solely by Transport.
type ServerOptions struct {
	// Transport selects which of the remaining fields apply.
	Transport Transport `json:"transport"`

	// Instance identifies the server instance for stdio connections.
	Instance string `json:"instance,omitempty"`

	// Token is the credential passed to stdio-launched servers.
	Token string `json:"token,omitempty"`

	// ServerURL is the endpoint for http connections. It may be a literal
	// placeholder template such as
	// "https://[instance]-be.example.com/mcp/[endpoint]"; no URL
	// well-formedness check is applied.
	ServerURL string `json:"serverUrl,omitempty"`

	// ServerName optionally overrides the derived server entry name.
	ServerName string `json:"serverName,omitempty"`

	// URLVariables substitutes bracketed placeholder segments in ServerURL.
	URLVariables map[string]string `json:"urlVariables,omitempty"`

	// Headers are HTTP headers sent to http servers.
	Headers map[string]string `json:"headers,omitempty"`
}

// ParseServerOptions validates untyped server connection options (safe mode).
// On failure the returned error is a [*Error] with issues in
// schema-declaration order; an unknown transport fails with issue path
// ["transport"].
func ParseServerOptions(raw any) (*ServerOptions, error) {
	d := &decoder{}

	obj, ok := d.object(nil, raw)
	if !ok {
		return nil, d.err()
	}

	opts := &ServerOptions{}

	transport := d.requireString(obj, "transport")
	// Check the raw value so a present-but-empty string fails the enum check
	// while a missing or mistyped field reports only its own issue.
	if s, ok := obj["transport"].(string); ok && !ValidTransport(s) {
		d.add([]string{"transport"}, "invalid transport %q: must be one of %q", s, transports)
	}
	opts.Transport = Transport(transport)

	switch opts.Transport {
	case TransportStdio:
		opts.Instance = d.requireString(obj, "instance")
		opts.Token = d.requireString(obj, "token")
	case TransportHTTP:
		// Placeholder templates are legal serverUrl values, so the field is
		// only checked for presence and type.
		opts.ServerURL = d.requireString(obj, "serverUrl")
		opts.ServerName, _ = d.optionalString(obj, "serverName")
		opts.URLVariables = d.optionalStringMap(obj, "urlVariables")
		opts.Headers = d.optionalStringMap(obj, "headers")
	}

	if err := d.err(); err != nil {
		return nil, err
	}
	return opts, nil
}

// MustServerOptions is the strict form of [ParseServerOptions]; it panics
// with a [*Error] on invalid input. Call sites that already guarantee
// well-formed input use this for fail-fast semantics instead of inspecting
// a result.
func MustServerOptions(raw any) *ServerOptions {
	opts, err := ParseServerOptions(raw)
	if err != nil {
		panic(err)
	}
	return opts
}
