package mcp

// Transport type constants for canonical server records.
const (
	// TransportStdio indicates local process communication via stdin/stdout.
	TransportStdio = "stdio"

	// TransportHTTP indicates remote server communication over HTTP.
	TransportHTTP = "http"
)

// ServerRecord is the transport-agnostic canonical representation of one
// server entry, independent of any one client's on-disk shape. It is what
// the normalization layer recovers from a previously rendered config.
type ServerRecord struct {
	// Type is the canonical transport: "stdio" or "http".
	Type string `json:"type"`

	// Command is the launcher executable for stdio servers (the head of the
	// stored command vector).
	Command string `json:"command,omitempty"`

	// Args are the remaining elements of the stored command vector.
	Args []string `json:"args,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty"`

	// URL is the resolved endpoint for http servers.
	URL string `json:"url,omitempty"`

	// Headers are HTTP headers for http servers.
	Headers map[string]string `json:"headers,omitempty"`
}

// IsLocal returns true if this record describes a stdio server.
func (r ServerRecord) IsLocal() bool {
	return r.Type == TransportStdio
}

// IsRemote returns true if this record describes an http server.
func (r ServerRecord) IsRemote() bool {
	return r.Type == TransportHTTP
}
