package schema

import (
	"net/url"
	"slices"
	"strconv"
)

// Known client identifiers. The descriptor schema cross-checks ids against
// this closed enumeration; an unrecognized id is a validation error even if
// every other field is well-formed.
const (
	ClientClaudeCode    = "claude-code"
	ClientClaudeDesktop = "claude-desktop"
	ClientOpenCode      = "opencode"
	ClientCursor        = "cursor"
	ClientVSCode        = "vscode"
	ClientWindsurf      = "windsurf"
	ClientCline         = "cline"
	ClientCodex         = "codex"
	ClientGeminiCLI     = "gemini-cli"
)

// knownClientIDs is the closed id enumeration, in declaration order.
var knownClientIDs = []string{
	ClientClaudeCode,
	ClientClaudeDesktop,
	ClientOpenCode,
	ClientCursor,
	ClientVSCode,
	ClientWindsurf,
	ClientCline,
	ClientCodex,
	ClientGeminiCLI,
}

// ValidClientID reports whether id is a known client identifier.
func ValidClientID(id string) bool {
	return slices.Contains(knownClientIDs, id)
}

// KnownClientIDs returns all known client identifiers.
func KnownClientIDs() []string {
	return slices.Clone(knownClientIDs)
}

// validPlatforms is the set of valid OS platform identifiers.
var validPlatforms = []string{"darwin", "linux", "windows"}

// ValidPlatform reports whether platform is a recognized OS identifier.
func ValidPlatform(platform string) bool {
	return slices.Contains(validPlatforms, platform)
}

// ConfigFormat is a closed enumeration of client config file formats.
type ConfigFormat string

const (
	// FormatJSON is plain JSON.
	FormatJSON ConfigFormat = "json"

	// FormatJSONC is JSON with comments and trailing commas.
	FormatJSONC ConfigFormat = "jsonc"

	// FormatYAML is YAML.
	FormatYAML ConfigFormat = "yaml"

	// FormatTOML is TOML.
	FormatTOML ConfigFormat = "toml"
)

// configFormats is the full closed set, in declaration order.
var configFormats = []ConfigFormat{FormatJSON, FormatJSONC, FormatYAML, FormatTOML}

// ValidConfigFormat reports whether s is a recognized config format.
func ValidConfigFormat(s string) bool {
	return slices.Contains(configFormats, ConfigFormat(s))
}

// PropertyMapping names the per-transport properties a client expects in a
// server entry. Empty fields mean the client uses the builder variant's
// defaults.
type PropertyMapping struct {
	URLKey     string `json:"urlKey,omitempty"`
	CommandKey string `json:"commandKey,omitempty"`
	ArgsKey    string `json:"argsKey,omitempty"`
	HeadersKey string `json:"headersKey,omitempty"`
}

// ConfigStructure describes the structural shape a client expects in its
// config file.
type ConfigStructure struct {
	// ServersKey is the property name of the servers collection, which also
	// serves as the root object key when a snippet is rendered wrapped
	// (e.g. "mcpServers" for Claude-family clients, "mcp" for OpenCode).
	ServersKey string `json:"serversKey"`

	// Stdio and HTTP optionally remap the per-transport property names.
	Stdio *PropertyMapping `json:"stdio,omitempty"`
	HTTP  *PropertyMapping `json:"http,omitempty"`
}

// ClientDescriptor is the validated static metadata describing one
// integration target.
type ClientDescriptor struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	UserConfigurable   bool              `json:"userConfigurable"`
	DocumentationURL   string            `json:"documentationUrl,omitempty"`
	Transports         []Transport       `json:"transports"`
	SupportedPlatforms []string          `json:"supportedPlatforms"`
	ConfigFormat       ConfigFormat      `json:"configFormat"`
	ConfigPath         map[string]string `json:"configPath,omitempty"`
	ConfigStructure    ConfigStructure   `json:"configStructure"`
	SupportedAuth      []AuthMode        `json:"supportedAuth"`
	OAuth              *OAuth            `json:"oauth,omitempty"`
}

// SupportsTransport reports whether the descriptor declares support for t.
func (c *ClientDescriptor) SupportsTransport(t Transport) bool {
	return slices.Contains(c.Transports, t)
}

// ParseClientDescriptor validates an untyped client descriptor (safe mode).
// Issues are reported in schema-declaration order: id, name,
// userConfigurable, documentationUrl, transports, supportedPlatforms,
// configFormat, configPath, configStructure, supportedAuth, oauth.
func ParseClientDescriptor(raw any) (*ClientDescriptor, error) {
	d := &decoder{}

	obj, ok := d.object(nil, raw)
	if !ok {
		return nil, d.err()
	}

	desc := &ClientDescriptor{}

	desc.ID = d.requireString(obj, "id")
	// Check the raw value so a present-but-empty string fails the enum check
	// while a missing or mistyped field reports only its own issue.
	if s, ok := obj["id"].(string); ok && !ValidClientID(s) {
		d.add([]string{"id"}, "unknown client id %q", s)
	}

	desc.Name = d.requireString(obj, "name")
	desc.Description, _ = d.optionalString(obj, "description")
	desc.UserConfigurable = d.requireBool(obj, "userConfigurable")

	// documentationUrl is optional, but must be a well-formed URL when present.
	if docURL, ok := d.optionalString(obj, "documentationUrl"); ok {
		if u, err := url.Parse(docURL); err != nil || u.Scheme == "" || u.Host == "" {
			d.add([]string{"documentationUrl"}, "invalid URL %q", docURL)
		} else {
			desc.DocumentationURL = docURL
		}
	}

	desc.Transports = d.parseTransports(obj)
	desc.SupportedPlatforms = d.parsePlatforms(obj)

	format := d.requireString(obj, "configFormat")
	if s, ok := obj["configFormat"].(string); ok && !ValidConfigFormat(s) {
		d.add([]string{"configFormat"}, "unrecognized config format %q", s)
	}
	desc.ConfigFormat = ConfigFormat(format)

	desc.ConfigPath = d.optionalStringMap(obj, "configPath")
	desc.ConfigStructure = d.parseConfigStructure(obj)
	desc.SupportedAuth = d.parseAuthModes([]string{"supportedAuth"}, obj)

	if oauthObj, ok := d.optionalObject(obj, "oauth"); ok {
		desc.OAuth = d.parseOAuth([]string{"oauth"}, oauthObj)
	}

	if err := d.err(); err != nil {
		return nil, err
	}
	return desc, nil
}

// MustClientDescriptor is the strict form of [ParseClientDescriptor]; it
// panics with a [*Error] on invalid input.
func MustClientDescriptor(raw any) *ClientDescriptor {
	desc, err := ParseClientDescriptor(raw)
	if err != nil {
		panic(err)
	}
	return desc
}

// parseTransports validates the non-empty transports set.
func (d *decoder) parseTransports(obj map[string]any) []Transport {
	values, ok := d.requireStringSlice(obj, "transports")
	if !ok {
		return nil
	}
	if len(values) == 0 {
		d.add([]string{"transports"}, "must declare at least one transport")
		return nil
	}

	out := make([]Transport, 0, len(values))
	for i, v := range values {
		if !ValidTransport(v) {
			d.add([]string{"transports", strconv.Itoa(i)}, "invalid transport %q", v)
			continue
		}
		out = append(out, Transport(v))
	}
	return out
}

// parsePlatforms validates the non-empty supportedPlatforms set.
func (d *decoder) parsePlatforms(obj map[string]any) []string {
	values, ok := d.requireStringSlice(obj, "supportedPlatforms")
	if !ok {
		return nil
	}
	if len(values) == 0 {
		d.add([]string{"supportedPlatforms"}, "must declare at least one platform")
		return nil
	}

	for i, v := range values {
		if !ValidPlatform(v) {
			d.add([]string{"supportedPlatforms", strconv.Itoa(i)},
				"invalid platform %q (valid: darwin, linux, windows)", v)
		}
	}
	return values
}

// parseConfigStructure validates the configStructure object.
func (d *decoder) parseConfigStructure(obj map[string]any) ConfigStructure {
	structObj, ok := d.optionalObject(obj, "configStructure")
	if !ok {
		if _, present := obj["configStructure"]; !present {
			d.add([]string{"configStructure"}, "required")
		}
		return ConfigStructure{}
	}

	cs := ConfigStructure{}
	cs.ServersKey = d.requireString(structObj, "configStructure", "serversKey")

	if m, ok := d.optionalObject(structObj, "configStructure", "stdio"); ok {
		cs.Stdio = d.parsePropertyMapping([]string{"configStructure", "stdio"}, m)
	}
	if m, ok := d.optionalObject(structObj, "configStructure", "http"); ok {
		cs.HTTP = d.parsePropertyMapping([]string{"configStructure", "http"}, m)
	}
	return cs
}

// parsePropertyMapping validates a per-transport property mapping.
func (d *decoder) parsePropertyMapping(prefix []string, obj map[string]any) *PropertyMapping {
	pm := &PropertyMapping{}
	pm.URLKey, _ = d.optionalString(obj, append(prefix, "urlKey")...)
	pm.CommandKey, _ = d.optionalString(obj, append(prefix, "commandKey")...)
	pm.ArgsKey, _ = d.optionalString(obj, append(prefix, "argsKey")...)
	pm.HeadersKey, _ = d.optionalString(obj, append(prefix, "headersKey")...)
	return pm
}
