package builder

import (
	"github.com/thoreinstein/mcpconf/internal/mcp"
)

// NormalizedServersConfig reverse-maps a previously rendered OpenCode config
// structure back to canonical server records. Both the root-wrapped and the
// bare shape are accepted: the wrapped form is recognized by an explicit
// check for the root key at the top level.
//
// A "local" entry normalizes to a stdio record whose command is the head of
// the stored command vector and whose args are the remainder; any other type
// normalizes to an http record with its URL and headers.
//
// Deprecated: consume the structured output of BuildStdioConfig /
// BuildHTTPConfig directly instead of round-tripping through this helper.
// Kept behaviorally intact for callers that merge with existing user configs.
func (b *OpenCode) NormalizedServersConfig(config map[string]any) map[string]mcp.ServerRecord {
	servers := config
	if wrapped, ok := config[b.serversKey()].(map[string]any); ok {
		servers = wrapped
	}

	records := make(map[string]mcp.ServerRecord, len(servers))
	for name, v := range servers {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		records[name] = normalizeEntry(entry)
	}
	return records
}

// normalizeEntry converts one rendered entry to its canonical record.
func normalizeEntry(entry map[string]any) mcp.ServerRecord {
	if entryString(entry, "type") == TypeLocal {
		record := mcp.ServerRecord{
			Type: mcp.TransportStdio,
			Env:  entryStringMap(entry, "environment"),
		}
		if command := entryStringSlice(entry, "command"); len(command) > 0 {
			record.Command = command[0]
			if len(command) > 1 {
				record.Args = command[1:]
			}
		}
		return record
	}

	return mcp.ServerRecord{
		Type:    mcp.TransportHTTP,
		URL:     entryString(entry, "url"),
		Headers: entryStringMap(entry, "headers"),
	}
}

func entryString(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return s
}

// entryStringSlice reads a string slice that may be stored either as
// []string (fresh builder output) or []any (decoded JSON).
func entryStringSlice(entry map[string]any, key string) []string {
	switch v := entry[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// entryStringMap reads a string map that may be stored either as
// map[string]string (fresh builder output) or map[string]any (decoded JSON).
func entryStringMap(entry map[string]any, key string) map[string]string {
	switch v := entry[key].(type) {
	case map[string]string:
		if len(v) == 0 {
			return nil
		}
		return v
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		out := make(map[string]string, len(v))
		for k, elem := range v {
			if s, ok := elem.(string); ok {
				out[k] = s
			}
		}
		return out
	default:
		return nil
	}
}
