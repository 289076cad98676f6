package builder

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/thoreinstein/mcpconf/internal/mcp"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

func TestNormalizedServersConfig(t *testing.T) {
	b := newOpenCodeBuilder(t, Params{})

	config := map[string]any{
		"mcp": map[string]any{
			"acme": map[string]any{
				"type":        TypeLocal,
				"command":     []any{"npx", "-y", "@acme/mcp-server"},
				"environment": map[string]any{"MCP_TOKEN": "tok-123"},
			},
			"linear": map[string]any{
				"type":    TypeRemote,
				"url":     "https://mcp.linear.app/mcp",
				"headers": map[string]any{"Authorization": "Bearer tok"},
			},
		},
	}

	records := b.NormalizedServersConfig(config)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(records), records)
	}

	acme := records["acme"]
	if !acme.IsLocal() {
		t.Errorf("acme should be local: %+v", acme)
	}
	if acme.Command != "npx" || !reflect.DeepEqual(acme.Args, []string{"-y", "@acme/mcp-server"}) {
		t.Errorf("acme command = %q args = %v", acme.Command, acme.Args)
	}
	if acme.Env["MCP_TOKEN"] != "tok-123" {
		t.Errorf("acme env = %v", acme.Env)
	}

	linear := records["linear"]
	if !linear.IsRemote() {
		t.Errorf("linear should be remote: %+v", linear)
	}
	if linear.URL != "https://mcp.linear.app/mcp" {
		t.Errorf("linear url = %q", linear.URL)
	}
	if linear.Headers["Authorization"] != "Bearer tok" {
		t.Errorf("linear headers = %v", linear.Headers)
	}
}

func TestNormalizedServersConfig_BareShape(t *testing.T) {
	b := newOpenCodeBuilder(t, Params{})

	records := b.NormalizedServersConfig(map[string]any{
		"acme": map[string]any{
			"type":    TypeLocal,
			"command": []any{"acme-mcp"},
		},
	})

	acme, ok := records["acme"]
	if !ok {
		t.Fatalf("bare shape not recognized: %v", records)
	}
	if acme.Command != "acme-mcp" || len(acme.Args) != 0 {
		t.Errorf("record = %+v", acme)
	}
}

func TestNormalizedServersConfig_SkipsMalformedEntries(t *testing.T) {
	b := newOpenCodeBuilder(t, Params{})

	records := b.NormalizedServersConfig(map[string]any{
		"good": map[string]any{"type": TypeRemote, "url": "https://mcp.linear.app/mcp"},
		"bad":  "not an object",
	})

	if _, ok := records["bad"]; ok {
		t.Errorf("malformed entry should be skipped: %v", records)
	}
	if _, ok := records["good"]; !ok {
		t.Errorf("well-formed entry should survive: %v", records)
	}
}

func TestNormalizedServersConfig_RoundTrip(t *testing.T) {
	// Normalizing freshly built output must agree with normalizing the same
	// output after a JSON round trip, wrapped or bare.
	b := newOpenCodeBuilder(t, Params{ServerPackage: "@acme/mcp-server"})

	opts := &schema.ServerOptions{
		Transport: schema.TransportStdio,
		Instance:  "acme",
		Token:     "tok-123",
	}

	for _, includeRoot := range []bool{true, false} {
		built, err := b.BuildStdioConfig(opts, includeRoot)
		if err != nil {
			t.Fatalf("BuildStdioConfig() error = %v", err)
		}

		fresh := b.NormalizedServersConfig(built)

		data, err := json.Marshal(built)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		roundTripped := b.NormalizedServersConfig(decoded)

		if !reflect.DeepEqual(fresh, roundTripped) {
			t.Errorf("includeRoot=%v: fresh %v != round-tripped %v", includeRoot, fresh, roundTripped)
		}

		record, ok := fresh["mcp-server-acme"]
		if !ok {
			t.Fatalf("includeRoot=%v: missing record: %v", includeRoot, fresh)
		}
		want := mcp.ServerRecord{
			Type:    mcp.TransportStdio,
			Command: "npx",
			Args:    []string{"-y", "@acme/mcp-server"},
			Env:     map[string]string{"MCP_INSTANCE": "acme", "MCP_TOKEN": "tok-123"},
		}
		if !reflect.DeepEqual(record, want) {
			t.Errorf("includeRoot=%v: record = %+v, want %+v", includeRoot, record, want)
		}
	}
}
