package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOpenCodeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opencode.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNormalizeCommand_WrappedConfig(t *testing.T) {
	path := writeOpenCodeConfig(t, `{
		"mcp": {
			"acme": {
				"type": "local",
				"command": ["npx", "-y", "@acme/mcp-server"],
				"environment": {"MCP_TOKEN": "tok-123"}
			},
			"linear": {
				"type": "remote",
				"url": "https://mcp.linear.app/mcp"
			}
		}
	}`)

	output, err := executeCommand(t, "normalize", path)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	var records map[string]struct {
		Type    string            `json:"type"`
		Command string            `json:"command"`
		Args    []string          `json:"args"`
		Env     map[string]string `json:"env"`
		URL     string            `json:"url"`
	}
	if jsonErr := json.Unmarshal([]byte(output), &records); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jsonErr, output)
	}

	acme := records["acme"]
	if acme.Type != "stdio" {
		t.Errorf("acme type = %q, want stdio", acme.Type)
	}
	if acme.Command != "npx" {
		t.Errorf("acme command = %q, want npx", acme.Command)
	}
	if len(acme.Args) != 2 || acme.Args[1] != "@acme/mcp-server" {
		t.Errorf("acme args = %v", acme.Args)
	}
	if acme.Env["MCP_TOKEN"] != "tok-123" {
		t.Errorf("acme env = %v", acme.Env)
	}

	linear := records["linear"]
	if linear.Type != "http" {
		t.Errorf("linear type = %q, want http", linear.Type)
	}
	if linear.URL != "https://mcp.linear.app/mcp" {
		t.Errorf("linear url = %q", linear.URL)
	}
}

func TestNormalizeCommand_BareConfig(t *testing.T) {
	path := writeOpenCodeConfig(t, `{
		"acme": {
			"type": "local",
			"command": ["acme-mcp"]
		}
	}`)

	output, err := executeCommand(t, "normalize", path)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	var records map[string]map[string]any
	if jsonErr := json.Unmarshal([]byte(output), &records); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jsonErr, output)
	}
	if records["acme"]["command"] != "acme-mcp" {
		t.Errorf("unexpected record: %v", records["acme"])
	}
	if _, ok := records["acme"]["args"]; ok {
		t.Errorf("single-element vector should have no args: %v", records["acme"])
	}
}

func TestNormalizeCommand_YAMLOutput(t *testing.T) {
	path := writeOpenCodeConfig(t, `{
		"mcp": {
			"linear": {"type": "remote", "url": "https://mcp.linear.app/mcp"}
		}
	}`)

	output, err := executeCommand(t, "normalize", "--format", "yaml", path)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !strings.Contains(output, "linear:") || !strings.Contains(output, "type: http") {
		t.Errorf("unexpected YAML output:\n%s", output)
	}
}

func TestNormalizeCommand_OtherClientRejected(t *testing.T) {
	path := writeOpenCodeConfig(t, `{"mcp": {}}`)

	_, err := executeCommand(t, "normalize", "--client", "cursor", path)
	if err == nil {
		t.Fatal("expected error for non-opencode client")
	}
	if !strings.Contains(err.Error(), "cursor") {
		t.Errorf("error should name the client: %v", err)
	}
}

func TestNormalizeCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "normalize", "/nonexistent/opencode.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNormalizeCommand_UnsupportedFormat(t *testing.T) {
	path := writeOpenCodeConfig(t, `{"mcp": {}}`)

	_, err := executeCommand(t, "normalize", "--format", "ini", path)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
