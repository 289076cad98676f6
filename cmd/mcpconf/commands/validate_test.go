package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateCommand_ValidServer(t *testing.T) {
	path := writeTempJSON(t, `{
		"transport": "http",
		"serverUrl": "https://mcp.linear.app/mcp"
	}`)

	output, err := executeCommand(t, "validate", "--type", "server", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(output, "Validation passed") {
		t.Errorf("expected pass message, got:\n%s", output)
	}
}

func TestValidateCommand_PlaceholderURLAccepted(t *testing.T) {
	path := writeTempJSON(t, `{
		"transport": "http",
		"serverUrl": "https://[instance]-be.example.com/mcp/[endpoint]"
	}`)

	_, err := executeCommand(t, "validate", "--type", "server", path)
	if err != nil {
		t.Errorf("placeholder template should validate: %v", err)
	}
}

func TestValidateCommand_InvalidServer(t *testing.T) {
	path := writeTempJSON(t, `{"transport": "carrier-pigeon"}`)

	output, err := executeCommand(t, "validate", "--type", "server", path)
	if err == nil {
		t.Fatal("expected error for invalid transport")
	}
	if !strings.Contains(output, "transport") {
		t.Errorf("report should name the transport field, got:\n%s", output)
	}
}

func TestValidateCommand_JSONReport(t *testing.T) {
	path := writeTempJSON(t, `{"transport": "stdio"}`)

	output, err := executeCommand(t, "validate", "--type", "server", "--format", "json", path)
	if err == nil {
		t.Fatal("expected error for stdio without credentials")
	}

	var report struct {
		Valid  bool `json:"valid"`
		Issues []struct {
			Path    []string `json:"path"`
			Message string   `json:"message"`
		} `json:"issues"`
	}
	if jsonErr := json.Unmarshal([]byte(output), &report); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", jsonErr, output)
	}
	if report.Valid {
		t.Error("report should be invalid")
	}
	if len(report.Issues) != 2 {
		t.Errorf("expected 2 issues (instance, token), got %d", len(report.Issues))
	}
	if len(report.Issues) > 0 && report.Issues[0].Path[0] != "instance" {
		t.Errorf("first issue should be instance, got %v", report.Issues[0].Path)
	}
}

func TestValidateCommand_ClientDescriptor(t *testing.T) {
	path := writeTempJSON(t, `{
		"id": "cursor",
		"name": "Cursor",
		"userConfigurable": true,
		"transports": ["stdio", "http"],
		"supportedPlatforms": ["darwin", "linux", "windows"],
		"configFormat": "json",
		"configStructure": {"serversKey": "mcpServers"},
		"supportedAuth": ["token"]
	}`)

	_, err := executeCommand(t, "validate", "--type", "client", path)
	if err != nil {
		t.Errorf("descriptor should validate: %v", err)
	}
}

func TestValidateCommand_UnknownClientID(t *testing.T) {
	path := writeTempJSON(t, `{
		"id": "notepad",
		"name": "Notepad",
		"userConfigurable": true,
		"transports": ["stdio"],
		"supportedPlatforms": ["windows"],
		"configFormat": "json",
		"configStructure": {"serversKey": "mcpServers"},
		"supportedAuth": []
	}`)

	output, err := executeCommand(t, "validate", "--type", "client", path)
	if err == nil {
		t.Fatal("expected error for unknown client id")
	}
	if !strings.Contains(output, "notepad") {
		t.Errorf("report should name the unknown id, got:\n%s", output)
	}
}

func TestValidateCommand_OAuth(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "empty object valid",
			content: `{}`,
			wantErr: false,
		},
		{
			name:    "dcr with patterns",
			content: `{"dcr": {"redirect_uri_patterns": ["http://localhost:*/callback"]}}`,
			wantErr: false,
		},
		{
			name:    "dcr with empty patterns",
			content: `{"dcr": {"redirect_uri_patterns": []}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempJSON(t, tt.content)
			_, err := executeCommand(t, "validate", "--type", "oauth", path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate oauth error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCommand_JSONCInput(t *testing.T) {
	path := writeTempJSON(t, `{
		// remote server
		"transport": "http",
		"serverUrl": "https://mcp.linear.app/mcp",
	}`)

	_, err := executeCommand(t, "validate", "--type", "server", path)
	if err != nil {
		t.Errorf("JSONC input should be tolerated: %v", err)
	}
}

func TestValidateCommand_UnknownType(t *testing.T) {
	path := writeTempJSON(t, `{}`)

	_, err := executeCommand(t, "validate", "--type", "banana", path)
	if err == nil {
		t.Fatal("expected error for unknown document type")
	}
	if !strings.Contains(err.Error(), "banana") {
		t.Errorf("error should name the bad type: %v", err)
	}
}

func TestValidateCommand_EmptyTransport(t *testing.T) {
	path := writeTempJSON(t, `{"transport": ""}`)

	output, err := executeCommand(t, "validate", "--type", "server", path)
	if err == nil {
		t.Fatal("expected error for empty transport")
	}
	if !strings.Contains(output, "transport") {
		t.Errorf("report should name the transport field, got:\n%s", output)
	}
}

func TestValidateCommand_UnknownReportFormat(t *testing.T) {
	path := writeTempJSON(t, `{"transport": "http", "serverUrl": "https://mcp.linear.app/mcp"}`)

	_, err := executeCommand(t, "validate", "--type", "server", "--format", "xml", path)
	if err == nil {
		t.Fatal("expected error for unknown report format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error should name the bad format: %v", err)
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "validate", "--type", "server", "/nonexistent/input.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
