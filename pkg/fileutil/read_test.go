package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/mcpconf/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"small file", 100, false},
		{"exact limit", MaxFileSize, false},
		{"too large", MaxFileSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}

			// Write dummy data
			if err := f.Truncate(tt.size); err != nil {
				t.Fatal(err)
			}
			f.Close()

			_, err = ReadFileWithLimit(path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFileWithLimit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrFileTooLarge) {
				t.Errorf("expected ErrFileTooLarge, got %v", err)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"mcpServers":{"linear":{"url":"https://mcp.linear.app/mcp"}}}`), 0644); err != nil {
		t.Fatal(err)
	}

	var got map[string]map[string]map[string]string
	if err := ReadJSON(path, &got); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got["mcpServers"]["linear"]["url"] != "https://mcp.linear.app/mcp" {
		t.Errorf("unexpected decode result: %v", got)
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"mcpServers":`), 0644); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := ReadJSON(path, &got); err == nil {
		t.Error("ReadJSON() expected error for truncated JSON")
	}
}

func TestReadJSONC(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "line comments",
			input: `{
	// servers live here
	"servers": {"linear": {"url": "https://mcp.linear.app/mcp"}}
}`,
		},
		{
			name: "block comments and trailing comma",
			input: `{
	/* user-managed section */
	"servers": {"linear": {"url": "https://mcp.linear.app/mcp"},},
}`,
		},
		{
			name:  "plain JSON",
			input: `{"servers":{"linear":{"url":"https://mcp.linear.app/mcp"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "mcp.json")
			if err := os.WriteFile(path, []byte(tt.input), 0644); err != nil {
				t.Fatal(err)
			}

			var got map[string]map[string]map[string]string
			if err := ReadJSONC(path, &got); err != nil {
				t.Fatalf("ReadJSONC() error = %v", err)
			}
			if got["servers"]["linear"]["url"] != "https://mcp.linear.app/mcp" {
				t.Errorf("unexpected decode result: %v", got)
			}
		})
	}
}
