package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/thoreinstein/mcpconf/internal/schema"
)

func TestSelectClient_EmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectClient(nil)
	if err == nil {
		t.Fatal("expected error for empty list")
	}
	if !strings.Contains(err.Error(), "no clients") {
		t.Errorf("expected ErrNoClients, got: %v", err)
	}
}

func TestSelectClient_SingleItem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	clients := []*schema.ClientDescriptor{
		{ID: "opencode", Name: "OpenCode"},
	}

	result, err := s.SelectClient(clients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != "opencode" {
		t.Errorf("expected 'opencode', got %q", result.ID)
	}
	// Should not prompt for single item
	if buf.Len() > 0 {
		t.Errorf("expected no output for single item, got: %s", buf.String())
	}
}

func TestSelectClient_ValidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		wantID string
	}{
		{
			name:   "explicit first",
			input:  "1\n",
			wantID: "claude-code",
		},
		{
			name:   "explicit second",
			input:  "2\n",
			wantID: "opencode",
		},
		{
			name:   "default on empty",
			input:  "\n",
			wantID: "claude-code",
		},
		{
			name:   "whitespace trimmed",
			input:  "  2  \n",
			wantID: "opencode",
		},
	}

	clients := []*schema.ClientDescriptor{
		{ID: "claude-code", Name: "Claude Code"},
		{ID: "opencode", Name: "OpenCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			result, err := s.SelectClient(clients)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.ID != tt.wantID {
				t.Errorf("expected id %q, got %q", tt.wantID, result.ID)
			}
		})
	}
}

func TestSelectClient_InvalidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "too low",
			input:   "0\n",
			wantErr: "out of range",
		},
		{
			name:    "too high",
			input:   "3\n",
			wantErr: "out of range",
		},
		{
			name:    "negative",
			input:   "-1\n",
			wantErr: "out of range",
		},
		{
			name:    "not a number",
			input:   "abc\n",
			wantErr: "not a number",
		},
	}

	clients := []*schema.ClientDescriptor{
		{ID: "claude-code", Name: "Claude Code"},
		{ID: "opencode", Name: "OpenCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			_, err := s.SelectClient(clients)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestSelectClient_Cancelled(t *testing.T) {
	t.Parallel()

	// Empty reader simulates EOF (Ctrl+D)
	var buf bytes.Buffer
	r := &eofReader{}
	s := NewSelectorWithIO(r, &buf)

	clients := []*schema.ClientDescriptor{
		{ID: "claude-code", Name: "Claude Code"},
		{ID: "opencode", Name: "OpenCode"},
	}

	_, err := s.SelectClient(clients)
	if err == nil {
		t.Fatal("expected error for EOF")
	}
	if !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("expected ErrSelectionCancelled, got: %v", err)
	}
}

func TestSelectClient_OutputFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("1\n"), &buf)

	clients := []*schema.ClientDescriptor{
		{ID: "claude-code", Name: "Claude Code"},
		{ID: "opencode", Name: "OpenCode"},
	}

	_, err := s.SelectClient(clients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	// Verify output format
	if !strings.Contains(output, "Multiple clients detected:") {
		t.Errorf("missing header in output: %s", output)
	}
	if !strings.Contains(output, "[1] Claude Code (claude-code)") {
		t.Errorf("missing first option in output: %s", output)
	}
	if !strings.Contains(output, "[2] OpenCode (opencode)") {
		t.Errorf("missing second option in output: %s", output)
	}
	if !strings.Contains(output, "Select [1]:") {
		t.Errorf("missing prompt in output: %s", output)
	}
}

// eofReader simulates immediate EOF (like Ctrl+D).
type eofReader struct{}

func (r *eofReader) Read(_ []byte) (int, error) {
	return 0, io.EOF
}
