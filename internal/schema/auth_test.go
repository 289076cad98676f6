package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOAuth(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		wantDCR bool
		wantErr string
	}{
		{
			name: "empty object",
			raw:  map[string]any{},
		},
		{
			name: "dcr with patterns",
			raw: map[string]any{
				"dcr": map[string]any{
					"redirect_uri_patterns": []any{"http://localhost:*/callback"},
				},
			},
			wantDCR: true,
		},
		{
			name: "wildcard-only pattern",
			raw: map[string]any{
				"dcr": map[string]any{
					"redirect_uri_patterns": []any{"*"},
				},
			},
			wantDCR: true,
		},
		{
			name: "dcr missing patterns",
			raw: map[string]any{
				"dcr": map[string]any{},
			},
			wantErr: "dcr.redirect_uri_patterns: required",
		},
		{
			name: "dcr with empty patterns",
			raw: map[string]any{
				"dcr": map[string]any{
					"redirect_uri_patterns": []any{},
				},
			},
			wantErr: "at least one pattern",
		},
		{
			name: "mistyped pattern element",
			raw: map[string]any{
				"dcr": map[string]any{
					"redirect_uri_patterns": []any{42},
				},
			},
			wantErr: "expected string, got number",
		},
		{
			name:    "not an object",
			raw:     "oauth",
			wantErr: "expected object, got string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oauth, err := ParseOAuth(tt.raw)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseOAuth() error = %v", err)
			}
			if (oauth.DCR != nil) != tt.wantDCR {
				t.Errorf("DCR = %+v, wantDCR = %v", oauth.DCR, tt.wantDCR)
			}
		})
	}
}

func TestMustOAuth(t *testing.T) {
	require.NotPanics(t, func() {
		oauth := MustOAuth(map[string]any{})
		require.Nil(t, oauth.DCR)
	})

	require.Panics(t, func() {
		MustOAuth(map[string]any{
			"dcr": map[string]any{"redirect_uri_patterns": []any{}},
		})
	})
}

func TestValidAuthMode(t *testing.T) {
	for _, mode := range AuthModes() {
		if !ValidAuthMode(string(mode)) {
			t.Errorf("ValidAuthMode(%q) = false", mode)
		}
	}
	if ValidAuthMode("kerberos") {
		t.Error("ValidAuthMode(kerberos) = true")
	}
}
