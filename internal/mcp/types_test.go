package mcp

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestServerRecordTransportPredicates(t *testing.T) {
	local := ServerRecord{Type: TransportStdio, Command: "npx"}
	if !local.IsLocal() || local.IsRemote() {
		t.Errorf("stdio record predicates wrong: %+v", local)
	}

	remote := ServerRecord{Type: TransportHTTP, URL: "https://mcp.linear.app/mcp"}
	if !remote.IsRemote() || remote.IsLocal() {
		t.Errorf("http record predicates wrong: %+v", remote)
	}

	var zero ServerRecord
	if zero.IsLocal() || zero.IsRemote() {
		t.Errorf("zero record should be neither: %+v", zero)
	}
}

func TestServerRecordJSONOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(ServerRecord{
		Type: TransportHTTP,
		URL:  "https://mcp.linear.app/mcp",
	})
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	for _, field := range []string{"command", "args", "env", "headers"} {
		if strings.Contains(out, field) {
			t.Errorf("empty %q should be omitted: %s", field, out)
		}
	}
}
