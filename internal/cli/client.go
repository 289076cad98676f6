// Package cli provides CLI-specific helpers for the mcpconf command.
package cli

import (
	"runtime"
	"strings"

	"github.com/thoreinstein/mcpconf/internal/catalog"
	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// ErrNoClientsAvailable is returned when no clients are detected.
var ErrNoClientsAvailable = errors.New("no clients available")

// DetectInstalled returns the descriptors of clients whose config file
// exists on this machine, in catalog order.
func DetectInstalled() []*schema.ClientDescriptor {
	var installed []*schema.ClientDescriptor
	for _, desc := range catalog.All() {
		if catalog.Installed(desc, runtime.GOOS) {
			installed = append(installed, desc)
		}
	}
	return installed
}

// ResolveClients returns descriptors for the given client ids.
// If ids is empty, returns all detected/installed clients.
// Returns an error if any id is invalid or if no clients are available.
func ResolveClients(ids []string) ([]*schema.ClientDescriptor, error) {
	if len(ids) == 0 {
		detected := DetectInstalled()
		if len(detected) == 0 {
			return nil, ErrNoClientsAvailable
		}
		return detected, nil
	}

	var invalid []string
	descs := make([]*schema.ClientDescriptor, 0, len(ids))

	for _, id := range ids {
		desc, err := catalog.Get(id)
		if err != nil {
			invalid = append(invalid, id)
			continue
		}
		descs = append(descs, desc)
	}

	if len(invalid) > 0 {
		return nil, errors.Wrapf(errors.ErrUnknownClient,
			"%s (valid: %s)",
			strings.Join(invalid, ", "),
			strings.Join(schema.KnownClientIDs(), ", "))
	}

	return descs, nil
}
