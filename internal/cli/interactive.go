package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/mcpconf/internal/catalog"
	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// ErrPickCancelled is returned when the user aborts an interactive pick.
var ErrPickCancelled = errors.New("selection cancelled")

// PickClient runs a fuzzy finder over the given descriptors and returns the
// chosen one. Requires a TTY; use prompt.SelectClient when stdin is piped.
func PickClient(descs []*schema.ClientDescriptor) (*schema.ClientDescriptor, error) {
	if len(descs) == 0 {
		return nil, ErrNoClientsAvailable
	}

	idx, err := fuzzyfinder.Find(
		descs,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", descs[i].Name, descs[i].ID)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			d := descs[i]
			transports := make([]string, len(d.Transports))
			for j, t := range d.Transports {
				transports[j] = string(t)
			}
			return fmt.Sprintf("Client: %s\nID: %s\nTransports: %s\nFormat: %s\nConfig: %s\n\n%s",
				d.Name,
				d.ID,
				strings.Join(transports, ", "),
				d.ConfigFormat,
				catalog.ConfigPathFor(d, runtime.GOOS),
				d.Description,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrPickCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return descs[idx], nil
}
