// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// Sentinel errors for client selection.
var (
	ErrNoClients          = errors.New("no clients to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive client selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectClient prompts the user to choose from a list of client descriptors.
//
// Returns:
//   - ErrNoClients if the list is empty
//   - The descriptor if only one exists (auto-selects without prompting)
//   - The selected descriptor based on user input
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) SelectClient(clients []*schema.ClientDescriptor) (*schema.ClientDescriptor, error) {
	if len(clients) == 0 {
		return nil, ErrNoClients
	}

	// Auto-select if only one client
	if len(clients) == 1 {
		return clients[0], nil
	}

	// Display selection prompt
	fmt.Fprintf(s.writer, "Multiple clients detected:\n")
	for i, c := range clients {
		fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, c.Name, c.ID)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	// Read user input
	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)

	// Default to first option if empty
	if input == "" {
		return clients[0], nil
	}

	// Parse selection number
	selection, err := strconv.Atoi(input)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// Validate range (1-indexed)
	if selection < 1 || selection > len(clients) {
		return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(clients))
	}

	return clients[selection-1], nil
}

// SelectClientDefault is a convenience function that uses stdin/stdout.
func SelectClientDefault(clients []*schema.ClientDescriptor) (*schema.ClientDescriptor, error) {
	return NewSelector().SelectClient(clients)
}
