package builder

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/mcpconf/internal/schema"
)

// Sentinel errors for registry operations.
var (
	// ErrBuilderAlreadyRegistered is returned when attempting to register a
	// factory for a client id that already has one.
	ErrBuilderAlreadyRegistered = errors.New("builder already registered")

	// ErrInvalidClientID is returned when attempting to register a factory
	// under an id outside the known-client enumeration.
	ErrInvalidClientID = errors.New("invalid client id")

	// ErrNoBuilder is returned when no factory is registered for a client id.
	ErrNoBuilder = errors.New("no builder registered for client")
)

// Factory constructs a builder variant from construction parameters.
type Factory func(p Params) (Builder, error)

// registry maps client ids to builder factories. It is safe for concurrent
// use; registration normally happens from package init functions.
var registry = struct {
	mu        sync.RWMutex
	factories map[string]Factory
}{
	factories: make(map[string]Factory),
}

// Register adds a builder factory for a client id.
// Returns an error if:
//   - The id is outside the known-client enumeration (per schema.ValidClientID)
//   - A factory is already registered for the id
func Register(clientID string, f Factory) error {
	if !schema.ValidClientID(clientID) {
		return errors.Wrapf(ErrInvalidClientID, "%q", clientID)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.factories[clientID]; exists {
		return errors.Wrapf(ErrBuilderAlreadyRegistered, "%q", clientID)
	}

	registry.factories[clientID] = f
	return nil
}

// New constructs the builder variant registered for the descriptor's client
// id. Returns ErrNoBuilder when the client family has no variant.
func New(p Params) (Builder, error) {
	if p.Descriptor == nil {
		return nil, ErrNilDescriptor
	}

	registry.mu.RLock()
	factory, ok := registry.factories[p.Descriptor.ID]
	registry.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrNoBuilder, "%q", p.Descriptor.ID)
	}
	return factory(p)
}

// Registered returns the client ids that have a builder variant, in the
// deterministic order of schema.KnownClientIDs.
func Registered() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	var ids []string
	for _, id := range schema.KnownClientIDs() {
		if _, ok := registry.factories[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
