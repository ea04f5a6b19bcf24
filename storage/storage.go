// Package storage implements the prompt file store (§4.8): a key→bytes
// repository of ".prompt" files, consumed by the CLI's cat/list/run
// commands.
package storage

import (
	"context"
	"fmt"

	"github.com/promptcmd/promptcmd/core"
)

// Store is a key→bytes repository of dotprompt files, keyed by prompt name
// (without the ".prompt" extension).
type Store interface {
	// List returns every stored prompt name mapped to a human-readable
	// location string (a filesystem path, or the name itself for
	// in-memory stores).
	List(ctx context.Context) (map[string]string, error)
	// Exists reports whether name is stored, returning its location.
	Exists(ctx context.Context, name string) (string, bool)
	// Load returns the location and raw bytes of the named prompt.
	Load(ctx context.Context, name string) (location string, data []byte, err error)
	// Store writes data under name, returning its location.
	Store(ctx context.Context, name string, data []byte) (location string, err error)
}

func notFoundErr(name string) error {
	return core.NewError("storage.load", core.ErrNotFound, fmt.Sprintf("no prompt named %q", name), nil)
}
