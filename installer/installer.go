// Package installer implements symlink-based shortcut installation for
// prompt names (§4.10), consumed by the CLI's enable/disable commands.
package installer

import (
	"context"

	"github.com/promptcmd/promptcmd/core"
)

// Installer installs and removes invocable shortcuts that point at a
// single shared binary (the promptcmd executable itself), named after the
// prompts they invoke.
type Installer interface {
	Install(ctx context.Context, name string) (string, error)
	Uninstall(ctx context.Context, name string) (string, error)
	IsInstalled(ctx context.Context, name string) (string, bool)
	List(ctx context.Context) (map[string]string, error)
}

func alreadyExists(name, path string) error {
	return core.NewError("installer.install", core.ErrInvalidInput,
		name+" is already installed at "+path, nil)
}

func notInstalled(name string) error {
	return core.NewError("installer.uninstall", core.ErrNotFound, name+" is not installed", nil)
}
