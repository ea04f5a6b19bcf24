package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const installerID = "symlink"

// SymlinkInstaller installs prompt shortcuts as symlinks (hardlinks on
// Windows, or as a fallback when the install directory's filesystem
// doesn't support symlinks to target) pointing at a single shared target
// binary.
type SymlinkInstaller struct {
	target     string
	installDir string
}

// NewSymlinkInstaller returns an Installer that creates shortcuts under
// installDir/symlink/<name>, all pointing at target.
func NewSymlinkInstaller(target, installDir string) *SymlinkInstaller {
	return &SymlinkInstaller{target: target, installDir: filepath.Join(installDir, installerID)}
}

func (s *SymlinkInstaller) resolve(name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(s.installDir, name)
}

// Install implements Installer.
func (s *SymlinkInstaller) Install(_ context.Context, name string) (string, error) {
	installPath := s.resolve(name)

	if _, err := os.Lstat(installPath); err == nil {
		return "", alreadyExists(name, installPath)
	}

	if err := os.MkdirAll(s.installDir, 0o755); err != nil {
		return "", fmt.Errorf("installer: creating %s: %w", s.installDir, err)
	}

	if runtime.GOOS == "windows" {
		if err := os.Link(s.target, installPath); err != nil {
			return "", fmt.Errorf("installer: hard-linking %s: %w", installPath, err)
		}
		return installPath, nil
	}

	if err := os.Symlink(s.target, installPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", alreadyExists(name, installPath)
		}
		// Symlink creation can fail across filesystem boundaries (EXDEV);
		// fall back to a hard link in that case.
		if hErr := os.Link(s.target, installPath); hErr == nil {
			return installPath, nil
		}
		return "", fmt.Errorf("installer: symlinking %s: %w", installPath, err)
	}
	return installPath, nil
}

// Uninstall implements Installer.
func (s *SymlinkInstaller) Uninstall(_ context.Context, name string) (string, error) {
	installPath := s.resolve(name)
	if _, err := os.Lstat(installPath); err != nil {
		return "", notInstalled(name)
	}
	if err := os.Remove(installPath); err != nil {
		return "", fmt.Errorf("installer: removing %s: %w", installPath, err)
	}
	return installPath, nil
}

// IsInstalled implements Installer.
func (s *SymlinkInstaller) IsInstalled(_ context.Context, name string) (string, bool) {
	installPath := s.resolve(name)
	if _, err := os.Lstat(installPath); err != nil {
		return "", false
	}
	return installPath, true
}

// List implements Installer: only shortcuts whose link target matches
// s.target are reported (stray files in the install directory are
// ignored).
func (s *SymlinkInstaller) List(_ context.Context) (map[string]string, error) {
	result := map[string]string{}

	if _, err := os.Stat(s.installDir); os.IsNotExist(err) {
		return result, nil
	}

	entries, err := os.ReadDir(s.installDir)
	if err != nil {
		return nil, fmt.Errorf("installer: reading %s: %w", s.installDir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(s.installDir, entry.Name())
		actualTarget, err := os.Readlink(path)
		if err != nil || actualTarget != s.target {
			continue
		}
		name := entry.Name()
		if runtime.GOOS == "windows" {
			name = name[:len(name)-len(".exe")]
		}
		result[name] = path
	}
	return result, nil
}

var _ Installer = (*SymlinkInstaller)(nil)
