package installer

import (
	"context"
	"sync"
)

// Memory is an in-process Installer, used by tests.
type Memory struct {
	mu        sync.Mutex
	installed map[string]bool
}

// NewMemory returns an empty Memory installer.
func NewMemory() *Memory { return &Memory{installed: map[string]bool{}} }

// Install implements Installer.
func (m *Memory) Install(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.installed[name] {
		return "", alreadyExists(name, name)
	}
	m.installed[name] = true
	return name, nil
}

// Uninstall implements Installer.
func (m *Memory) Uninstall(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.installed[name] {
		return "", notInstalled(name)
	}
	delete(m.installed, name)
	return name, nil
}

// IsInstalled implements Installer.
func (m *Memory) IsInstalled(_ context.Context, name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return name, m.installed[name]
}

// List implements Installer.
func (m *Memory) List(_ context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.installed))
	for k := range m.installed {
		out[k] = k
	}
	return out, nil
}

var _ Installer = (*Memory)(nil)
