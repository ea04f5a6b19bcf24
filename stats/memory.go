package stats

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store, used by tests and by the Load
// Balancer's own unit tests instead of a real database file.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemory returns an empty MemoryStore.
func NewMemory() *MemoryStore { return &MemoryStore{} }

// Log implements Store.
func (m *MemoryStore) Log(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.Created.IsZero() {
		rec.Created = time.Now().UTC()
	}
	m.records = append(m.records, rec)
	return nil
}

// All implements Store.
func (m *MemoryStore) All(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Summary implements Store.
func (m *MemoryStore) Summary(_ context.Context, filter Filter) ([]Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	type key struct{ provider, model string }
	agg := map[key]*Summary{}
	timeTaken := map[key]uint64{}
	var order []key

	for _, r := range m.records {
		if !matches(r, filter) {
			continue
		}
		k := key{r.Provider, r.Model}
		s, ok := agg[k]
		if !ok {
			s = &Summary{Provider: r.Provider, Model: r.Model}
			agg[k] = s
			order = append(order, k)
		}
		s.Count++
		s.PromptTokens += r.PromptTokens
		s.CompletionTokens += r.CompletionTokens
		timeTaken[k] += uint64(r.TimeTakenMillis)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		s := *agg[k]
		if ms := timeTaken[k]; ms > 0 {
			s.TPS = uint32(uint64(s.CompletionTokens) * 1000 / ms)
		}
		out = append(out, s)
	}
	return out, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }

func matches(r Record, f Filter) bool {
	if f.Provider != nil && r.Provider != *f.Provider {
		return false
	}
	if f.Model != nil && r.Model != *f.Model {
		return false
	}
	if f.Variant != nil && r.Variant != *f.Variant {
		return false
	}
	if f.Group != nil && r.Group != *f.Group {
		return false
	}
	if f.Success != nil && r.Success != *f.Success {
		return false
	}
	return true
}

var _ Store = (*MemoryStore)(nil)
