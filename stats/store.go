// Package stats implements the statistics store the Load Balancer reads and
// the invocation driver writes to (§4.9): per-invocation token usage,
// aggregated into the summaries the weighted-deficit algorithm consumes.
package stats

import (
	"context"
	"time"
)

// Record is one logged invocation.
type Record struct {
	PromptName       string
	Provider         string
	Model            string
	Variant          string // "" if not a variant invocation
	Group            string // "" if not a group invocation
	PromptTokens     uint32
	CompletionTokens uint32
	Result           string
	Success          bool
	TimeTakenMillis  uint32
	Created          time.Time
}

// Filter narrows Summary to a subset of logged Records. A nil/empty field
// matches everything for that dimension.
type Filter struct {
	Provider *string
	Model    *string
	Variant  *string
	Group    *string
	Success  *bool
}

// Summary is one aggregated row grouped by (Provider, Model): the shape the
// Load Balancer's weighted-deficit calculation needs (§4.4).
type Summary struct {
	Provider         string
	Model            string
	Count            uint32
	PromptTokens     uint32
	CompletionTokens uint32
	TPS              uint32
}

// Store persists invocation records and serves the aggregated summaries the
// Load Balancer consumes.
type Store interface {
	Log(ctx context.Context, rec Record) error
	All(ctx context.Context) ([]Record, error)
	Summary(ctx context.Context, filter Filter) ([]Summary, error)
	Close() error
}
