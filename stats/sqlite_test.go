package stats

import (
	"context"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(context.Background(), SQLiteConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_LogAndAll(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	rec := Record{
		PromptName: "summarize", Provider: "openai", Model: "gpt4",
		PromptTokens: 10, CompletionTokens: 5, Success: true, TimeTakenMillis: 500,
	}
	if err := store.Log(ctx, rec); err != nil {
		t.Fatalf("log: %v", err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all[0].PromptName != "summarize" || all[0].Model != "gpt4" {
		t.Fatalf("unexpected records: %+v", all)
	}
}

func TestSQLiteStore_SummaryAggregatesAndComputesTPS(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	store.Log(ctx, Record{Provider: "openai", Model: "gpt4", PromptTokens: 10, CompletionTokens: 100, Success: true, TimeTakenMillis: 1000})
	store.Log(ctx, Record{Provider: "openai", Model: "gpt4", PromptTokens: 10, CompletionTokens: 100, Success: true, TimeTakenMillis: 1000})

	summaries, err := store.Summary(ctx, Filter{Provider: strp2("openai")})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("want 1 summary row, got %d", len(summaries))
	}
	s := summaries[0]
	if s.Count != 2 || s.CompletionTokens != 200 {
		t.Fatalf("unexpected aggregation: %+v", s)
	}
	// 200 completion tokens over 2000ms == 100 tokens/sec.
	if s.TPS != 100 {
		t.Fatalf("expected tps 100, got %d", s.TPS)
	}
}

func TestSQLiteStore_SummaryFilterBySuccess(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	store.Log(ctx, Record{Provider: "openai", Model: "gpt4", CompletionTokens: 10, Success: true})
	store.Log(ctx, Record{Provider: "openai", Model: "gpt4", CompletionTokens: 10, Success: false})

	success := true
	summaries, err := store.Summary(ctx, Filter{Provider: strp2("openai"), Success: &success})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Count != 1 {
		t.Fatalf("expected only the successful record counted, got %+v", summaries)
	}
}

func strp2(s string) *string { return &s }
