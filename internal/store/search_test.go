package store

import (
	"context"
	"testing"
)

func TestSearch_Basic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := record("APEC-DT-01", "Jane Smith", "1", "2025-11-05")
	a.CategoryRationale = "Chief Executive Officer of Acme"
	s.Put(ctx, a)
	b := record("APEC-DT-02", "Omar Haddad", "2", "2025-11-06")
	b.Firm = "Gulf Freight"
	b.Economy = "Chile"
	s.Put(ctx, b)
	s.Put(ctx, record("SCM-07", "Ken Ito", "3", "2025-05-01"))

	// Search by speaker
	results, err := s.Search(ctx, SearchParams{Query: "smith"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	// Search by engagement prefix
	results, _ = s.Search(ctx, SearchParams{Query: "APEC-DT"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Search by firm and economy
	results, _ = s.Search(ctx, SearchParams{Query: "freight"})
	if len(results) != 1 || results[0].Speaker != "Omar Haddad" {
		t.Fatalf("expected Omar Haddad, got %+v", results)
	}
	results, _ = s.Search(ctx, SearchParams{Query: "chile"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result for economy, got %d", len(results))
	}

	// Search by rationale
	results, _ = s.Search(ctx, SearchParams{Query: "Chief Executive"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result for rationale, got %d", len(results))
	}

	// With fiscal year filter
	results, _ = s.Search(ctx, SearchParams{Query: "acme", FiscalYear: 2025})
	if len(results) != 1 || results[0].Speaker != "Ken Ito" {
		t.Fatalf("expected Ken Ito in FY2025, got %+v", results)
	}

	// No results
	results, _ = s.Search(ctx, SearchParams{Query: "javascript"})
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_LatestVersionOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Put(ctx, record("WS-1", "Jane Smith", "1", "2025-11-05"))
	s.Put(ctx, record("WS-1", "Jane Smith", "2", "2025-11-05"))

	results, _ := s.Search(ctx, SearchParams{Query: "Jane"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Version != 2 {
		t.Errorf("expected version 2, got %d", results[0].Version)
	}
}
