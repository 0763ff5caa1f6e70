package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(engagement, speaker, amount, date string) model.Contribution {
	d, _ := time.Parse(time.DateOnly, date)
	fy := d.Year()
	if d.Month() >= time.October {
		fy++
	}
	return model.Contribution{
		Engagement:       engagement,
		Speaker:          speaker,
		Firm:             "Acme Corp",
		Economy:          "Peru",
		Category:         model.CategorySeniorSpecialist,
		Amount:           decimal.RequireFromString(amount),
		LaborValue:       decimal.RequireFromString(amount),
		TravelValue:      decimal.Zero,
		ContributionDate: d,
		FiscalYear:       fy,
		PolicyVersion:    "v1.0.0",
	}
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c, err := s.Put(ctx, record("WS-1", "Jane Smith", "917", "2025-11-05"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if c.Version != 1 {
		t.Errorf("expected version 1, got %d", c.Version)
	}
	if c.ID == "" {
		t.Error("expected non-empty ID")
	}
	if c.ResourceType != model.ResourceTypeInKind {
		t.Errorf("expected resource type %q, got %q", model.ResourceTypeInKind, c.ResourceType)
	}

	got, err := s.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Amount.StringFixed(2) != "917.00" {
		t.Errorf("expected amount 917.00, got %s", got[0].Amount)
	}
	if got[0].FiscalYear != 2026 {
		t.Errorf("expected fiscal year 2026, got %d", got[0].FiscalYear)
	}
	if got[0].ContributionDate.Format(time.DateOnly) != "2025-11-05" {
		t.Errorf("unexpected contribution date %s", got[0].ContributionDate)
	}
	if got[0].Firm != "Acme Corp" {
		t.Errorf("expected firm 'Acme Corp', got %q", got[0].Firm)
	}
}

func TestPutRejectsIncompleteRecords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	bad := record("", "Jane Smith", "1", "2025-11-05")
	if _, err := s.Put(ctx, bad); err == nil {
		t.Error("expected error for missing engagement")
	}

	bad = record("WS-1", "Jane Smith", "1", "2025-11-05")
	bad.Category = "Intern"
	if _, err := s.Put(ctx, bad); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestVersioning(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, record("WS-1", "Jane Smith", "100", "2025-11-05"))
	c2, _ := s.Put(ctx, record("WS-1", "Jane Smith", "200", "2025-11-05"))

	if c2.Version != 2 {
		t.Errorf("expected version 2, got %d", c2.Version)
	}
	if c2.Supersedes == "" {
		t.Error("expected supersedes to be set")
	}

	// Get latest
	got, _ := s.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith"})
	if got[0].Amount.StringFixed(2) != "200.00" {
		t.Errorf("expected '200.00', got %s", got[0].Amount)
	}

	// Get history
	hist, _ := s.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith", History: true})
	if len(hist) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(hist))
	}

	// Get specific version
	v1, _ := s.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith", Version: 1})
	if v1[0].Amount.StringFixed(2) != "100.00" {
		t.Errorf("expected '100.00', got %s", v1[0].Amount)
	}
}

func TestPutBatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := record("WS-1", "Jane Smith", "1427.25", "2025-11-05")
	b := record("WS-2", "Jane Smith", "1427.25", "2025-11-06")
	a.TripID, b.TripID = "trip-1", "trip-1"

	stored, err := s.PutBatch(ctx, []model.Contribution{a, b})
	if err != nil {
		t.Fatalf("put batch: %v", err)
	}
	if len(stored) != 2 || stored[0].ID == stored[1].ID {
		t.Fatalf("expected 2 distinct records, got %+v", stored)
	}

	byTrip, _ := s.List(ctx, ListParams{TripID: "trip-1"})
	if len(byTrip) != 2 {
		t.Errorf("expected 2 records for trip, got %d", len(byTrip))
	}
}

func TestPutBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	good := record("WS-1", "Jane Smith", "1", "2025-11-05")
	bad := record("WS-2", "", "1", "2025-11-05")
	if _, err := s.PutBatch(ctx, []model.Contribution{good, bad}); err == nil {
		t.Fatal("expected error")
	}

	all, _ := s.List(ctx, ListParams{})
	if len(all) != 0 {
		t.Errorf("expected nothing stored, got %d", len(all))
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, record("WS-1", "Jane Smith", "1", "2025-11-05"))
	s.Put(ctx, record("WS-1", "Omar Haddad", "2", "2025-11-05"))
	s.Put(ctx, record("WS-2", "Jane Smith", "3", "2025-09-10"))

	// List all
	all, _ := s.List(ctx, ListParams{})
	if len(all) != 3 {
		t.Errorf("expected 3, got %d", len(all))
	}

	// List by engagement
	ws1, _ := s.List(ctx, ListParams{Engagement: "WS-1"})
	if len(ws1) != 2 {
		t.Errorf("expected 2, got %d", len(ws1))
	}

	// List by fiscal year
	fy25, _ := s.List(ctx, ListParams{FiscalYear: 2025})
	if len(fy25) != 1 {
		t.Errorf("expected 1 in FY2025, got %d", len(fy25))
	}

	// Firm filter ignores case
	firm, _ := s.List(ctx, ListParams{Firm: "acme corp"})
	if len(firm) != 3 {
		t.Errorf("expected 3 for firm, got %d", len(firm))
	}

	limited, _ := s.List(ctx, ListParams{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected 2 with limit, got %d", len(limited))
	}
}

func TestListShowsLatestVersion(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, record("WS-1", "Jane Smith", "100", "2025-11-05"))
	s.Put(ctx, record("WS-1", "Jane Smith", "200", "2025-11-05"))

	list, _ := s.List(ctx, ListParams{Engagement: "WS-1"})
	if len(list) != 1 {
		t.Fatalf("expected 1 (latest only), got %d", len(list))
	}
	if list[0].Amount.StringFixed(2) != "200.00" {
		t.Errorf("expected latest '200.00', got %s", list[0].Amount)
	}
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, record("WS-1", "Jane Smith", "1", "2025-11-05"))
	if err := s.Rm(ctx, RmParams{Engagement: "WS-1", Speaker: "Jane Smith"}); err != nil {
		t.Fatalf("rm: %v", err)
	}

	if _, err := s.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith"}); err == nil {
		t.Error("expected error after soft delete")
	}

	// Row still exists for audit
	st, _ := s.Stats(ctx, "")
	if st.TotalRecords != 1 || st.ActiveContributions != 0 {
		t.Errorf("expected 1 total / 0 active, got %d / %d", st.TotalRecords, st.ActiveContributions)
	}
}

func TestSoftDeleteLatestRevealsPrevious(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, record("WS-1", "Jane Smith", "100", "2025-11-05"))
	s.Put(ctx, record("WS-1", "Jane Smith", "200", "2025-11-05"))
	s.Rm(ctx, RmParams{Engagement: "WS-1", Speaker: "Jane Smith"})

	got, err := s.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Amount.StringFixed(2) != "100.00" {
		t.Errorf("expected previous version, got %s", got[0].Amount)
	}
}

func TestHardDeleteAllVersions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, record("WS-1", "Jane Smith", "100", "2025-11-05"))
	s.Put(ctx, record("WS-1", "Jane Smith", "200", "2025-11-05"))
	if err := s.Rm(ctx, RmParams{Engagement: "WS-1", Speaker: "Jane Smith", AllVersions: true, Hard: true}); err != nil {
		t.Fatalf("rm: %v", err)
	}

	st, _ := s.Stats(ctx, "")
	if st.TotalRecords != 0 {
		t.Errorf("expected 0 rows after hard delete, got %d", st.TotalRecords)
	}

	if err := s.Rm(ctx, RmParams{Engagement: "WS-1", Speaker: "Jane Smith", AllVersions: true}); err == nil {
		t.Error("expected not found error")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "stats.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	a := record("WS-1", "Jane Smith", "1427.25", "2025-11-05")
	a.LaborValue = decimal.RequireFromString("458.50")
	a.TravelValue = decimal.RequireFromString("968.75")
	a.TripID = "trip-1"
	s.Put(ctx, a)
	s.Put(ctx, record("WS-2", "Omar Haddad", "0.10", "2025-12-01"))
	s.Put(ctx, record("WS-3", "Ken Ito", "0.20", "2025-06-01"))

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.DBPath != dbPath {
		t.Errorf("expected db path %q, got %q", dbPath, st.DBPath)
	}
	if st.Engagements != 3 || st.Trips != 1 {
		t.Errorf("expected 3 engagements / 1 trip, got %d / %d", st.Engagements, st.Trips)
	}
	if len(st.FiscalYears) != 2 {
		t.Fatalf("expected 2 fiscal years, got %d", len(st.FiscalYears))
	}
	fy26 := st.FiscalYears[0]
	if fy26.FiscalYear != 2026 || fy26.Contributions != 2 {
		t.Errorf("unexpected FY2026 stats: %+v", fy26)
	}
	if fy26.Total.StringFixed(2) != "1427.35" {
		t.Errorf("expected FY2026 total 1427.35, got %s", fy26.Total)
	}
	if fy26.Travel.StringFixed(2) != "968.75" {
		t.Errorf("expected FY2026 travel 968.75, got %s", fy26.Travel)
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	src.Put(ctx, record("WS-1", "Jane Smith", "100", "2025-11-05"))
	src.Put(ctx, record("WS-1", "Jane Smith", "200", "2025-11-05"))
	src.Put(ctx, record("WS-2", "Omar Haddad", "300", "2025-11-06"))

	exported, err := src.ExportAll(ctx, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 3 {
		t.Fatalf("expected 3 exported versions, got %d", len(exported))
	}

	ws1, _ := src.ExportAll(ctx, "WS-1")
	if len(ws1) != 2 {
		t.Errorf("expected 2 for WS-1, got %d", len(ws1))
	}

	dst := newTestStore(t)
	n, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 imported, got %d", n)
	}

	got, _ := dst.Get(ctx, GetParams{Engagement: "WS-1", Speaker: "Jane Smith"})
	if got[0].Amount.StringFixed(2) != "200.00" || got[0].Version != 2 {
		t.Errorf("expected latest 200.00 at version 2, got %s v%d", got[0].Amount, got[0].Version)
	}
}

func TestNewSQLiteStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	s, err := NewSQLiteStore(filepath.Join(dir, "x.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected dir to exist: %v", err)
	}
}
