package store

import (
	"context"
	"os"
	"sort"

	"github.com/shopspring/decimal"
)

// Stats holds database statistics.
type Stats struct {
	DBPath              string            `json:"db_path"`
	DBSizeBytes         int64             `json:"db_size_bytes"`
	TotalRecords        int               `json:"total_records"`
	ActiveContributions int               `json:"active_contributions"`
	Engagements         int               `json:"engagements"`
	Trips               int               `json:"trips"`
	FiscalYears         []FiscalYearStats `json:"fiscal_years"`
}

// FiscalYearStats holds per-fiscal-year totals over the latest versions.
type FiscalYearStats struct {
	FiscalYear    int             `json:"fiscal_year"`
	Contributions int             `json:"contributions"`
	Labor         decimal.Decimal `json:"labor"`
	Travel        decimal.Decimal `json:"travel"`
	Total         decimal.Decimal `json:"total"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contributions`).Scan(&st.TotalRecords)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT engagement) FROM contributions WHERE deleted_at IS NULL`).Scan(&st.Engagements)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT trip_id) FROM contributions WHERE deleted_at IS NULL AND trip_id IS NOT NULL`).Scan(&st.Trips)

	// Amounts are stored as exact decimal text, so sum them here rather than in SQL.
	latest, err := s.List(ctx, ListParams{Limit: -1})
	if err != nil {
		return st, err
	}
	st.ActiveContributions = len(latest)

	byYear := map[int]*FiscalYearStats{}
	for _, c := range latest {
		fy, ok := byYear[c.FiscalYear]
		if !ok {
			fy = &FiscalYearStats{FiscalYear: c.FiscalYear}
			byYear[c.FiscalYear] = fy
		}
		fy.Contributions++
		fy.Labor = fy.Labor.Add(c.LaborValue)
		fy.Travel = fy.Travel.Add(c.TravelValue)
		fy.Total = fy.Total.Add(c.Amount)
	}
	for _, fy := range byYear {
		st.FiscalYears = append(st.FiscalYears, *fy)
	}
	sort.Slice(st.FiscalYears, func(i, j int) bool {
		return st.FiscalYears[i].FiscalYear > st.FiscalYears[j].FiscalYear
	})

	return st, nil
}
