package store

import (
	"context"

	"github.com/rcliao/inkind/internal/model"
)

// ExportAll returns all non-deleted versions, optionally filtered by engagement.
func (s *SQLiteStore) ExportAll(ctx context.Context, engagement string) ([]model.Contribution, error) {
	query := `SELECT ` + selectColumns + ` FROM contributions WHERE deleted_at IS NULL`
	var args []interface{}

	if engagement != "" {
		query += ` AND engagement = ?`
		args = append(args, engagement)
	}
	query += ` ORDER BY engagement, speaker, version`

	return s.query(ctx, query, args...)
}

// Import stores contributions from an export in one transaction. Each record
// is re-versioned against what is already stored.
func (s *SQLiteStore) Import(ctx context.Context, records []model.Contribution) (int, error) {
	stored, err := s.PutBatch(ctx, records)
	if err != nil {
		return 0, err
	}
	return len(stored), nil
}
