package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcliao/inkind/internal/model"
)

// SearchParams holds parameters for searching contributions.
type SearchParams struct {
	Query      string
	FiscalYear int
	Limit      int
}

// Search finds the latest contributions whose speaker, firm, engagement,
// economy, or category rationale contains the query substring.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Contribution, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "%" + p.Query + "%"

	where := []string{"c.deleted_at IS NULL"}
	var args []interface{}

	if p.FiscalYear > 0 {
		where = append(where, "c.fiscal_year = ?")
		args = append(args, p.FiscalYear)
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM contributions c
		INNER JOIN (
			SELECT engagement, speaker, MAX(version) AS max_ver
			FROM contributions WHERE deleted_at IS NULL
			GROUP BY engagement, speaker
		) latest ON c.engagement = latest.engagement AND c.speaker = latest.speaker AND c.version = latest.max_ver
		WHERE %s AND (c.speaker LIKE ? OR c.firm LIKE ? OR c.engagement LIKE ?
		              OR c.economy LIKE ? OR c.category_rationale LIKE ?)
		ORDER BY c.contribution_date DESC, c.created_at DESC
		LIMIT ?`, prefixed("c", selectColumns), strings.Join(where, " AND "))
	args = append(args, query, query, query, query, query, limit)

	return s.query(ctx, sql, args...)
}
