package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/rcliao/inkind/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contributions (
		id                  TEXT PRIMARY KEY,
		engagement          TEXT NOT NULL,
		speaker             TEXT NOT NULL,
		firm                TEXT,
		economy             TEXT,
		category            TEXT NOT NULL,
		category_rationale  TEXT,
		amount              TEXT NOT NULL,
		labor_value         TEXT NOT NULL,
		travel_value        TEXT NOT NULL,
		contribution_date   TEXT NOT NULL,
		fiscal_year         INTEGER NOT NULL,
		resource_type       TEXT NOT NULL DEFAULT 'In-kind',
		trip_id             TEXT,
		policy_version      TEXT NOT NULL,
		documentation_links TEXT,
		version             INTEGER NOT NULL DEFAULT 1,
		supersedes          TEXT,
		created_at          TEXT NOT NULL,
		deleted_at          TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_contrib_engagement_speaker ON contributions(engagement, speaker);
	CREATE INDEX IF NOT EXISTS idx_contrib_fiscal_year ON contributions(fiscal_year);
	CREATE INDEX IF NOT EXISTS idx_contrib_trip ON contributions(trip_id);
	CREATE INDEX IF NOT EXISTS idx_contrib_created ON contributions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_contrib_deleted ON contributions(deleted_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

const selectColumns = `id, engagement, speaker, firm, economy, category, category_rationale,
	amount, labor_value, travel_value, contribution_date, fiscal_year, resource_type,
	trip_id, policy_version, documentation_links, version, supersedes, created_at, deleted_at`

func (s *SQLiteStore) Put(ctx context.Context, c model.Contribution) (*model.Contribution, error) {
	out, err := s.PutBatch(ctx, []model.Contribution{c})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *SQLiteStore) PutBatch(ctx context.Context, cs []model.Contribution) ([]model.Contribution, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	out := make([]model.Contribution, 0, len(cs))
	for _, c := range cs {
		stored, err := s.putTx(ctx, tx, c, now)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) putTx(ctx context.Context, tx *sql.Tx, c model.Contribution, now time.Time) (model.Contribution, error) {
	if strings.TrimSpace(c.Engagement) == "" || strings.TrimSpace(c.Speaker) == "" {
		return c, fmt.Errorf("engagement and speaker are required")
	}
	if !model.ValidCategories[c.Category] {
		return c, fmt.Errorf("invalid category %q", c.Category)
	}
	if c.ResourceType == "" {
		c.ResourceType = model.ResourceTypeInKind
	}

	c.ID = s.newID()
	c.CreatedAt = now
	c.DeletedAt = nil

	// Check for existing latest version
	var prevID string
	var prevVersion int
	err := tx.QueryRowContext(ctx,
		`SELECT id, version FROM contributions
		 WHERE engagement = ? AND speaker = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, c.Engagement, c.Speaker).Scan(&prevID, &prevVersion)

	c.Version = 1
	c.Supersedes = ""
	if err == nil {
		c.Version = prevVersion + 1
		c.Supersedes = prevID
	} else if !errors.Is(err, sql.ErrNoRows) {
		return c, fmt.Errorf("lookup previous version: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO contributions (`+selectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		c.ID, c.Engagement, c.Speaker, nullable(c.Firm), nullable(c.Economy), string(c.Category),
		nullable(c.CategoryRationale), c.Amount.StringFixed(2), c.LaborValue.StringFixed(2),
		c.TravelValue.StringFixed(2), c.ContributionDate.Format(time.DateOnly), c.FiscalYear,
		c.ResourceType, nullable(c.TripID), c.PolicyVersion, nullable(c.DocumentationLinks),
		c.Version, nullable(c.Supersedes), now.Format(time.RFC3339))
	if err != nil {
		return c, fmt.Errorf("insert contribution: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) ([]model.Contribution, error) {
	var query string
	var args []interface{}

	if p.History {
		query = `SELECT ` + selectColumns + ` FROM contributions
				 WHERE engagement = ? AND speaker = ? AND deleted_at IS NULL
				 ORDER BY version DESC`
		args = []interface{}{p.Engagement, p.Speaker}
	} else if p.Version > 0 {
		query = `SELECT ` + selectColumns + ` FROM contributions
				 WHERE engagement = ? AND speaker = ? AND version = ? AND deleted_at IS NULL
				 LIMIT 1`
		args = []interface{}{p.Engagement, p.Speaker, p.Version}
	} else {
		query = `SELECT ` + selectColumns + ` FROM contributions
				 WHERE engagement = ? AND speaker = ? AND deleted_at IS NULL
				 ORDER BY version DESC LIMIT 1`
		args = []interface{}{p.Engagement, p.Speaker}
	}

	records, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("contribution not found: %s/%s", p.Engagement, p.Speaker)
	}
	return records, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Contribution, error) {
	limit := p.Limit
	if limit == 0 {
		limit = 50
	}

	where := []string{"c.deleted_at IS NULL"}
	var args []interface{}

	if p.Engagement != "" {
		where = append(where, "c.engagement = ?")
		args = append(args, p.Engagement)
	}
	if p.FiscalYear > 0 {
		where = append(where, "c.fiscal_year = ?")
		args = append(args, p.FiscalYear)
	}
	if p.Firm != "" {
		where = append(where, "c.firm = ? COLLATE NOCASE")
		args = append(args, p.Firm)
	}
	if p.Economy != "" {
		where = append(where, "c.economy = ? COLLATE NOCASE")
		args = append(args, p.Economy)
	}
	if p.TripID != "" {
		where = append(where, "c.trip_id = ?")
		args = append(args, p.TripID)
	}

	// Only the latest version of each engagement+speaker
	query := fmt.Sprintf(`
		SELECT %s
		FROM contributions c
		INNER JOIN (
			SELECT engagement, speaker, MAX(version) AS max_ver
			FROM contributions WHERE deleted_at IS NULL
			GROUP BY engagement, speaker
		) latest ON c.engagement = latest.engagement AND c.speaker = latest.speaker AND c.version = latest.max_ver
		WHERE %s
		ORDER BY c.contribution_date DESC, c.created_at DESC
		LIMIT ?`, prefixed("c", selectColumns), strings.Join(where, " AND "))
	args = append(args, limit)

	return s.query(ctx, query, args...)
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		if p.AllVersions {
			res, err := s.db.ExecContext(ctx,
				`DELETE FROM contributions WHERE engagement = ? AND speaker = ?`, p.Engagement, p.Speaker)
			if err != nil {
				return err
			}
			return requireAffected(res, p)
		}
		id, err := s.latestID(ctx, p.Engagement, p.Speaker)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `DELETE FROM contributions WHERE id = ?`, id)
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.AllVersions {
		res, err := s.db.ExecContext(ctx,
			`UPDATE contributions SET deleted_at = ? WHERE engagement = ? AND speaker = ? AND deleted_at IS NULL`,
			now, p.Engagement, p.Speaker)
		if err != nil {
			return err
		}
		return requireAffected(res, p)
	}

	// Soft-delete latest version only
	id, err := s.latestID(ctx, p.Engagement, p.Speaker)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE contributions SET deleted_at = ? WHERE id = ?`, now, id)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) latestID(ctx context.Context, engagement, speaker string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM contributions WHERE engagement = ? AND speaker = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, engagement, speaker).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("contribution not found: %s/%s", engagement, speaker)
	}
	return id, nil
}

func requireAffected(res sql.Result, p RmParams) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("contribution not found: %s/%s", p.Engagement, p.Speaker)
	}
	return nil
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...interface{}) ([]model.Contribution, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Contribution
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanContribution(row scanner) (model.Contribution, error) {
	var c model.Contribution
	var firm, economy, rationale, tripID, docs, supersedes, deletedAt sql.NullString
	var category, amount, labor, travel, contributionDate, createdAt string

	err := row.Scan(
		&c.ID, &c.Engagement, &c.Speaker, &firm, &economy, &category, &rationale,
		&amount, &labor, &travel, &contributionDate, &c.FiscalYear, &c.ResourceType,
		&tripID, &c.PolicyVersion, &docs, &c.Version, &supersedes, &createdAt, &deletedAt,
	)
	if err != nil {
		return c, err
	}

	c.Category = model.Category(category)
	c.Firm = firm.String
	c.Economy = economy.String
	c.CategoryRationale = rationale.String
	c.TripID = tripID.String
	c.DocumentationLinks = docs.String
	c.Supersedes = supersedes.String

	if c.Amount, err = decimal.NewFromString(amount); err != nil {
		return c, fmt.Errorf("amount of %s: %w", c.ID, err)
	}
	if c.LaborValue, err = decimal.NewFromString(labor); err != nil {
		return c, fmt.Errorf("labor value of %s: %w", c.ID, err)
	}
	if c.TravelValue, err = decimal.NewFromString(travel); err != nil {
		return c, fmt.Errorf("travel value of %s: %w", c.ID, err)
	}
	c.ContributionDate, _ = time.Parse(time.DateOnly, contributionDate)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		c.DeletedAt = &t
	}

	return c, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// prefixed qualifies a comma-separated column list with a table alias.
func prefixed(alias, columns string) string {
	cols := strings.Split(columns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}
