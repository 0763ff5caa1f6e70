// Package store provides the contribution record storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/inkind/internal/model"
)

// GetParams holds parameters for retrieving a contribution.
type GetParams struct {
	Engagement string
	Speaker    string
	History    bool
	Version    int // 0 means latest
}

// ListParams holds parameters for listing contributions.
type ListParams struct {
	Engagement string
	FiscalYear int
	Firm       string
	Economy    string
	TripID     string
	Limit      int // 0 means 50, negative means no limit
}

// RmParams holds parameters for deleting a contribution.
type RmParams struct {
	Engagement  string
	Speaker     string
	AllVersions bool
	Hard        bool
}

// Store defines the contribution storage interface.
type Store interface {
	// Put stores a contribution. A record for an existing engagement and
	// speaker becomes a new version superseding the previous one.
	Put(ctx context.Context, c model.Contribution) (*model.Contribution, error)

	// PutBatch stores records from one valuation atomically.
	PutBatch(ctx context.Context, cs []model.Contribution) ([]model.Contribution, error)

	// Get retrieves a contribution by engagement and speaker.
	// Returns a slice (single element normally, multiple with History=true).
	Get(ctx context.Context, p GetParams) ([]model.Contribution, error)

	// List lists the latest version of contributions matching the given filters.
	List(ctx context.Context, p ListParams) ([]model.Contribution, error)

	// Rm soft-deletes (or hard-deletes) a contribution.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
