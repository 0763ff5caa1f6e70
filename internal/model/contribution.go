// Package model defines the core valuation data types.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResourceTypeInKind is the resource type stamped on every contribution record.
const ResourceTypeInKind = "In-kind"

// Engagement identifies a single workshop or event that a trip's cost may be split across.
type Engagement struct {
	Ref  string    `json:"ref"`
	Date time.Time `json:"date"`
}

// Trip holds the parameters of one privately funded trip. A trip is shared
// read-only by every engagement it funds.
type Trip struct {
	ID            string          `json:"id,omitempty"`
	Origin        string          `json:"origin,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Airfare       decimal.Decimal `json:"airfare"`
	LodgingRate   decimal.Decimal `json:"lodging_rate_per_night"`
	MIERate       decimal.Decimal `json:"mie_rate_per_day"`
	WorkshopCount int             `json:"workshop_count"`
}

// Contribution is one flat in-kind contribution record, ready for a system of record.
type Contribution struct {
	ID                 string          `json:"id"`
	Engagement         string          `json:"engagement"`
	Speaker            string          `json:"speaker"`
	Firm               string          `json:"firm,omitempty"`
	Economy            string          `json:"economy,omitempty"`
	Category           Category        `json:"category"`
	CategoryRationale  string          `json:"category_rationale,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	LaborValue         decimal.Decimal `json:"labor_value"`
	TravelValue        decimal.Decimal `json:"travel_value"`
	ContributionDate   time.Time       `json:"contribution_date"`
	FiscalYear         int             `json:"fiscal_year"`
	ResourceType       string          `json:"resource_type"`
	TripID             string          `json:"trip_id,omitempty"`
	PolicyVersion      string          `json:"policy_version"`
	DocumentationLinks string          `json:"documentation_links,omitempty"`
	Version            int             `json:"version"`
	Supersedes         string          `json:"supersedes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	DeletedAt          *time.Time      `json:"deleted_at,omitempty"`
}

// Warning is a non-blocking data quality finding surfaced to the reviewer.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
