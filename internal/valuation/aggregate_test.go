package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
)

func engagements(refs ...string) []model.Engagement {
	out := make([]model.Engagement, len(refs))
	for i, r := range refs {
		out[i] = model.Engagement{Ref: r, Date: date("2025-11-05")}
	}
	return out
}

func TestAggregate_Split(t *testing.T) {
	recs, err := Aggregate(Allocation{
		LaborValue:      dec("917"),
		AllocatedTravel: dec("968.75"),
		Engagements:     engagements("WS-1", "WS-2"),
		Mode:            policy.LaborSplit,
		Speaker:         "Jane Smith",
		PolicyVersion:   "v1.0.0",
		TripID:          "trip-1",
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	for i, r := range recs {
		assertMoney(t, "458.50", r.LaborValue)
		assertMoney(t, "968.75", r.TravelValue)
		assertMoney(t, "1427.25", r.Amount)
		assert.Equal(t, model.ResourceTypeInKind, r.ResourceType)
		assert.Equal(t, 2026, r.FiscalYear)
		assert.Equal(t, "trip-1", r.TripID)
		assert.Equal(t, []string{"WS-1", "WS-2"}[i], r.Engagement)
	}
}

func TestAggregate_PerEngagement(t *testing.T) {
	recs, err := Aggregate(Allocation{
		LaborValue:      dec("917"),
		AllocatedTravel: dec("968.75"),
		Engagements:     engagements("WS-1", "WS-2"),
		Mode:            policy.LaborPerEngagement,
	})
	require.NoError(t, err)
	for _, r := range recs {
		assertMoney(t, "917.00", r.LaborValue)
		assertMoney(t, "1885.75", r.Amount)
	}
}

func TestAggregate_SingleEngagementIgnoresMode(t *testing.T) {
	for _, mode := range []policy.LaborAllocation{policy.LaborSplit, policy.LaborPerEngagement} {
		recs, err := Aggregate(Allocation{
			LaborValue:  dec("917"),
			Engagements: engagements("WS-1"),
			Mode:        mode,
		})
		require.NoError(t, err)
		assertMoney(t, "917.00", recs[0].Amount)
	}
}

func TestAggregate_Errors(t *testing.T) {
	_, err := Aggregate(Allocation{Mode: policy.LaborSplit})
	assert.ErrorIs(t, err, ErrNoEngagements)

	_, err = Aggregate(Allocation{Engagements: engagements("WS-1"), Mode: "weighted"})
	assert.Error(t, err)
}
