package services

import (
	"testing"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStats(t *testing.T) {
	statusCounts := map[models.InspectionStatus]int64{
		models.InspectionStatusNeedReview: 3,
		models.InspectionStatusApproved:   2,
		models.InspectionStatusMinted:     5,
	}
	monthly := []interfaces.MonthlyInspectionCount{
		{Year: 2026, Month: 8, Count: 4},
		{Year: 2026, Month: 7, Count: 6},
	}
	branches := []interfaces.BranchInspectionCount{
		{BranchID: "6ba7b811-9dad-11d1-80b4-00c04fd430c8", Total: 10, Archived: 7},
	}

	stats := buildStats(10, statusCounts, monthly, branches)

	assert.Equal(t, int64(10), stats.TotalInspections)
	assert.Equal(t, int64(3), stats.ByStatus[string(models.InspectionStatusNeedReview)])
	assert.Equal(t, int64(5), stats.ByStatus[string(models.InspectionStatusMinted)])
	assert.InDelta(t, 50.0, stats.MintedPercentage, 0.001)
	// Approved plus minted over total
	assert.InDelta(t, 70.0, stats.ApprovedPercentage, 0.001)

	require.Len(t, stats.MonthlyCounts, 2)
	assert.Equal(t, 2026, stats.MonthlyCounts[0].Year)
	assert.Equal(t, 8, stats.MonthlyCounts[0].Month)
	assert.Equal(t, int64(4), stats.MonthlyCounts[0].Count)

	require.Len(t, stats.BranchCounts, 1)
	assert.Equal(t, "6ba7b811-9dad-11d1-80b4-00c04fd430c8", stats.BranchCounts[0].BranchID)
	assert.Equal(t, int64(7), stats.BranchCounts[0].Archived)
}

func TestBuildStatsZeroTotal(t *testing.T) {
	stats := buildStats(0, map[models.InspectionStatus]int64{}, nil, nil)

	assert.Equal(t, int64(0), stats.TotalInspections)
	assert.Zero(t, stats.MintedPercentage)
	assert.Zero(t, stats.ApprovedPercentage)
	// Empty slices, not nil, so the dashboard payload renders [] instead of null
	assert.NotNil(t, stats.MonthlyCounts)
	assert.NotNil(t, stats.BranchCounts)
}

func TestBuildStatsNoMinted(t *testing.T) {
	statusCounts := map[models.InspectionStatus]int64{
		models.InspectionStatusDraft: 4,
	}

	stats := buildStats(4, statusCounts, nil, nil)
	assert.Zero(t, stats.MintedPercentage)
	assert.Zero(t, stats.ApprovedPercentage)
	assert.Equal(t, int64(4), stats.ByStatus[string(models.InspectionStatusDraft)])
}
