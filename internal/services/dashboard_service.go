package services

import (
	"context"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/responses"
	"inspekta/internal/utils"
	"inspekta/pkg/logger"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*responses.DashboardStatsResponse, error)
}

type dashboardService struct {
	inspectionRepo interfaces.InspectionRepository
	cache          CacheService
	logger         *logger.Logger
}

func NewDashboardService(inspectionRepo interfaces.InspectionRepository, cache CacheService, logger *logger.Logger) DashboardService {
	return &dashboardService{
		inspectionRepo: inspectionRepo,
		cache:          cache,
		logger:         logger,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*responses.DashboardStatsResponse, error) {
	var cached responses.DashboardStatsResponse
	if err := s.cache.Get(ctx, utils.CacheDashboardStats, &cached); err == nil && cached.TotalInspections > 0 {
		return &cached, nil
	}

	total, err := s.inspectionRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.inspectionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.inspectionRepo.CountByMonth(ctx, utils.DashboardMonthsWindow)
	if err != nil {
		return nil, err
	}

	branches, err := s.inspectionRepo.CountByBranch(ctx)
	if err != nil {
		return nil, err
	}

	stats := buildStats(total, statusCounts, monthly, branches)

	s.cache.Set(ctx, utils.CacheDashboardStats, stats, 5*time.Minute)
	return stats, nil
}

func buildStats(
	total int64,
	statusCounts map[models.InspectionStatus]int64,
	monthly []interfaces.MonthlyInspectionCount,
	branches []interfaces.BranchInspectionCount,
) *responses.DashboardStatsResponse {
	byStatus := make(map[string]int64, len(statusCounts))
	for status, count := range statusCounts {
		byStatus[string(status)] = count
	}

	// Minted reports passed approval first, so they count toward both rates
	var approvedPct, mintedPct float64
	if total > 0 {
		archived := statusCounts[models.InspectionStatusApproved] + statusCounts[models.InspectionStatusMinted]
		approvedPct = float64(archived) / float64(total) * 100
		mintedPct = float64(statusCounts[models.InspectionStatusMinted]) / float64(total) * 100
	}

	monthlyCounts := make([]responses.MonthlyCount, 0, len(monthly))
	for _, m := range monthly {
		monthlyCounts = append(monthlyCounts, responses.MonthlyCount{
			Year:  m.Year,
			Month: m.Month,
			Count: m.Count,
		})
	}

	branchCounts := make([]responses.BranchCount, 0, len(branches))
	for _, b := range branches {
		branchCounts = append(branchCounts, responses.BranchCount{
			BranchID: b.BranchID,
			Total:    b.Total,
			Archived: b.Archived,
		})
	}

	return &responses.DashboardStatsResponse{
		TotalInspections:   total,
		ByStatus:           byStatus,
		ApprovedPercentage: approvedPct,
		MintedPercentage:   mintedPct,
		MonthlyCounts:      monthlyCounts,
		BranchCounts:       branchCounts,
	}
}
