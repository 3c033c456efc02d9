package responses

// DashboardStatsResponse aggregates the admin dashboard counters.
type DashboardStatsResponse struct {
	TotalInspections   int64            `json:"totalInspections"`
	ByStatus           map[string]int64 `json:"byStatus"`
	ApprovedPercentage float64          `json:"approvedPercentage"`
	MintedPercentage   float64          `json:"mintedPercentage"`
	MonthlyCounts    []MonthlyCount   `json:"monthlyCounts"`
	BranchCounts     []BranchCount    `json:"branchCounts"`
}

// MonthlyCount is one month's submission count, newest first.
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// BranchCount is one branch's totals split by archive state.
type BranchCount struct {
	BranchID string `json:"cabangId"`
	Total    int64  `json:"total"`
	Archived int64  `json:"archived"`
}
