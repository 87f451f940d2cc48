package usecase

import "context"

// Stats summarises the platform for the dashboard.
type Stats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalRequests int64   `json:"totalRequests"`
	TotalFunding  float64 `json:"totalFunding"`
}

// StatsUsecase aggregates dashboard counters.
type StatsUsecase interface {
	Stats(ctx context.Context) (*Stats, error)
}
