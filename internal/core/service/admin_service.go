package service

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/ports"
)

// AdminService serves the admin dashboard counts.
type AdminService struct {
	stats ports.StatsRepository
}

func NewAdminService(stats ports.StatsRepository) *AdminService {
	return &AdminService{stats: stats}
}

func (s *AdminService) Overview(ctx context.Context) (*ports.OverviewCounts, error) {
	return s.stats.Counts(ctx)
}
