package ports

import "context"

// OverviewCounts aggregates the totals shown on the admin dashboard.
type OverviewCounts struct {
	Users    int64
	Sessions int64
	Messages int64
}

// StatsRepository counts rows across collections for the admin overview.
type StatsRepository interface {
	Counts(ctx context.Context) (*OverviewCounts, error)
}

type AdminService interface {
	Overview(ctx context.Context) (*OverviewCounts, error)
}
