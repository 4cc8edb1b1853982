package dashboard

import (
	"context"
)

// DashboardService assembles the role-scoped stats payload.
type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}
