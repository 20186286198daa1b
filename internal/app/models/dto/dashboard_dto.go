package dto

import (
	"time"

	"github.com/yigit/coursehub/internal/app/chart"
	"github.com/yigit/coursehub/internal/app/statistics"
)

// DashboardResponse is the admin dashboard state
type DashboardResponse struct {
	Loading    bool                   `json:"loading" example:"false"`
	Error      string                 `json:"error,omitempty" example:"Erreur lors du chargement des inscriptions"`
	Generation uint64                 `json:"generation" example:"3"`
	Statistics *statistics.Statistics `json:"statistics,omitempty"`
	Summary    *statistics.Summary    `json:"summary,omitempty"`
	LoadedAt   time.Time              `json:"loadedAt"`
}

// ChartResponse is the chart currently displayed on the dashboard
type ChartResponse struct {
	Chart chart.Snapshot `json:"chart"`
}
