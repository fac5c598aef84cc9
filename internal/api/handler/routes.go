package handler

import (
	"net/http"

	"github.com/vfg2006/review-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/review-dashboard-api/internal/scheduler"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, store SlotReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/load",
			Method:  http.MethodPost,
			Handler: LoadDashboard(service),
		},
		{
			Path:    "/v1/dashboard/slots",
			Method:  http.MethodGet,
			Handler: GetDashboardSlots(store),
		},
		{
			Path:    "/v1/dashboard/slots/:name",
			Method:  http.MethodGet,
			Handler: GetDashboardSlot(store),
		},
		{
			Path:    "/v1/dashboard/status",
			Method:  http.MethodGet,
			Handler: GetDashboardStatus(service),
		},
	}
}

func Refresh(service *scheduler.DashboardRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/dashboard-refresh/run",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(service),
		},
		{
			Path:    "/v1/cron/dashboard-refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(service),
		},
	}
}
