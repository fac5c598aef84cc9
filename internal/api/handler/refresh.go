package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/review-dashboard-api/internal/scheduler"
)

// RunRefreshJob dispara manualmente a recarga agendada do dashboard
func RunRefreshJob(service *scheduler.DashboardRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRefreshJob")

		service.TriggerManualSync()

		response := map[string]any{
			"message": "Recarga do dashboard iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetRefreshStatus retorna o status do agendador de recarga
func GetRefreshStatus(service *scheduler.DashboardRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRefreshStatus")

		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
