package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/review-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/review-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SlotReader expõe o conteúdo atual dos slots do dashboard
type SlotReader interface {
	Get(slot string) (domain.SlotContent, bool)
	Snapshot() []domain.SlotContent
}

// LoadDashboard é o gatilho de page-ready: dispara a carga de todos os
// painéis e responde quando todos assentarem. O contexto da requisição flui
// para cada busca, então o cancelamento do cliente interrompe painéis
// pendentes
func LoadDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: gatilho de carga recebido")

		result, err := service.Load(r.Context())
		if err != nil {
			if err == dashboarding.ErrLoadInProgress {
				logger.Warn("dashboard: carga rejeitada, outra execução em andamento")
				apiErrors.WriteError(w, apiErrors.ErrLoadInProgress, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("dashboard: erro ao carregar painéis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"run_id":    result.RunID,
			"committed": result.Committed(),
		}).Info("dashboard: carga concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

// GetDashboardSlots retorna o conteúdo de todos os slots na ordem de exibição
func GetDashboardSlots(store SlotReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		contents := store.Snapshot()

		logger.WithField("slots", len(contents)).Debug("dashboard: slots consultados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(contents); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

// GetDashboardSlot retorna o conteúdo de um slot específico
func GetDashboardSlot(store SlotReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do slot não informado", nil)
			return
		}

		content, ok := store.Get(name)
		if !ok {
			logger.WithField("slot", name).Warn("dashboard: slot desconhecido")
			apiErrors.WriteError(w, apiErrors.ErrSlotNotFound, "Slot desconhecido", name)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(content); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

// GetDashboardStatus retorna o estado do orquestrador
func GetDashboardStatus(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}
