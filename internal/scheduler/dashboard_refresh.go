// Package scheduler contém o serviço de agendamento da recarga do dashboard
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/dashboarding"
)

type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService recarrega os slots do dashboard periodicamente para
// que a página encontre conteúdo quente. Cada execução é uma carga one-shot
// completa; a proteção contra execuções sobrepostas fica no orquestrador
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	dashboard           dashboarding.Dashboarder
	config              DashboardRefreshConfig
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardRefreshService(dashboard dashboarding.Dashboarder, cfg *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: cfg.DashboardRefresh.CronSchedule, // Default: a cada 15 minutos
		Enabled:      cfg.DashboardRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de recarga do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: scheduler,
		dashboard: dashboard,
		config:    refreshConfig,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dashboard: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardRefreshService) refresh(ctx context.Context) {
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.lastSyncCompletedAt = time.Now()
	}()

	result, err := s.dashboard.Load(ctx)
	if err != nil {
		if err == dashboarding.ErrLoadInProgress {
			logrus.Warn("Recarga do dashboard ignorada: carga já em execução")
			return
		}
		logrus.WithError(err).Error("Erro na recarga agendada do dashboard")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"committed": result.Committed(),
	}).Info("Recarga agendada do dashboard concluída")
}

// TriggerManualSync inicia manualmente uma recarga do dashboard
func (s *DashboardRefreshService) TriggerManualSync() {
	logrus.Info("Iniciando recarga manual do dashboard")
	go s.refresh(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":        s.config.Enabled,
		"refresh_cron":           s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
