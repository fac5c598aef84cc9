package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/review-dashboard-api/infrastructure/presentation/slotstore"
	"github.com/vfg2006/review-dashboard-api/internal/api"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
	"github.com/vfg2006/review-dashboard-api/internal/scheduler"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/rendering"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Slots semeados com o placeholder de carregamento; cada painel é o único
	// escritor do seu slot
	slotStore := slotstore.New(domain.DashboardSlots()...)

	analyticsClient := analyticsclient.NewClient(cfg)
	analyticsIntegrator := analytics.New(cfg, analyticsClient)

	panels := rendering.NewPanels(analyticsIntegrator, slotStore, slotStore)

	dashboardService := dashboarding.NewService(
		panels,
		dashboarding.WithObserver(func(result dashboarding.PanelResult) {
			if result.Status == dashboarding.PanelStatusSkipped {
				logrus.WithFields(logrus.Fields{
					"slot":  result.Slot,
					"error": result.Error,
				}).Warn("Painel sem atualização nesta carga")
			}
		}),
	)

	// Recarga agendada dos slots (desabilitada por padrão)
	refreshService := scheduler.NewDashboardRefreshService(dashboardService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dashboard")
	} else {
		logrus.Info("Agendador de recarga do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		slotStore,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
