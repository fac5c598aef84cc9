package analytics

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

// Integrator é a fronteira com o backend de análise de avaliações. Toda falha
// de transporte, protocolo, parse ou formato é recuperada aqui: o chamador
// recebe apenas (payload, nil) ou (nil, err) já diagnosticado
type Integrator interface {
	GetWeeklyReport(ctx context.Context) (*domain.WeeklyReport, error)
	GetSentimentTrends(ctx context.Context) (*domain.SentimentTrends, error)
	GetComplaints(ctx context.Context) ([]domain.Complaint, error)
	GetTopThemes(ctx context.Context) ([]string, error)
	GetReviewCategories(ctx context.Context) (domain.ReviewCategories, error)
}

type AnalyticsIntegrator struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) *AnalyticsIntegrator {
	return &AnalyticsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AnalyticsIntegrator) GetWeeklyReport(ctx context.Context) (*domain.WeeklyReport, error) {
	report, err := s.Client.GetWeeklyReport(ctx)
	if err != nil {
		return nil, s.reportFailure(domain.ResourceWeeklyReport, err)
	}

	if err := report.Validate(); err != nil {
		return nil, s.reportFailure(domain.ResourceWeeklyReport, err)
	}

	logrus.WithFields(logrus.Fields{
		"resource":      domain.ResourceWeeklyReport,
		"total_reviews": report.TotalReviews,
	}).Debug("analytics: recurso recuperado com sucesso")

	return report, nil
}

func (s *AnalyticsIntegrator) GetSentimentTrends(ctx context.Context) (*domain.SentimentTrends, error) {
	trends, err := s.Client.GetSentimentTrends(ctx)
	if err != nil {
		return nil, s.reportFailure(domain.ResourceSentimentTrends, err)
	}

	if err := trends.Validate(); err != nil {
		return nil, s.reportFailure(domain.ResourceSentimentTrends, err)
	}

	logrus.WithFields(logrus.Fields{
		"resource": domain.ResourceSentimentTrends,
		"points":   len(trends.Dates),
	}).Debug("analytics: recurso recuperado com sucesso")

	return trends, nil
}

func (s *AnalyticsIntegrator) GetComplaints(ctx context.Context) ([]domain.Complaint, error) {
	complaints, err := s.Client.GetComplaints(ctx)
	if err != nil {
		return nil, s.reportFailure(domain.ResourceComplaints, err)
	}

	if err := domain.ValidateComplaints(complaints); err != nil {
		return nil, s.reportFailure(domain.ResourceComplaints, err)
	}

	logrus.WithFields(logrus.Fields{
		"resource":   domain.ResourceComplaints,
		"complaints": len(complaints),
	}).Debug("analytics: recurso recuperado com sucesso")

	return complaints, nil
}

func (s *AnalyticsIntegrator) GetTopThemes(ctx context.Context) ([]string, error) {
	themes, err := s.Client.GetTopThemes(ctx)
	if err != nil {
		return nil, s.reportFailure(domain.ResourceTopThemes, err)
	}

	logrus.WithFields(logrus.Fields{
		"resource": domain.ResourceTopThemes,
		"themes":   len(themes),
	}).Debug("analytics: recurso recuperado com sucesso")

	return themes, nil
}

func (s *AnalyticsIntegrator) GetReviewCategories(ctx context.Context) (domain.ReviewCategories, error) {
	categories, err := s.Client.GetReviewCategories(ctx)
	if err != nil {
		return nil, s.reportFailure(domain.ResourceReviewCategories, err)
	}

	logrus.WithFields(logrus.Fields{
		"resource":   domain.ResourceReviewCategories,
		"categories": len(categories),
	}).Debug("analytics: recurso recuperado com sucesso")

	return categories, nil
}

// reportFailure emite o diagnóstico de ausência para o sink de observabilidade.
// A falha é reportada mas não fatal: o painel correspondente simplesmente não
// atualiza seu slot
func (s *AnalyticsIntegrator) reportFailure(resource string, err error) error {
	logrus.WithFields(logrus.Fields{
		"resource": resource,
		"error":    err.Error(),
	}).Error("analytics: falha ao recuperar recurso, painel ficará sem atualização")

	return err
}
