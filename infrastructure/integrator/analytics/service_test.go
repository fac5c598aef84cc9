package analytics

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

// stubClient devolve payloads fixos, simulando o client HTTP
type stubClient struct {
	report     *domain.WeeklyReport
	trends     *domain.SentimentTrends
	complaints []domain.Complaint
	themes     []string
	categories domain.ReviewCategories
	err        error
}

func (s *stubClient) GetWeeklyReport(ctx context.Context) (*domain.WeeklyReport, error) {
	return s.report, s.err
}

func (s *stubClient) GetSentimentTrends(ctx context.Context) (*domain.SentimentTrends, error) {
	return s.trends, s.err
}

func (s *stubClient) GetComplaints(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaints, s.err
}

func (s *stubClient) GetTopThemes(ctx context.Context) ([]string, error) {
	return s.themes, s.err
}

func (s *stubClient) GetReviewCategories(ctx context.Context) (domain.ReviewCategories, error) {
	return s.categories, s.err
}

func TestAnalyticsIntegrator_GetWeeklyReport(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubClient
		wantErr bool
	}{
		{
			name: "Relatório válido passa pela validação",
			client: &stubClient{
				report: &domain.WeeklyReport{
					TotalReviews:          10,
					AverageRating:         4.2,
					SentimentDistribution: &domain.SentimentDistribution{Positive: 70, Neutral: 20, Negative: 10},
				},
			},
		},
		{
			name: "Relatório sem distribuição de sentimento vira ausência",
			client: &stubClient{
				report: &domain.WeeklyReport{TotalReviews: 10, AverageRating: 4.2},
			},
			wantErr: true,
		},
		{
			name:    "Falha do client é repassada como ausência",
			client:  &stubClient{err: errors.New("status inesperado 503 para weekly-report")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := New(&config.Config{}, tt.client)

			report, err := integrator.GetWeeklyReport(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.client.report, report)
		})
	}
}

func TestAnalyticsIntegrator_GetSentimentTrends_Misaligned(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{
		trends: &domain.SentimentTrends{
			Dates:  []string{"2025-08-01", "2025-08-02"},
			Scores: []float64{0.5},
		},
	})

	trends, err := integrator.GetSentimentTrends(context.Background())

	assert.Error(t, err)
	assert.Nil(t, trends)
}

func TestAnalyticsIntegrator_GetComplaints_InvalidShape(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{
		complaints: []domain.Complaint{{Text: "", Date: "2025-08-20"}},
	})

	complaints, err := integrator.GetComplaints(context.Background())

	assert.Error(t, err)
	assert.Nil(t, complaints)
}

func TestAnalyticsIntegrator_PassThrough(t *testing.T) {
	client := &stubClient{
		trends: &domain.SentimentTrends{
			Dates:  []string{"2025-08-01"},
			Scores: []float64{0.5},
		},
		complaints: []domain.Complaint{{Text: "Demorado", Date: "2025-08-20"}},
		themes:     []string{"atendimento"},
		categories: domain.ReviewCategories{{Name: "Service", Count: 5}},
	}
	integrator := New(&config.Config{}, client)

	trends, err := integrator.GetSentimentTrends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.trends, trends)

	complaints, err := integrator.GetComplaints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.complaints, complaints)

	themes, err := integrator.GetTopThemes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.themes, themes)

	categories, err := integrator.GetReviewCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.categories, categories)
}
