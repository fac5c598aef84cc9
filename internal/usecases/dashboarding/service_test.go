package dashboarding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics/mocks"
	"github.com/vfg2006/review-dashboard-api/infrastructure/presentation/slotstore"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/rendering"
	"go.uber.org/mock/gomock"
)

func validReport() *domain.WeeklyReport {
	return &domain.WeeklyReport{
		TotalReviews:  42,
		AverageRating: 4.567,
		SentimentDistribution: &domain.SentimentDistribution{
			Positive: 62,
			Neutral:  23,
			Negative: 15,
		},
	}
}

func validTrends() *domain.SentimentTrends {
	return &domain.SentimentTrends{
		Dates:  []string{"2025-08-01", "2025-08-02"},
		Scores: []float64{0.4, 0.8},
	}
}

func expectAllPanels(integrator *mocks.MockIntegrator) {
	// O relatório semanal é buscado duas vezes por carga: pelo painel de
	// resumo e pelo painel de distribuição
	integrator.EXPECT().GetWeeklyReport(gomock.Any()).Return(validReport(), nil).Times(2)
	integrator.EXPECT().GetSentimentTrends(gomock.Any()).Return(validTrends(), nil)
	integrator.EXPECT().GetComplaints(gomock.Any()).Return([]domain.Complaint{{Text: "Demorado", Date: "2025-08-20"}}, nil)
	integrator.EXPECT().GetTopThemes(gomock.Any()).Return([]string{"atendimento"}, nil)
	integrator.EXPECT().GetReviewCategories(gomock.Any()).Return(domain.ReviewCategories{{Name: "Service", Count: 5}}, nil)
}

func TestService_Load_AllPanelsCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	expectAllPanels(integrator)

	store := slotstore.New(domain.DashboardSlots()...)
	service := NewService(rendering.NewPanels(integrator, store, store))

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 6, result.Committed())

	for _, slot := range domain.DashboardSlots() {
		content, ok := store.Get(slot)
		require.True(t, ok)
		if content.Artifact.Kind == domain.ArtifactMarkup {
			assert.NotEqual(t, slotstore.LoadingPlaceholder, content.Artifact.HTML, "slot %s deveria ter sido atualizado", slot)
		}
	}
}

func TestService_Load_PanelFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().GetWeeklyReport(gomock.Any()).Return(validReport(), nil).Times(2)
	integrator.EXPECT().GetSentimentTrends(gomock.Any()).Return(validTrends(), nil)
	integrator.EXPECT().GetComplaints(gomock.Any()).Return(nil, errors.New("status inesperado 503 para complaints"))
	integrator.EXPECT().GetTopThemes(gomock.Any()).Return([]string{"atendimento"}, nil)
	integrator.EXPECT().GetReviewCategories(gomock.Any()).Return(domain.ReviewCategories{{Name: "Service", Count: 5}}, nil)

	store := slotstore.New(domain.DashboardSlots()...)
	service := NewService(rendering.NewPanels(integrator, store, store))

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, result.Committed())

	// O slot da reclamação mantém o placeholder, os demais assentam
	content, ok := store.Get(domain.SlotComplaints)
	require.True(t, ok)
	assert.Equal(t, slotstore.LoadingPlaceholder, content.Artifact.HTML)

	content, ok = store.Get(domain.SlotTopThemes)
	require.True(t, ok)
	assert.NotEqual(t, slotstore.LoadingPlaceholder, content.Artifact.HTML)

	for _, panel := range result.Panels {
		if panel.Slot == domain.SlotComplaints {
			assert.Equal(t, PanelStatusSkipped, panel.Status)
			assert.Contains(t, panel.Error, "503")
		} else {
			assert.Equal(t, PanelStatusCommitted, panel.Status)
		}
	}
}

func TestService_Load_ReportFollowsDispatchOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Latências escalonadas: a ordem de conclusão difere da ordem de despacho
	integrator := mocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().GetWeeklyReport(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (*domain.WeeklyReport, error) {
			time.Sleep(30 * time.Millisecond)
			return validReport(), nil
		}).Times(2)
	integrator.EXPECT().GetSentimentTrends(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (*domain.SentimentTrends, error) {
			time.Sleep(20 * time.Millisecond)
			return validTrends(), nil
		})
	integrator.EXPECT().GetComplaints(gomock.Any()).Return([]domain.Complaint{{Text: "A", Date: "d1"}}, nil)
	integrator.EXPECT().GetTopThemes(gomock.Any()).Return([]string{"atendimento"}, nil)
	integrator.EXPECT().GetReviewCategories(gomock.Any()).Return(domain.ReviewCategories{{Name: "Service", Count: 5}}, nil)

	store := slotstore.New(domain.DashboardSlots()...)
	panels := rendering.NewPanels(integrator, store, store)
	service := NewService(panels)

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Panels, len(panels))
	for i, panel := range panels {
		assert.Equal(t, panel.Slot(), result.Panels[i].Slot)
	}
}

func TestService_Load_RejectsOverlappingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	integrator := mocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().GetWeeklyReport(gomock.Any()).Return(validReport(), nil).Times(2)
	integrator.EXPECT().GetSentimentTrends(gomock.Any()).Return(validTrends(), nil)
	integrator.EXPECT().GetComplaints(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.Complaint, error) {
			close(started)
			<-release
			return []domain.Complaint{{Text: "A", Date: "d1"}}, nil
		})
	integrator.EXPECT().GetTopThemes(gomock.Any()).Return([]string{"atendimento"}, nil)
	integrator.EXPECT().GetReviewCategories(gomock.Any()).Return(domain.ReviewCategories{{Name: "Service", Count: 5}}, nil)

	store := slotstore.New(domain.DashboardSlots()...)
	service := NewService(rendering.NewPanels(integrator, store, store))

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.Load(context.Background())
		firstDone <- err
	}()

	<-started

	// Segunda carga enquanto a primeira ainda não assentou
	_, err := service.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadInProgress)

	status := service.GetStatus()
	assert.Equal(t, "running", status["state"])

	close(release)
	require.NoError(t, <-firstDone)

	status = service.GetStatus()
	assert.Equal(t, "idle", status["state"])

	// Com a primeira carga assentada, um novo gatilho volta a ser aceito
	expectAllPanels(integrator)
	_, err = service.Load(context.Background())
	assert.NoError(t, err)
}

func TestService_Load_ObserverReceivesEveryPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().GetWeeklyReport(gomock.Any()).Return(validReport(), nil).Times(2)
	integrator.EXPECT().GetSentimentTrends(gomock.Any()).Return(validTrends(), nil)
	integrator.EXPECT().GetComplaints(gomock.Any()).Return(nil, errors.New("status inesperado 503 para complaints"))
	integrator.EXPECT().GetTopThemes(gomock.Any()).Return([]string{"atendimento"}, nil)
	integrator.EXPECT().GetReviewCategories(gomock.Any()).Return(domain.ReviewCategories{{Name: "Service", Count: 5}}, nil)

	mu := sync.Mutex{}
	observed := make(map[string]PanelResult)
	observer := func(result PanelResult) {
		mu.Lock()
		defer mu.Unlock()
		observed[result.Slot] = result
	}

	store := slotstore.New(domain.DashboardSlots()...)
	service := NewService(rendering.NewPanels(integrator, store, store), WithObserver(observer))

	_, err := service.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, observed, 6)
	assert.Equal(t, PanelStatusSkipped, observed[domain.SlotComplaints].Status)
	assert.Equal(t, PanelStatusCommitted, observed[domain.SlotWeeklyReport].Status)
}

func TestService_GetStatus_Idle(t *testing.T) {
	service := NewService(nil)

	status := service.GetStatus()

	assert.Equal(t, "idle", status["state"])
	assert.Empty(t, status["last_run_id"])
}

// Teste de ponta a ponta: backend falso via httptest, client e integrator
// reais, seis painéis contra o slot store real
func TestService_Load_EndToEnd(t *testing.T) {
	var weeklyReportHits atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/api/weekly-report", func(w http.ResponseWriter, r *http.Request) {
		weeklyReportHits.Add(1)
		w.Write([]byte(`{
			"total_reviews": 42,
			"average_rating": 4.567,
			"sentiment_distribution": {"positive": 62, "neutral": 23, "negative": 15}
		}`))
	})
	mux.HandleFunc("/api/sentiment-trends", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dates": ["2025-08-01", "2025-08-02"], "sentiment_scores": [0.4, 0.8]}`))
	})
	mux.HandleFunc("/api/complaints", func(w http.ResponseWriter, r *http.Request) {
		// Recurso indisponível nesta carga
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/api/top-themes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["atendimento", "preço"]`))
	})
	mux.HandleFunc("/api/review-categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Service": 5, "Price": 2}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := &config.Config{
		Analytics: config.Analytics{
			BaseURL:      server.URL,
			FetchTimeout: 2 * time.Second,
		},
	}

	integrator := analytics.New(cfg, analyticsclient.NewClient(cfg))
	store := slotstore.New(domain.DashboardSlots()...)
	service := NewService(rendering.NewPanels(integrator, store, store))

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, result.Committed())

	// Duas buscas independentes do relatório semanal na mesma carga
	assert.Equal(t, int64(2), weeklyReportHits.Load())

	content, ok := store.Get(domain.SlotWeeklyReport)
	require.True(t, ok)
	assert.Contains(t, content.Artifact.HTML, "<strong>Nota média:</strong> 4.6")
	assert.Contains(t, content.Artifact.HTML, "Positivas: 62%")

	content, ok = store.Get(domain.SlotComplaints)
	require.True(t, ok)
	assert.Equal(t, slotstore.LoadingPlaceholder, content.Artifact.HTML)

	content, ok = store.Get(domain.SlotVisualization)
	require.True(t, ok)
	require.Equal(t, domain.ArtifactChart, content.Artifact.Kind)
	require.NotNil(t, content.Artifact.Chart)
	assert.Equal(t, "pie", content.Artifact.Chart.Data[0].Type)
}
