package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/dashboarding"
)

// stubDashboarder conta as cargas disparadas pelo agendador
type stubDashboarder struct {
	loads  atomic.Int64
	result *dashboarding.LoadResult
	err    error
}

func (s *stubDashboarder) Load(ctx context.Context) (*dashboarding.LoadResult, error) {
	s.loads.Add(1)
	return s.result, s.err
}

func (s *stubDashboarder) GetStatus() map[string]any {
	return map[string]any{"state": "idle"}
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		DashboardRefresh: config.DashboardRefresh{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestDashboardRefreshService_StartDisabled(t *testing.T) {
	dashboard := &stubDashboarder{result: &dashboarding.LoadResult{RunID: "abc123"}}
	service := NewDashboardRefreshService(dashboard, newTestConfig(false))

	err := service.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), dashboard.loads.Load())
}

func TestDashboardRefreshService_Refresh(t *testing.T) {
	dashboard := &stubDashboarder{result: &dashboarding.LoadResult{RunID: "abc123"}}
	service := NewDashboardRefreshService(dashboard, newTestConfig(true))

	service.refresh(context.Background())

	assert.Equal(t, int64(1), dashboard.loads.Load())
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestDashboardRefreshService_RefreshSkipsOverlappingLoad(t *testing.T) {
	dashboard := &stubDashboarder{err: dashboarding.ErrLoadInProgress}
	service := NewDashboardRefreshService(dashboard, newTestConfig(true))

	// Não deve propagar pânico nem registrar erro fatal
	service.refresh(context.Background())

	assert.Equal(t, int64(1), dashboard.loads.Load())
}

func TestDashboardRefreshService_TriggerManualSync(t *testing.T) {
	dashboard := &stubDashboarder{result: &dashboarding.LoadResult{RunID: "abc123"}}
	service := NewDashboardRefreshService(dashboard, newTestConfig(true))

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return dashboard.loads.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDashboardRefreshService_GetStatus(t *testing.T) {
	dashboard := &stubDashboarder{}
	service := NewDashboardRefreshService(dashboard, newTestConfig(true))

	status := service.GetStatus()

	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, "*/15 * * * *", status["refresh_cron"])
}
