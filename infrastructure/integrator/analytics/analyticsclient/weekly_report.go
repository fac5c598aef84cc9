package analyticsclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

func (c *AnalyticsClient) GetWeeklyReport(ctx context.Context) (*domain.WeeklyReport, error) {
	body, err := c.fetch(ctx, domain.ResourceWeeklyReport)
	if err != nil {
		return nil, err
	}

	var report domain.WeeklyReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar weekly-report")
	}

	return &report, nil
}
