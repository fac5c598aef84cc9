package analyticsclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

func (c *AnalyticsClient) GetComplaints(ctx context.Context) ([]domain.Complaint, error) {
	body, err := c.fetch(ctx, domain.ResourceComplaints)
	if err != nil {
		return nil, err
	}

	var complaints []domain.Complaint
	if err := json.Unmarshal(body, &complaints); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar complaints")
	}

	return complaints, nil
}
