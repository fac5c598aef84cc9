package analyticsclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

func (c *AnalyticsClient) GetTopThemes(ctx context.Context) ([]string, error) {
	body, err := c.fetch(ctx, domain.ResourceTopThemes)
	if err != nil {
		return nil, err
	}

	var themes []string
	if err := json.Unmarshal(body, &themes); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar top-themes")
	}

	return themes, nil
}
