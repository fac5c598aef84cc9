package analyticsclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

func (c *AnalyticsClient) GetReviewCategories(ctx context.Context) (domain.ReviewCategories, error) {
	body, err := c.fetch(ctx, domain.ResourceReviewCategories)
	if err != nil {
		return nil, err
	}

	// A ordem das categorias no documento é preservada pelo UnmarshalJSON de
	// ReviewCategories
	var categories domain.ReviewCategories
	if err := categories.UnmarshalJSON(body); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar review-categories")
	}

	return categories, nil
}
