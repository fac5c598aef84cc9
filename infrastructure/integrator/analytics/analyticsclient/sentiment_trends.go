package analyticsclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

func (c *AnalyticsClient) GetSentimentTrends(ctx context.Context) (*domain.SentimentTrends, error) {
	body, err := c.fetch(ctx, domain.ResourceSentimentTrends)
	if err != nil {
		return nil, err
	}

	var trends domain.SentimentTrends
	if err := json.Unmarshal(body, &trends); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar sentiment-trends")
	}

	return &trends, nil
}
