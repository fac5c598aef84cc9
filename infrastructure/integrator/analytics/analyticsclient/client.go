package analyticsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/review-dashboard-api/internal/config"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetWeeklyReport(ctx context.Context) (*domain.WeeklyReport, error)
	GetSentimentTrends(ctx context.Context) (*domain.SentimentTrends, error)
	GetComplaints(ctx context.Context) ([]domain.Complaint, error)
	GetTopThemes(ctx context.Context) ([]string, error)
	GetReviewCategories(ctx context.Context) (domain.ReviewCategories, error)
}

type AnalyticsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &AnalyticsClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Analytics.FetchTimeout,
		},
	}
	return client
}

// fetch busca um recurso do backend de análise. Qualquer status fora de 2xx é
// tratado como falha; o chamador decide como registrar a ausência
func (c *AnalyticsClient) fetch(ctx context.Context, resource string) ([]byte, error) {
	url := fmt.Sprintf("%s/api/%s", c.Cfg.Analytics.BaseURL, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar a requisição para %s", resource)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao fazer a requisição para %s", resource)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("status inesperado %d para %s", resp.StatusCode, resource)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o corpo da resposta de %s", resource)
	}

	return body, nil
}
