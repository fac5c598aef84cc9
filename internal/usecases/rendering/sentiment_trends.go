package rendering

import (
	"context"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

const trendLineColor = "#3498DB"

type SentimentTrendsPanel struct {
	analytics analytics.Integrator
	charter   Charter
}

func NewSentimentTrendsPanel(integrator analytics.Integrator, charter Charter) *SentimentTrendsPanel {
	return &SentimentTrendsPanel{
		analytics: integrator,
		charter:   charter,
	}
}

func (p *SentimentTrendsPanel) Slot() string {
	return domain.SlotSentimentTrends
}

func (p *SentimentTrendsPanel) Render(ctx context.Context) error {
	trends, err := p.analytics.GetSentimentTrends(ctx)
	if err != nil {
		return err
	}

	p.charter.Draw(p.Slot(), buildSentimentTrendsChart(trends))

	return nil
}

func buildSentimentTrendsChart(trends *domain.SentimentTrends) domain.ChartSpec {
	return domain.ChartSpec{
		Data: []domain.ChartTrace{
			{
				Type: "scatter",
				Mode: "lines+markers",
				Name: "Pontuação de sentimento",
				X:    trends.Dates,
				Y:    trends.Scores,
				Line: &domain.ChartLine{
					Color: trendLineColor,
					Width: 2,
				},
			},
		},
		Layout: &domain.ChartLayout{
			Title: "Tendência de Sentimento",
			XAxis: &domain.ChartAxis{Title: "Data"},
			YAxis: &domain.ChartAxis{Title: "Pontuação média"},
		},
	}
}
