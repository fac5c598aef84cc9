package rendering

import (
	"context"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

// Cores fixas por sentimento no gráfico de pizza
const (
	colorPositive = "#2ECC71"
	colorNeutral  = "#95A5A6"
	colorNegative = "#E74C3C"
)

// SentimentDistributionPanel desenha a pizza de distribuição de sentimento no
// slot de visualização. Faz sua própria busca do weekly-report, independente
// do painel de resumo: as duas buscas não compartilham resultado
type SentimentDistributionPanel struct {
	analytics analytics.Integrator
	charter   Charter
}

func NewSentimentDistributionPanel(integrator analytics.Integrator, charter Charter) *SentimentDistributionPanel {
	return &SentimentDistributionPanel{
		analytics: integrator,
		charter:   charter,
	}
}

func (p *SentimentDistributionPanel) Slot() string {
	return domain.SlotVisualization
}

func (p *SentimentDistributionPanel) Render(ctx context.Context) error {
	report, err := p.analytics.GetWeeklyReport(ctx)
	if err != nil {
		return err
	}

	p.charter.Draw(p.Slot(), buildSentimentDistributionChart(report.SentimentDistribution))

	return nil
}

func buildSentimentDistributionChart(dist *domain.SentimentDistribution) domain.ChartSpec {
	return domain.ChartSpec{
		Data: []domain.ChartTrace{
			{
				Type:   "pie",
				Values: []float64{dist.Positive, dist.Neutral, dist.Negative},
				Labels: []string{"Positivas", "Neutras", "Negativas"},
				Marker: &domain.ChartMarker{
					Colors: []string{colorPositive, colorNeutral, colorNegative},
				},
			},
		},
		Layout: &domain.ChartLayout{
			Title: "Distribuição de Sentimento",
		},
	}
}
