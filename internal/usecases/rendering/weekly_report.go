package rendering

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
	"github.com/vfg2006/review-dashboard-api/pkg/utils"
)

type WeeklyReportPanel struct {
	analytics analytics.Integrator
	slots     SlotCommitter
}

func NewWeeklyReportPanel(integrator analytics.Integrator, slots SlotCommitter) *WeeklyReportPanel {
	return &WeeklyReportPanel{
		analytics: integrator,
		slots:     slots,
	}
}

func (p *WeeklyReportPanel) Slot() string {
	return domain.SlotWeeklyReport
}

func (p *WeeklyReportPanel) Render(ctx context.Context) error {
	report, err := p.analytics.GetWeeklyReport(ctx)
	if err != nil {
		return err
	}

	p.slots.Commit(p.Slot(), domain.PanelArtifact{
		Kind: domain.ArtifactMarkup,
		HTML: buildWeeklyReportMarkup(report),
	})

	return nil
}

// buildWeeklyReportMarkup é uma transformação pura do relatório em marcação. A
// nota média é formatada com uma casa decimal; os percentuais são repassados
// como recebidos
func buildWeeklyReportMarkup(report *domain.WeeklyReport) string {
	dist := report.SentimentDistribution

	var b strings.Builder
	b.WriteString(`<div class="report-summary">`)
	b.WriteString(fmt.Sprintf(`<p><strong>Total de avaliações:</strong> %d</p>`, report.TotalReviews))
	b.WriteString(fmt.Sprintf(`<p><strong>Nota média:</strong> %s</p>`, utils.FormatOneDecimal(report.AverageRating)))
	b.WriteString(`<ul class="sentiment-distribution">`)
	b.WriteString(fmt.Sprintf(`<li class="positive">Positivas: %s%%</li>`, utils.FormatNumber(dist.Positive)))
	b.WriteString(fmt.Sprintf(`<li class="neutral">Neutras: %s%%</li>`, utils.FormatNumber(dist.Neutral)))
	b.WriteString(fmt.Sprintf(`<li class="negative">Negativas: %s%%</li>`, utils.FormatNumber(dist.Negative)))
	b.WriteString(`</ul></div>`)

	return b.String()
}
