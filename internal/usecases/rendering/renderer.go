// Package rendering contém os painéis do dashboard. Cada painel é dono de um
// único slot: busca o recurso correspondente, transforma o payload em um
// artefato de apresentação e o comita. Em caso de ausência (qualquer falha de
// busca), o painel é um no-op e o slot mantém o conteúdo anterior
package rendering

import (
	"context"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

// SlotCommitter comita artefatos de marcação em slots nomeados
type SlotCommitter interface {
	Commit(slot string, artifact domain.PanelArtifact)
}

// Charter é o colaborador externo de charting: recebe a especificação e
// desenha in-place no slot indicado
type Charter interface {
	Draw(slot string, spec domain.ChartSpec)
}

// Panel é uma unidade do dashboard: um recurso, um slot
type Panel interface {
	Slot() string
	Render(ctx context.Context) error
}

// NewPanels monta os seis painéis na ordem de exibição do dashboard
func NewPanels(integrator analytics.Integrator, slots SlotCommitter, charter Charter) []Panel {
	return []Panel{
		NewWeeklyReportPanel(integrator, slots),
		NewSentimentTrendsPanel(integrator, charter),
		NewComplaintsPanel(integrator, slots),
		NewTopThemesPanel(integrator, slots),
		NewReviewCategoriesPanel(integrator, slots),
		NewSentimentDistributionPanel(integrator, charter),
	}
}
