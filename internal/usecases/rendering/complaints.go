package rendering

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

type ComplaintsPanel struct {
	analytics analytics.Integrator
	slots     SlotCommitter
}

func NewComplaintsPanel(integrator analytics.Integrator, slots SlotCommitter) *ComplaintsPanel {
	return &ComplaintsPanel{
		analytics: integrator,
		slots:     slots,
	}
}

func (p *ComplaintsPanel) Slot() string {
	return domain.SlotComplaints
}

func (p *ComplaintsPanel) Render(ctx context.Context) error {
	complaints, err := p.analytics.GetComplaints(ctx)
	if err != nil {
		return err
	}

	p.slots.Commit(p.Slot(), domain.PanelArtifact{
		Kind: domain.ArtifactMarkup,
		HTML: buildComplaintsMarkup(complaints),
	})

	return nil
}

// buildComplaintsMarkup gera um sub-fragmento por reclamação, concatenado na
// ordem do payload. O texto vem de avaliações de clientes e é escapado
func buildComplaintsMarkup(complaints []domain.Complaint) string {
	var b strings.Builder
	b.WriteString(`<ul class="complaints-list">`)
	for _, complaint := range complaints {
		b.WriteString(fmt.Sprintf(
			`<li class="complaint"><p>%s</p><span class="complaint-date">%s</span></li>`,
			html.EscapeString(complaint.Text),
			html.EscapeString(complaint.Date),
		))
	}
	b.WriteString(`</ul>`)

	return b.String()
}
