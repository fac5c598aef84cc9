package rendering

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

type TopThemesPanel struct {
	analytics analytics.Integrator
	slots     SlotCommitter
}

func NewTopThemesPanel(integrator analytics.Integrator, slots SlotCommitter) *TopThemesPanel {
	return &TopThemesPanel{
		analytics: integrator,
		slots:     slots,
	}
}

func (p *TopThemesPanel) Slot() string {
	return domain.SlotTopThemes
}

func (p *TopThemesPanel) Render(ctx context.Context) error {
	themes, err := p.analytics.GetTopThemes(ctx)
	if err != nil {
		return err
	}

	p.slots.Commit(p.Slot(), domain.PanelArtifact{
		Kind: domain.ArtifactMarkup,
		HTML: buildTopThemesMarkup(themes),
	})

	return nil
}

func buildTopThemesMarkup(themes []string) string {
	var b strings.Builder
	b.WriteString(`<ol class="themes-list">`)
	for _, theme := range themes {
		b.WriteString(fmt.Sprintf(`<li>%s</li>`, html.EscapeString(theme)))
	}
	b.WriteString(`</ol>`)

	return b.String()
}
