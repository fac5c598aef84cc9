package rendering

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/vfg2006/review-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

type ReviewCategoriesPanel struct {
	analytics analytics.Integrator
	slots     SlotCommitter
}

func NewReviewCategoriesPanel(integrator analytics.Integrator, slots SlotCommitter) *ReviewCategoriesPanel {
	return &ReviewCategoriesPanel{
		analytics: integrator,
		slots:     slots,
	}
}

func (p *ReviewCategoriesPanel) Slot() string {
	return domain.SlotReviewCategories
}

func (p *ReviewCategoriesPanel) Render(ctx context.Context) error {
	categories, err := p.analytics.GetReviewCategories(ctx)
	if err != nil {
		return err
	}

	p.slots.Commit(p.Slot(), domain.PanelArtifact{
		Kind: domain.ArtifactMarkup,
		HTML: buildReviewCategoriesMarkup(categories),
	})

	return nil
}

// buildReviewCategoriesMarkup itera na ordem de inserção do documento,
// preservada por domain.ReviewCategories
func buildReviewCategoriesMarkup(categories domain.ReviewCategories) string {
	var b strings.Builder
	b.WriteString(`<ul class="categories-list">`)
	for _, category := range categories {
		b.WriteString(fmt.Sprintf(`<li>%s: %d</li>`, html.EscapeString(category.Name), category.Count))
	}
	b.WriteString(`</ul>`)

	return b.String()
}
