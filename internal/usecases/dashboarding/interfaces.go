package dashboarding

import "context"

// Dashboarder é o ponto de entrada do ciclo de vida do dashboard, acionado
// pelo sinal de page-ready do ambiente hospedeiro
type Dashboarder interface {
	// Load despacha todos os painéis concorrentemente e aguarda todos
	// assentarem (sucesso ou ausência)
	Load(ctx context.Context) (*LoadResult, error)

	// GetStatus retorna o estado atual do orquestrador
	GetStatus() map[string]any
}
