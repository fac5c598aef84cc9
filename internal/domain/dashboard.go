package domain

import "time"

// Slots do dashboard, um por painel. Os nomes são estáveis e conhecidos pelo
// front-end que consome os artefatos.
const (
	SlotWeeklyReport     = "weeklyReport"
	SlotSentimentTrends  = "sentimentTrends"
	SlotComplaints       = "complaints"
	SlotTopThemes        = "topThemes"
	SlotReviewCategories = "reviewCategories"
	SlotVisualization    = "visualization"
)

// Recursos expostos pelo backend de análise de avaliações
const (
	ResourceWeeklyReport     = "weekly-report"
	ResourceSentimentTrends  = "sentiment-trends"
	ResourceComplaints       = "complaints"
	ResourceTopThemes        = "top-themes"
	ResourceReviewCategories = "review-categories"
)

// DashboardSlots retorna todos os slots na ordem de exibição do dashboard
func DashboardSlots() []string {
	return []string{
		SlotWeeklyReport,
		SlotSentimentTrends,
		SlotComplaints,
		SlotTopThemes,
		SlotReviewCategories,
		SlotVisualization,
	}
}

type ArtifactKind string

const (
	ArtifactMarkup ArtifactKind = "markup"
	ArtifactChart  ArtifactKind = "chart"
)

// PanelArtifact é o resultado da renderização de um painel: um fragmento HTML
// ou uma especificação de gráfico para o colaborador de charting
type PanelArtifact struct {
	Kind  ArtifactKind `json:"kind"`
	HTML  string       `json:"html,omitempty"`
	Chart *ChartSpec   `json:"chart,omitempty"`
}

// SlotContent representa o conteúdo atual de um slot do dashboard
type SlotContent struct {
	Slot        string        `json:"slot"`
	Artifact    PanelArtifact `json:"artifact"`
	CommittedAt time.Time     `json:"committed_at"`
}
