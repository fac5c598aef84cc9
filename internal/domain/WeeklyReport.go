package domain

import "github.com/pkg/errors"

// SentimentDistribution guarda os percentuais por sentimento retornados pelo
// backend. Os valores são repassados como recebidos, sem renormalização
type SentimentDistribution struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// WeeklyReport é o resumo semanal de avaliações retornado pelo backend
type WeeklyReport struct {
	TotalReviews          int                    `json:"total_reviews"`
	AverageRating         float64                `json:"average_rating"`
	SentimentDistribution *SentimentDistribution `json:"sentiment_distribution"`
}

// Validate garante o formato mínimo esperado antes do relatório chegar aos
// renderizadores
func (r *WeeklyReport) Validate() error {
	if r.SentimentDistribution == nil {
		return errors.New("weekly-report sem sentiment_distribution")
	}

	if r.TotalReviews < 0 {
		return errors.Errorf("weekly-report com total_reviews negativo: %d", r.TotalReviews)
	}

	return nil
}
