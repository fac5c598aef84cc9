package domain

import "github.com/pkg/errors"

// SentimentTrends é a série temporal de sentimento: datas e pontuações
// alinhadas por índice
type SentimentTrends struct {
	Dates  []string  `json:"dates"`
	Scores []float64 `json:"sentiment_scores"`
}

// Validate garante o alinhamento entre datas e pontuações
func (t *SentimentTrends) Validate() error {
	if t.Dates == nil || t.Scores == nil {
		return errors.New("sentiment-trends sem dates ou sentiment_scores")
	}

	if len(t.Dates) != len(t.Scores) {
		return errors.Errorf(
			"sentiment-trends desalinhado: %d datas para %d pontuações",
			len(t.Dates), len(t.Scores),
		)
	}

	return nil
}
