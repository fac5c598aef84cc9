// Package dashboarding orquestra a carga do dashboard: os seis painéis são
// despachados concorrentemente e cada um assenta de forma independente. A
// falha de um painel nunca cancela nem atrasa os demais
package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/review-dashboard-api/internal/usecases/rendering"
	"github.com/vfg2006/review-dashboard-api/pkg/utils"
)

// ErrLoadInProgress é retornado quando uma carga é acionada enquanto outra
// ainda não assentou. Execuções sobrepostas disputariam os mesmos slots
var ErrLoadInProgress = errors.New("carga do dashboard já está em execução")

type PanelStatus string

const (
	// PanelStatusCommitted indica que o painel comitou seu artefato no slot
	PanelStatusCommitted PanelStatus = "committed"
	// PanelStatusSkipped indica ausência: o slot manteve o conteúdo anterior
	PanelStatusSkipped PanelStatus = "skipped"
)

type PanelResult struct {
	Slot       string      `json:"slot"`
	Status     PanelStatus `json:"status"`
	Error      string      `json:"error,omitempty"`
	DurationMS int64       `json:"duration_ms"`
}

type LoadResult struct {
	RunID       string        `json:"run_id"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	Panels      []PanelResult `json:"panels"`
}

// Committed conta quantos painéis comitaram nesta carga
func (r *LoadResult) Committed() int {
	count := 0
	for _, panel := range r.Panels {
		if panel.Status == PanelStatusCommitted {
			count++
		}
	}
	return count
}

// Observer recebe o desfecho de cada painel assim que ele assenta. Permite ao
// hospedeiro sinalizar falhas sem alterar a semântica de carga
type Observer func(PanelResult)

type Service struct {
	panels   []rendering.Panel
	observer Observer

	loadMutex           sync.Mutex
	loadRunning         bool
	lastRunID           string
	lastLoadStartedAt   time.Time
	lastLoadCompletedAt time.Time
}

type Option func(*Service)

func WithObserver(observer Observer) Option {
	return func(s *Service) {
		s.observer = observer
	}
}

func NewService(panels []rendering.Panel, opts ...Option) *Service {
	service := &Service{
		panels: panels,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *Service) Load(ctx context.Context) (*LoadResult, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da carga")
	}

	s.loadMutex.Lock()
	if s.loadRunning {
		s.loadMutex.Unlock()
		logrus.Warn("dashboard: carga já em execução, ignorando novo gatilho")
		return nil, ErrLoadInProgress
	}
	s.loadRunning = true
	startedAt := time.Now()
	s.lastRunID = runID
	s.lastLoadStartedAt = startedAt
	s.loadMutex.Unlock()

	defer func() {
		s.loadMutex.Lock()
		s.loadRunning = false
		s.lastLoadCompletedAt = time.Now()
		s.loadMutex.Unlock()
	}()

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"panels": len(s.panels),
	}).Info("dashboard: iniciando carga dos painéis")

	wg := sync.WaitGroup{}
	results := make(chan PanelResult, len(s.panels))
	for _, panel := range s.panels {
		wg.Add(1)
		go func(p rendering.Panel) {
			defer wg.Done()
			results <- s.renderPanel(ctx, p)
		}(panel)
	}

	wg.Wait()
	close(results)

	resultBySlot := make(map[string]PanelResult, len(s.panels))
	for result := range results {
		resultBySlot[result.Slot] = result
	}

	// Relatório na ordem de despacho, independente da ordem de conclusão
	panelResults := make([]PanelResult, 0, len(s.panels))
	for _, panel := range s.panels {
		panelResults = append(panelResults, resultBySlot[panel.Slot()])
	}

	completedAt := time.Now()
	result := &LoadResult{
		RunID:       runID,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
		Panels:      panelResults,
	}

	logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"committed":   result.Committed(),
		"skipped":     len(panelResults) - result.Committed(),
		"duration_ms": completedAt.Sub(startedAt).Milliseconds(),
	}).Info("dashboard: carga dos painéis concluída")

	return result, nil
}

// renderPanel executa um painel e registra seu desfecho. A ausência já foi
// diagnosticada na fronteira do integrator; aqui ela vira apenas um status
func (s *Service) renderPanel(ctx context.Context, panel rendering.Panel) PanelResult {
	started := time.Now()

	result := PanelResult{
		Slot:   panel.Slot(),
		Status: PanelStatusCommitted,
	}

	if err := panel.Render(ctx); err != nil {
		result.Status = PanelStatusSkipped
		result.Error = err.Error()
	}

	result.DurationMS = time.Since(started).Milliseconds()

	if s.observer != nil {
		s.observer(result)
	}

	return result
}

// GetStatus retorna o estado atual do orquestrador
func (s *Service) GetStatus() map[string]any {
	s.loadMutex.Lock()
	defer s.loadMutex.Unlock()

	state := "idle"
	if s.loadRunning {
		state = "running"
	}

	return map[string]any{
		"state":                  state,
		"panels":                 len(s.panels),
		"last_run_id":            s.lastRunID,
		"last_load_started_at":   s.lastLoadStartedAt,
		"last_load_completed_at": s.lastLoadCompletedAt,
	}
}
