// Package slotstore guarda os artefatos de apresentação do dashboard. Cada
// slot é um alvo nomeado que um painel sobrescreve por inteiro; slots nunca
// são atualizados parcialmente
package slotstore

import (
	"sync"
	"time"

	"github.com/vfg2006/review-dashboard-api/internal/domain"
)

// LoadingPlaceholder é o conteúdo inicial de cada slot, mantido sempre que o
// painel correspondente não consegue renderizar
const LoadingPlaceholder = `<p class="loading">Carregando...</p>`

type entry struct {
	artifact    domain.PanelArtifact
	committedAt time.Time
}

type Store struct {
	mu    sync.RWMutex
	names []string
	slots map[string]entry
}

// New cria o store com os slots informados já semeados com o placeholder de
// carregamento
func New(names ...string) *Store {
	slots := make(map[string]entry, len(names))
	now := time.Now()
	for _, name := range names {
		slots[name] = entry{
			artifact: domain.PanelArtifact{
				Kind: domain.ArtifactMarkup,
				HTML: LoadingPlaceholder,
			},
			committedAt: now,
		}
	}

	return &Store{
		names: names,
		slots: slots,
	}
}

// Commit substitui o conteúdo do slot por inteiro
func (s *Store) Commit(slot string, artifact domain.PanelArtifact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, known := s.slots[slot]; !known {
		s.names = append(s.names, slot)
	}

	s.slots[slot] = entry{
		artifact:    artifact,
		committedAt: time.Now(),
	}
}

// Draw entrega uma especificação de gráfico ao slot indicado. Implementa o
// colaborador de charting padrão: o front-end recebe a especificação pronta
// para desenhar in-place
func (s *Store) Draw(slot string, spec domain.ChartSpec) {
	s.Commit(slot, domain.PanelArtifact{
		Kind:  domain.ArtifactChart,
		Chart: &spec,
	})
}

// Get retorna o conteúdo atual de um slot
func (s *Store) Get(slot string) (domain.SlotContent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.slots[slot]
	if !ok {
		return domain.SlotContent{}, false
	}

	return domain.SlotContent{
		Slot:        slot,
		Artifact:    e.artifact,
		CommittedAt: e.committedAt,
	}, true
}

// Snapshot retorna todos os slots na ordem em que foram semeados
func (s *Store) Snapshot() []domain.SlotContent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contents := make([]domain.SlotContent, 0, len(s.names))
	for _, name := range s.names {
		e := s.slots[name]
		contents = append(contents, domain.SlotContent{
			Slot:        name,
			Artifact:    e.artifact,
			CommittedAt: e.committedAt,
		})
	}

	return contents
}
