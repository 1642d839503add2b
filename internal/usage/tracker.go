// Package usage registra seleções de nós e alimenta o snapshot de
// frequência consumido pelo motor de ranking.
package usage

import (
	"sync"
	"time"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
)

// Tracker acumula contagens de uso por nó e mantém os padrões temporais
// do snapshot de frequência. O motor de ranking lê o snapshot; apenas o
// tracker escreve nele.
type Tracker struct {
	mu     sync.RWMutex
	counts map[string]int
	freq   *models.FrequencyData
	now    func() time.Time
}

// NewTracker cria um tracker sobre o snapshot de frequência dado
func NewTracker(freq *models.FrequencyData, now func() time.Time) *Tracker {
	if freq == nil {
		freq = models.NewFrequencyData()
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		counts: make(map[string]int),
		freq:   freq,
		now:    now,
	}
}

// Record registra uma seleção: incrementa o contador do nó e atualiza
// último acesso, contagem acumulada e padrões de hora e dia da semana.
// Retorna o contador atualizado.
func (t *Tracker) Record(id string) int {
	now := t.now()

	t.mu.Lock()
	t.counts[id]++
	count := t.counts[id]
	t.mu.Unlock()

	t.freq.Touch(id, now)
	return count
}

// Count retorna o uso acumulado de um nó
func (t *Tracker) Count(id string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[id]
}

// Frequency expõe o snapshot de frequência compartilhado
func (t *Tracker) Frequency() *models.FrequencyData {
	return t.freq
}
