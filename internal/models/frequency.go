package models

import (
	"fmt"
	"sync"
	"time"
)

// FrequencyData guarda o histórico de seleções usado pelo ranking.
// Quatro mapas independentes: último acesso, contagem acumulada e
// contagens por hora do dia e dia da semana (chaves compostas "id:hora"
// e "id:dia"). O tracker de uso escreve, o motor de ranking apenas lê.
type FrequencyData struct {
	mu          sync.RWMutex
	lastAccess  map[string]time.Time
	accessCount map[string]int
	timeOfDay   map[string]int
	weekday     map[string]int
}

// NewFrequencyData cria uma estrutura de frequência vazia
func NewFrequencyData() *FrequencyData {
	return &FrequencyData{
		lastAccess:  make(map[string]time.Time),
		accessCount: make(map[string]int),
		timeOfDay:   make(map[string]int),
		weekday:     make(map[string]int),
	}
}

func timeOfDayKey(id string, hour int) string {
	return fmt.Sprintf("%s:%d", id, hour)
}

func weekdayKey(id string, day time.Weekday) string {
	return fmt.Sprintf("%s:%d", id, int(day))
}

// Touch registra uma seleção: atualiza último acesso, contagem acumulada
// e os padrões temporais derivados do instante informado
func (f *FrequencyData) Touch(id string, now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastAccess[id] = now
	f.accessCount[id]++
	f.timeOfDay[timeOfDayKey(id, now.Hour())]++
	f.weekday[weekdayKey(id, now.Weekday())]++
}

// SetLastAccess define o último acesso de um nó (hidratação de snapshots)
func (f *FrequencyData) SetLastAccess(id string, t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAccess[id] = t
}

// AddTimeOfDay incrementa a contagem de uma hora específica
func (f *FrequencyData) AddTimeOfDay(id string, hour int, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeOfDay[timeOfDayKey(id, hour)] += n
}

// AddWeekday incrementa a contagem de um dia da semana
func (f *FrequencyData) AddWeekday(id string, day time.Weekday, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weekday[weekdayKey(id, day)] += n
}

// LastAccess retorna o instante da seleção mais recente de um nó
func (f *FrequencyData) LastAccess(id string) (time.Time, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.lastAccess[id]
	return t, ok
}

// AccessCount retorna a contagem acumulada de seleções de um nó
func (f *FrequencyData) AccessCount(id string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.accessCount[id]
}

// HourCount retorna quantas seleções o nó teve na hora informada
func (f *FrequencyData) HourCount(id string, hour int) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.timeOfDay[timeOfDayKey(id, hour)]
}

// WeekdayCount retorna quantas seleções o nó teve no dia da semana informado
func (f *FrequencyData) WeekdayCount(id string, day time.Weekday) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.weekday[weekdayKey(id, day)]
}
