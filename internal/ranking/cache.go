package ranking

import (
	"sync"
	"time"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
)

// Timer é o handle cancelável de uma limpeza agendada
type Timer interface {
	Stop() bool
}

// Scheduler abstrai o agendamento da limpeza periódica do cache,
// permitindo testes determinísticos sem timers reais
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler retorna o scheduler padrão baseado em time.AfterFunc
func SystemScheduler() Scheduler {
	return systemScheduler{}
}

// CacheEntry é uma entrada do cache de resultados
type CacheEntry struct {
	Results   []models.Result
	Timestamp time.Time
	Version   int64
}

// resultCache guarda listas de resultados por chave categoria::query,
// com expiração por TTL e invalidação por versão do catálogo. A limpeza
// proativa se auto-agenda a cada escrita e só se re-arma enquanto houver
// entradas, evitando timer ocioso.
type resultCache struct {
	mu              sync.Mutex
	entries         map[string]*CacheEntry
	ttl             time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
	scheduler       Scheduler
	timer           Timer
}

func newResultCache(ttl, cleanupInterval time.Duration, now func() time.Time, scheduler Scheduler) *resultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCacheCleanupInterval
	}
	if now == nil {
		now = time.Now
	}
	if scheduler == nil {
		scheduler = SystemScheduler()
	}
	return &resultCache{
		entries:         make(map[string]*CacheEntry),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		now:             now,
		scheduler:       scheduler,
	}
}

// Get busca uma entrada válida; versão divergente ou idade acima do TTL
// contam como miss e removem a entrada
func (c *resultCache) Get(key string, version int64) ([]models.Result, bool) {
	if key == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if entry.Version != version {
		delete(c.entries, key)
		return nil, false
	}
	if c.now().Sub(entry.Timestamp) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	results := make([]models.Result, len(entry.Results))
	copy(results, entry.Results)
	return results, true
}

// Set grava uma lista de resultados sob a chave e versão dadas
func (c *resultCache) Set(key string, version int64, results []models.Result) {
	if key == "" {
		return
	}

	stored := make([]models.Result, len(results))
	copy(stored, results)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &CacheEntry{
		Results:   stored,
		Timestamp: c.now(),
		Version:   version,
	}
	c.scheduleCleanup()
}

// Invalidate limpa o cache inteiro, ou apenas as entradas para as quais o
// predicado retorna true
func (c *resultCache) Invalidate(predicate func(key string, entry CacheEntry) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return
	}
	if predicate == nil {
		c.entries = make(map[string]*CacheEntry)
		return
	}
	for key, entry := range c.entries {
		if predicate(key, *entry) {
			delete(c.entries, key)
		}
	}
}

// Close cancela a limpeza agendada, se houver
func (c *resultCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// scheduleCleanup agenda a próxima varredura; exige c.mu
func (c *resultCache) scheduleCleanup() {
	if c.timer != nil {
		return
	}
	c.timer = c.scheduler.AfterFunc(c.cleanupInterval, c.runCleanup)
}

func (c *resultCache) runCleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timer = nil
	expiry := c.now().Add(-c.ttl)
	for key, entry := range c.entries {
		if entry.Timestamp.Before(expiry) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) > 0 {
		c.scheduleCleanup()
	}
}

// size retorna o número de entradas correntes (inclui expiradas ainda não varridas)
func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
