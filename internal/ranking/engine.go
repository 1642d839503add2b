// Package ranking implementa o motor de ranking do navegador: scoring
// textual em níveis, visão padrão por contexto de uso e cache de
// resultados com TTL e versão de catálogo. O motor é síncrono e livre de
// I/O; coleção de nós, snapshot de frequência e instante de referência
// são sempre fornecidos pelo chamador.
package ranking

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
)

// Defaults do motor
const (
	DefaultMaxResults           = 40
	DefaultCacheTTL             = 2 * time.Minute
	DefaultCacheCleanupInterval = 10 * time.Minute
)

// PathSeparator separa os segmentos do caminho hierárquico na exibição
const PathSeparator = " · "

// Options configura a criação de um motor de ranking
type Options struct {
	// MaxResults limita o tamanho da lista retornada (default: 40)
	MaxResults int
	// Frequency é o snapshot de frequência compartilhado com o tracker de
	// uso; o motor apenas lê (default: vazio)
	Frequency *models.FrequencyData
	// Weights é a calibração de pesos (default: DefaultWeights)
	Weights *Weights
	// CacheTTL é a validade das entradas de cache (default: 2 minutos)
	CacheTTL time.Duration
	// CacheCleanupInterval é o intervalo da varredura de expirados (default: 10 minutos)
	CacheCleanupInterval time.Duration
	// CacheScheduler injeta o agendador da varredura (default: time.AfterFunc)
	CacheScheduler Scheduler
	// Now injeta o provedor de instante corrente (default: time.Now)
	Now func() time.Time
	// Locale define a língua da comparação de desempate (default: espanhol)
	Locale language.Tag
}

// Engine é o motor de ranking. Todo estado mutável (o cache) pertence à
// instância; múltiplos motores independentes coexistem sem interferência.
type Engine struct {
	maxResults int
	scorer     *Scorer
	weights    *Weights
	cache      *resultCache
	now        func() time.Time
	locale     language.Tag
}

// NewEngine cria um motor de ranking com as opções dadas
func NewEngine(opts Options) *Engine {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.Weights == nil {
		opts.Weights = DefaultWeights()
	}
	if opts.Frequency == nil {
		opts.Frequency = models.NewFrequencyData()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Locale == (language.Tag{}) {
		opts.Locale = language.Spanish
	}

	return &Engine{
		maxResults: opts.MaxResults,
		scorer:     NewScorer(opts.Weights, opts.Frequency),
		weights:    opts.Weights,
		cache:      newResultCache(opts.CacheTTL, opts.CacheCleanupInterval, opts.Now, opts.CacheScheduler),
		now:        opts.Now,
		locale:     opts.Locale,
	}
}

type scoredNode struct {
	node  *models.Node
	score float64
}

// RankResults ordena os nós do catálogo contra a query. Query sem tokens
// delega para DefaultResults. Com contexto elegível a cache, uma entrada
// válida é servida verbatim, sem re-scoring.
func (e *Engine) RankResults(query string, nodes []models.Node, ctx *models.RankContext) []models.Result {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return e.DefaultResults(nodes, ctx)
	}
	if len(nodes) == 0 {
		return []models.Result{}
	}

	cacheEligible := ctx != nil && ctx.CacheEligible && ctx.CacheKey != ""
	if cacheEligible {
		if cached, ok := e.cache.Get(ctx.CacheKey, ctx.CacheVersion); ok {
			return cached
		}
	}

	now := ctx.EffectiveNow(e.now)
	compiled := CompileTokens(tokens)

	scored := make([]scoredNode, 0, len(nodes))
	for i := range nodes {
		score := e.scorer.ScoreNode(compiled, &nodes[i], now)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredNode{node: &nodes[i], score: score})
	}

	if len(scored) == 0 {
		if cacheEligible {
			e.cache.Set(ctx.CacheKey, ctx.CacheVersion, []models.Result{})
		}
		return []models.Result{}
	}

	results := e.finalize(scored)

	if cacheEligible {
		e.cache.Set(ctx.CacheKey, ctx.CacheVersion, results)
	}

	return results
}

// DefaultResults monta a visão padrão, sem query: ordena por score de
// contexto (uso, recência, padrão temporal) com o mesmo pipeline de
// separação de descontinuados, desempate e truncamento da busca textual.
func (e *Engine) DefaultResults(nodes []models.Node, ctx *models.RankContext) []models.Result {
	if len(nodes) == 0 {
		return []models.Result{}
	}

	now := ctx.EffectiveNow(e.now)

	scored := make([]scoredNode, 0, len(nodes))
	for i := range nodes {
		scored = append(scored, scoredNode{
			node:  &nodes[i],
			score: e.scorer.ContextScore(&nodes[i], now),
		})
	}

	return e.finalize(scored)
}

// finalize aplica separação ativo/descontinuado, ordenação com desempate,
// truncamento e projeção para o formato público
func (e *Engine) finalize(scored []scoredNode) []models.Result {
	ordered := e.splitAndSort(scored)
	if len(ordered) > e.maxResults {
		ordered = ordered[:e.maxResults]
	}

	results := make([]models.Result, 0, len(ordered))
	for _, item := range ordered {
		results = append(results, e.MapNodeToResult(*item.node))
	}
	return results
}

// splitAndSort separa descontinuados dos ativos, ordena cada grupo por
// score decrescente e concatena ativos seguidos de descontinuados
func (e *Engine) splitAndSort(scored []scoredNode) []scoredNode {
	active := make([]scoredNode, 0, len(scored))
	deprecated := make([]scoredNode, 0)
	for _, item := range scored {
		if IsDeprecated(item.node) {
			deprecated = append(deprecated, item)
		} else {
			active = append(active, item)
		}
	}

	collator := collate.New(e.locale, collate.Loose)
	e.sortByScore(active, collator)
	e.sortByScore(deprecated, collator)

	return append(active, deprecated...)
}

// sortByScore ordena por score decrescente; diferenças abaixo da
// tolerância de empate caem para a ordenação por categoria, path e título,
// evitando reordenações por ruído de ponto flutuante
func (e *Engine) sortByScore(items []scoredNode, collator *collate.Collator) {
	tolerance := e.weights.TieTolerance
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		diff := a.score - b.score
		if diff < tolerance && diff > -tolerance {
			return compareByCategoryAndPath(collator, a.node, b.node) < 0
		}
		return diff > 0
	})
}

// compareByCategoryAndPath é o desempate determinístico: descontinuados
// depois, então categoria, path e título em comparação sensível à língua
func compareByCategoryAndPath(collator *collate.Collator, a, b *models.Node) int {
	deprecatedA := IsDeprecated(a)
	deprecatedB := IsDeprecated(b)
	if deprecatedA != deprecatedB {
		if deprecatedA {
			return 1
		}
		return -1
	}

	if cmp := collator.CompareString(Normalize(a.Module), Normalize(b.Module)); cmp != 0 {
		return cmp
	}
	if cmp := collator.CompareString(strings.TrimSpace(a.PathLabel), strings.TrimSpace(b.PathLabel)); cmp != 0 {
		return cmp
	}
	return collator.CompareString(strings.TrimSpace(a.Title), strings.TrimSpace(b.Title))
}

// MapNodeToResult projeta um nó para o formato público de resultado.
// PathLabel cai para os segmentos do caminho unidos pelo separador, ou
// para o título quando o nó não tem caminho.
func (e *Engine) MapNodeToResult(node models.Node) models.Result {
	pathLabel := node.PathLabel
	if pathLabel == "" {
		if len(node.Tag) > 0 {
			pathLabel = strings.Join(node.Tag, PathSeparator)
		} else {
			pathLabel = node.Title
		}
	}

	tag := make([]string, len(node.Tag))
	copy(tag, node.Tag)

	return models.Result{
		ID:          node.ID,
		Title:       node.Title,
		Description: node.Description,
		URL:         node.URL,
		Action:      node.Action,
		PathLabel:   pathLabel,
		Tag:         tag,
		Module:      node.Module,
		Usage:       node.Usage,
	}
}

// BuildCacheKey expõe a montagem da chave de cache no motor
func (e *Engine) BuildCacheKey(query, category string) string {
	return BuildCacheKey(query, category)
}

// InvalidateCache limpa o cache inteiro ou apenas as entradas aceitas
// pelo predicado. Deve ser chamado pelo dono do catálogo após recargas.
func (e *Engine) InvalidateCache(predicate func(key string, entry CacheEntry) bool) {
	e.cache.Invalidate(predicate)
}

// CacheSize retorna o número de entradas correntes do cache
func (e *Engine) CacheSize() int {
	return e.cache.size()
}

// Close cancela a varredura de cache agendada
func (e *Engine) Close() {
	e.cache.Close()
}
