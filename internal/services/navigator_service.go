package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/prefeitura-rio/app-navegador-search/internal/catalog"
	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/ranking"
	"github.com/prefeitura-rio/app-navegador-search/internal/usage"
)

// NavigatorService orquestra catálogo, tracker de uso e motor de ranking
type NavigatorService struct {
	catalog *catalog.Service
	tracker *usage.Tracker
	engine  *ranking.Engine
}

// NewNavigatorService cria o serviço e liga a invalidação de cache do
// motor às mudanças estruturais do catálogo
func NewNavigatorService(cat *catalog.Service, tracker *usage.Tracker, engine *ranking.Engine) *NavigatorService {
	s := &NavigatorService{
		catalog: cat,
		tracker: tracker,
		engine:  engine,
	}
	cat.SetOnChange(func() {
		engine.InvalidateCache(nil)
	})
	return s
}

// Search executa a busca de navegação. Query vazia produz a visão padrão
// ordenada por contexto de uso.
func (s *NavigatorService) Search(ctx context.Context, req *models.RankRequest) *models.RankResponse {
	start := time.Now()

	_, span := otel.Tracer("navigator").Start(ctx, "navigator.rank")
	defer span.End()
	span.SetAttributes(
		attribute.String("navigator.query", req.Query),
		attribute.String("navigator.category", req.Category),
	)

	nodes := s.candidateNodes(req.Category)
	version := s.catalog.Version()
	rankCtx := s.buildRankContext(req.Query, req.Category, version, nodes)

	rankStart := time.Now()
	results := s.engine.RankResults(req.Query, nodes, rankCtx)
	rankingMs := float64(time.Since(rankStart).Microseconds()) / 1000

	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	span.SetAttributes(attribute.Int("navigator.results", len(results)))

	return &models.RankResponse{
		Results: results,
		Total:   len(results),
		Query: models.QueryMeta{
			Original:   req.Query,
			Normalized: ranking.Normalize(req.Query),
			Category:   req.Category,
		},
		Timing: models.TimingMeta{
			RankingMs: rankingMs,
			TotalMs:   float64(time.Since(start).Microseconds()) / 1000,
		},
		Version: version,
	}
}

// Defaults devolve a visão padrão (sem query) para uma categoria
func (s *NavigatorService) Defaults(ctx context.Context, category string, limit int) *models.RankResponse {
	req := &models.RankRequest{Category: category, Limit: limit}
	return s.Search(ctx, req)
}

// RecordSelection registra a seleção de um nó e retorna o uso atualizado
func (s *NavigatorService) RecordSelection(id string) (int, error) {
	if !s.catalog.Has(id) {
		return 0, models.ErrNodeNotFound
	}
	return s.tracker.Record(id), nil
}

// Reload recarrega o catálogo do disco; o cache do motor é invalidado
// pelo callback de mudança
func (s *NavigatorService) Reload() error {
	return s.catalog.Reload()
}

// RegisterNodes insere nós detectados pelo coletor externo
func (s *NavigatorService) RegisterNodes(nodes []models.Node) int {
	return s.catalog.Register(nodes)
}

// Catalog devolve o conjunto corrente com uso aplicado e a versão
func (s *NavigatorService) Catalog() ([]models.Node, int64) {
	return s.candidateNodes(""), s.catalog.Version()
}

// candidateNodes monta os candidatos de uma chamada: filtro de categoria
// e contadores de uso correntes
func (s *NavigatorService) candidateNodes(category string) []models.Node {
	nodes := s.catalog.NodesByCategory(category)
	for i := range nodes {
		nodes[i].Usage = s.tracker.Count(nodes[i].ID)
	}
	return nodes
}

// buildRankContext decide a elegibilidade de cache da chamada: apenas
// buscas com query sobre candidatos exclusivamente estáticos são
// cacheáveis. Nós "dom" mudam com a página e não devem ser congelados.
func (s *NavigatorService) buildRankContext(query, category string, version int64, nodes []models.Node) *models.RankContext {
	if query == "" || len(nodes) == 0 {
		return &models.RankContext{}
	}
	for i := range nodes {
		if nodes[i].Source != models.SourceStatic {
			return &models.RankContext{}
		}
	}
	return &models.RankContext{
		CacheEligible: true,
		CacheKey:      ranking.BuildCacheKey(query, category),
		CacheVersion:  version,
	}
}
