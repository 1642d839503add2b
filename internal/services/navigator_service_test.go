package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-navegador-search/internal/catalog"
	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/ranking"
	"github.com/prefeitura-rio/app-navegador-search/internal/usage"
)

const testCatalog = `{
	"routes": [
		{"id": "orders", "module": "Ventas", "title": "Órdenes", "url": "/ordenes"},
		{"id": "orders-new", "module": "Ventas", "title": "Órdenes de venta", "url": "/ordenes/nueva"},
		{"id": "billing", "module": "Facturación", "title": "Facturas", "url": "/facturas"}
	]
}`

func newTestService(t *testing.T) (*NavigatorService, *ranking.Engine) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	cat := catalog.NewService(path, "https://erp.example.com")
	if err := cat.Load(); err != nil {
		t.Fatalf("Load retornou erro: %v", err)
	}

	tracker := usage.NewTracker(models.NewFrequencyData(), func() time.Time {
		return time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	})
	engine := ranking.NewEngine(ranking.Options{
		Frequency: tracker.Frequency(),
	})
	t.Cleanup(engine.Close)

	return NewNavigatorService(cat, tracker, engine), engine
}

func TestSearch(t *testing.T) {
	service, _ := newTestService(t)

	resp := service.Search(context.Background(), &models.RankRequest{Query: "Órdenes"})

	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	if resp.Results[0].ID != "orders" {
		t.Errorf("primeiro resultado = %q, want %q", resp.Results[0].ID, "orders")
	}
	if resp.Query.Normalized != "ordenes" {
		t.Errorf("Query.Normalized = %q, want %q", resp.Query.Normalized, "ordenes")
	}
	if resp.Version != 1 {
		t.Errorf("Version = %d, want 1", resp.Version)
	}
}

func TestSearchFiltraPorCategoria(t *testing.T) {
	service, _ := newTestService(t)

	resp := service.Search(context.Background(), &models.RankRequest{Query: "facturas", Category: "facturacion"})
	if resp.Total != 1 || resp.Results[0].ID != "billing" {
		t.Errorf("resultados = %+v, want apenas billing", resp.Results)
	}

	resp = service.Search(context.Background(), &models.RankRequest{Query: "facturas", Category: "ventas"})
	if resp.Total != 0 {
		t.Errorf("Total fora da categoria = %d, want 0", resp.Total)
	}
}

func TestSearchAplicaLimite(t *testing.T) {
	service, _ := newTestService(t)

	resp := service.Search(context.Background(), &models.RankRequest{Query: "ordenes", Limit: 1})
	if resp.Total != 1 {
		t.Errorf("Total com limite 1 = %d, want 1", resp.Total)
	}
}

func TestSearchCacheiaApenasCatalogoEstatico(t *testing.T) {
	service, engine := newTestService(t)

	// Catálogo só com nós estáticos: a busca entra no cache
	service.Search(context.Background(), &models.RankRequest{Query: "ordenes"})
	if engine.CacheSize() != 1 {
		t.Fatalf("CacheSize após busca estática = %d, want 1", engine.CacheSize())
	}

	// Registro de nó dom invalida o cache e torna buscas seguintes inelegíveis
	service.RegisterNodes([]models.Node{{Title: "Detalle abierto", URL: "/detalle"}})
	if engine.CacheSize() != 0 {
		t.Fatalf("CacheSize após registro de nó dom = %d, want 0", engine.CacheSize())
	}

	service.Search(context.Background(), &models.RankRequest{Query: "ordenes"})
	if engine.CacheSize() != 0 {
		t.Errorf("CacheSize com candidato dom = %d, want 0", engine.CacheSize())
	}
}

func TestSearchQueryVaziaNaoCacheia(t *testing.T) {
	service, engine := newTestService(t)

	resp := service.Search(context.Background(), &models.RankRequest{})
	if resp.Total != 3 {
		t.Errorf("Total da visão padrão = %d, want 3", resp.Total)
	}
	if engine.CacheSize() != 0 {
		t.Errorf("CacheSize após visão padrão = %d, want 0", engine.CacheSize())
	}
}

func TestDefaultsOrdenaPorUso(t *testing.T) {
	service, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		if _, err := service.RecordSelection("billing"); err != nil {
			t.Fatal(err)
		}
	}

	resp := service.Defaults(context.Background(), "", 0)
	if resp.Results[0].ID != "billing" {
		t.Errorf("primeiro da visão padrão = %q, want %q", resp.Results[0].ID, "billing")
	}
	if resp.Results[0].Usage != 3 {
		t.Errorf("Usage do mais usado = %d, want 3", resp.Results[0].Usage)
	}
}

func TestRecordSelection(t *testing.T) {
	service, _ := newTestService(t)

	count, err := service.RecordSelection("orders")
	if err != nil {
		t.Fatalf("RecordSelection retornou erro: %v", err)
	}
	if count != 1 {
		t.Errorf("usage = %d, want 1", count)
	}

	if _, err := service.RecordSelection("inexistente"); !errors.Is(err, models.ErrNodeNotFound) {
		t.Errorf("RecordSelection de nó desconhecido = %v, want ErrNodeNotFound", err)
	}
}

func TestReloadInvalidaCache(t *testing.T) {
	service, engine := newTestService(t)

	service.Search(context.Background(), &models.RankRequest{Query: "ordenes"})
	if engine.CacheSize() != 1 {
		t.Fatalf("CacheSize antes da recarga = %d, want 1", engine.CacheSize())
	}

	if err := service.Reload(); err != nil {
		t.Fatalf("Reload retornou erro: %v", err)
	}
	if engine.CacheSize() != 0 {
		t.Errorf("CacheSize após recarga = %d, want 0", engine.CacheSize())
	}
}

func TestCatalog(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.RecordSelection("orders"); err != nil {
		t.Fatal(err)
	}

	nodes, version := service.Catalog()
	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3", len(nodes))
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	for _, node := range nodes {
		if node.ID == "orders" && node.Usage != 1 {
			t.Errorf("Usage de orders = %d, want 1", node.Usage)
		}
	}
}
