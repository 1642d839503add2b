package catalog

import (
	"testing"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
)

const sampleCatalog = `{
	"routes": [
		{"id": "orders", "module": "Ventas", "title": "Órdenes", "url": "/ordenes"},
		{"id": "billing", "module": "Facturación", "title": "Facturas", "url": "/facturas"},
		{"id": "settings", "module": "Configuración", "title": "Ajustes", "url": "/ajustes"}
	]
}`

func newLoadedService(t *testing.T) *Service {
	t.Helper()
	service := NewService(writeCatalog(t, sampleCatalog), "")
	if err := service.Load(); err != nil {
		t.Fatalf("Load retornou erro: %v", err)
	}
	return service
}

func TestServiceLoad(t *testing.T) {
	service := newLoadedService(t)

	if service.Len() != 3 {
		t.Errorf("Len = %d, want 3", service.Len())
	}
	if service.Version() != 1 {
		t.Errorf("Version após primeira carga = %d, want 1", service.Version())
	}
	if !service.Has("orders") {
		t.Error("Has(orders) = false, want true")
	}
	if service.Has("inexistente") {
		t.Error("Has(inexistente) = true, want false")
	}

	if err := service.Reload(); err != nil {
		t.Fatalf("Reload retornou erro: %v", err)
	}
	if service.Version() != 2 {
		t.Errorf("Version após recarga = %d, want 2", service.Version())
	}
}

func TestServiceLoadNotificaMudanca(t *testing.T) {
	service := NewService(writeCatalog(t, sampleCatalog), "")

	notified := 0
	service.SetOnChange(func() { notified++ })

	if err := service.Load(); err != nil {
		t.Fatal(err)
	}
	if notified != 1 {
		t.Errorf("callbacks após Load = %d, want 1", notified)
	}
}

func TestServiceNodesDevolveCopia(t *testing.T) {
	service := newLoadedService(t)

	nodes := service.Nodes()
	nodes[0].Title = "mutado"

	again := service.Nodes()
	if again[0].Title == "mutado" {
		t.Error("mutação no slice devolvido vazou para o serviço")
	}
}

func TestServiceNodesByCategory(t *testing.T) {
	service := newLoadedService(t)

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"categoria vazia devolve tudo", "", 3},
		{"sentinela all devolve tudo", "all", 3},
		{"filtro exato", "Ventas", 1},
		{"filtro ignora caixa e acentos", "FACTURACION", 1},
		{"categoria desconhecida", "rrhh", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.NodesByCategory(tt.category)
			if len(got) != tt.want {
				t.Errorf("NodesByCategory(%q) = %d nós, want %d", tt.category, len(got), tt.want)
			}
		})
	}
}

func TestServiceRegister(t *testing.T) {
	service := newLoadedService(t)
	baseVersion := service.Version()

	notified := 0
	service.SetOnChange(func() { notified++ })

	accepted := service.Register([]models.Node{
		{Title: "Detalle de orden", URL: "/detalle"},
		{Title: "  "},
		{ID: "orders", Title: "Órdenes renovadas", URL: "/ordenes-v2"},
	})

	if accepted != 2 {
		t.Errorf("Register aceitou %d nós, want 2", accepted)
	}
	if service.Len() != 4 {
		t.Errorf("Len após registro = %d, want 4 (um upsert, um novo)", service.Len())
	}
	if service.Version() != baseVersion+1 {
		t.Errorf("Version após registro = %d, want %d", service.Version(), baseVersion+1)
	}
	if notified != 1 {
		t.Errorf("callbacks após registro = %d, want 1", notified)
	}

	// Upsert substitui o nó existente mantendo o id
	for _, node := range service.Nodes() {
		if node.ID == "orders" && node.Title != "Órdenes renovadas" {
			t.Errorf("Title após upsert = %q, want %q", node.Title, "Órdenes renovadas")
		}
	}
}

func TestServiceRegisterSomenteInelegiveis(t *testing.T) {
	service := newLoadedService(t)
	baseVersion := service.Version()

	accepted := service.Register([]models.Node{{Title: ""}})
	if accepted != 0 {
		t.Errorf("Register aceitou %d nós, want 0", accepted)
	}
	if service.Version() != baseVersion {
		t.Errorf("Version mudou sem nós aceitos: %d, want %d", service.Version(), baseVersion)
	}
}
