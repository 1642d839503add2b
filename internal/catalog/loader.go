// Package catalog carrega e mantém o conjunto de rotas navegáveis.
// Toda entrada passa pela fábrica de normalização antes de chegar ao
// motor de ranking, garantindo forma uniforme (campos derivados sempre
// preenchidos, procedência válida, destino presente).
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/ranking"
	"github.com/prefeitura-rio/app-navegador-search/internal/utils"
)

// Route é o formato bruto de uma rota no arquivo de catálogo JSON
type Route struct {
	ID          string   `json:"id"`
	Module      string   `json:"module"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Action      string   `json:"action"`
	Tag         []string `json:"tag"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
}

// File é o envelope do arquivo de catálogo
type File struct {
	Routes []Route `json:"routes"`
}

// ActionNavigate é a ação padrão de rotas com URL
const ActionNavigate = "navigate"

// StatusActive é o status padrão de rotas sem status explícito
const StatusActive = "active"

// LoadFile lê um catálogo JSON e devolve os nós normalizados.
// Rotas inelegíveis (sem título ou sem destino) são descartadas.
func LoadFile(path, baseURL string) ([]models.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}

	nodes := make([]models.Node, 0, len(file.Routes))
	for _, route := range file.Routes {
		node, ok := NewNode(route, baseURL)
		if !ok {
			continue
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// NewNode é a fábrica de normalização de rotas estáticas. Devolve false
// quando a rota é inelegível: sem id, sem título ou sem URL e sem ação.
func NewNode(route Route, baseURL string) (models.Node, bool) {
	title := strings.TrimSpace(route.Title)
	if strings.TrimSpace(route.ID) == "" || title == "" {
		return models.Node{}, false
	}

	resolvedURL := utils.ResolveURL(route.URL, baseURL)
	action := strings.TrimSpace(route.Action)
	if action == "" && resolvedURL != "" {
		action = ActionNavigate
	}
	if resolvedURL == "" && action == "" {
		return models.Node{}, false
	}

	status := strings.TrimSpace(route.Status)
	if status == "" {
		status = StatusActive
	}

	node := models.Node{
		ID:          strings.TrimSpace(route.ID),
		Title:       title,
		Module:      strings.TrimSpace(route.Module),
		Description: utils.StripMarkdown(route.Description),
		URL:         resolvedURL,
		Action:      action,
		Source:      models.SourceStatic,
		Status:      status,
	}

	fillDerived(&node, route.Tag)
	return node, true
}

// NormalizeRegistered normaliza um nó registrado pelo coletor externo
// (procedência "dom"). Nós sem id recebem um uuid; a elegibilidade segue
// a mesma regra das rotas estáticas.
func NormalizeRegistered(raw models.Node) (models.Node, bool) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return models.Node{}, false
	}
	if strings.TrimSpace(raw.URL) == "" && strings.TrimSpace(raw.Action) == "" {
		return models.Node{}, false
	}
	if raw.Source != "" && !raw.Source.IsValid() {
		return models.Node{}, false
	}

	node := models.Node{
		ID:          strings.TrimSpace(raw.ID),
		Title:       title,
		Module:      strings.TrimSpace(raw.Module),
		Description: utils.StripMarkdown(raw.Description),
		URL:         strings.TrimSpace(raw.URL),
		Action:      strings.TrimSpace(raw.Action),
		Source:      models.SourceDOM,
		Status:      raw.Status,
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	if node.Status == "" {
		node.Status = StatusActive
	}

	fillDerived(&node, raw.Tag)
	return node, true
}

// fillDerived preenche os campos derivados de matching e exibição
func fillDerived(node *models.Node, tag []string) {
	cleaned := make([]string, 0, len(tag))
	for _, segment := range tag {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			cleaned = append(cleaned, segment)
		}
	}

	node.Tag = cleaned
	node.TitleLower = ranking.Normalize(node.Title)
	node.TagLower = ranking.Normalize(strings.Join(cleaned, " "))
	if len(cleaned) > 0 {
		node.PathLabel = strings.Join(cleaned, ranking.PathSeparator)
		node.Depth = len(cleaned) - 1
	} else {
		node.PathLabel = node.Title
		node.Depth = 0
	}
}
