package catalog

import (
	"sync"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/ranking"
)

// Service mantém o conjunto corrente de nós e a versão do catálogo.
// A versão cresce a cada mudança estrutural (recarga, registro de nós) e
// é usada pelo motor de ranking para invalidar cache sem flush explícito.
type Service struct {
	mu       sync.RWMutex
	path     string
	baseURL  string
	nodes    []models.Node
	byID     map[string]int
	version  int64
	onChange func()
}

// NewService cria um serviço de catálogo apontando para um arquivo JSON
func NewService(path, baseURL string) *Service {
	return &Service{
		path:    path,
		baseURL: baseURL,
		byID:    make(map[string]int),
	}
}

// SetOnChange registra o callback disparado após mudanças estruturais
// (tipicamente a invalidação do cache do motor)
func (s *Service) SetOnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Load carrega o catálogo do arquivo configurado, substituindo o
// conjunto corrente e incrementando a versão
func (s *Service) Load() error {
	nodes, err := LoadFile(s.path, s.baseURL)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.nodes = nodes
	s.byID = make(map[string]int, len(nodes))
	for i := range nodes {
		s.byID[nodes[i].ID] = i
	}
	s.version++
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return nil
}

// Reload recarrega o catálogo do disco
func (s *Service) Reload() error {
	return s.Load()
}

// Register insere ou substitui nós vindos do coletor externo. Nós
// inelegíveis são descartados; retorna quantos foram aceitos.
func (s *Service) Register(raw []models.Node) int {
	accepted := make([]models.Node, 0, len(raw))
	for _, candidate := range raw {
		node, ok := NormalizeRegistered(candidate)
		if !ok {
			continue
		}
		accepted = append(accepted, node)
	}
	if len(accepted) == 0 {
		return 0
	}

	s.mu.Lock()
	for _, node := range accepted {
		if idx, exists := s.byID[node.ID]; exists {
			s.nodes[idx] = node
		} else {
			s.nodes = append(s.nodes, node)
			s.byID[node.ID] = len(s.nodes) - 1
		}
	}
	s.version++
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return len(accepted)
}

// Nodes devolve uma cópia do conjunto corrente
func (s *Service) Nodes() []models.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nodes := make([]models.Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// NodesByCategory devolve uma cópia filtrada por módulo. Categoria vazia
// devolve o conjunto inteiro; a comparação ignora acentos e caixa.
func (s *Service) NodesByCategory(category string) []models.Node {
	normalized := ranking.Normalize(category)
	if normalized == "" || normalized == ranking.DefaultCategory {
		return s.Nodes()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	nodes := make([]models.Node, 0)
	for i := range s.nodes {
		if ranking.Normalize(s.nodes[i].Module) == normalized {
			nodes = append(nodes, s.nodes[i])
		}
	}
	return nodes
}

// Has verifica se um nó existe no catálogo
func (s *Service) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

// Version retorna a versão corrente do catálogo
func (s *Service) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Len retorna o tamanho do conjunto corrente
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
