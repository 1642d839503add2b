package models

// NodeSource indica a procedência de um nó do catálogo
type NodeSource string

const (
	// SourceStatic identifica nós carregados do catálogo estático
	SourceStatic NodeSource = "static"
	// SourceDOM identifica nós registrados a partir de varredura da página
	SourceDOM NodeSource = "dom"
)

// IsValid verifica se a procedência é conhecida
func (s NodeSource) IsValid() bool {
	switch s {
	case SourceStatic, SourceDOM:
		return true
	}
	return false
}

// StatusLegacy marca um nó como descontinuado independente do módulo
const StatusLegacy = "legacy"

// Node representa uma entrada navegável do catálogo.
// Todo nó que entra no motor de ranking passa pela fábrica de normalização
// do pacote catalog, portanto os campos derivados (TitleLower, TagLower,
// PathLabel, Depth) estão sempre preenchidos de forma uniforme.
type Node struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	TitleLower  string     `json:"-"`
	Tag         []string   `json:"tag,omitempty"`
	TagLower    string     `json:"-"`
	PathLabel   string     `json:"path_label,omitempty"`
	Module      string     `json:"module,omitempty"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url,omitempty"`
	Action      string     `json:"action,omitempty"`
	Source      NodeSource `json:"source"`
	Usage       int        `json:"usage"`
	Depth       int        `json:"depth"`
	Status      string     `json:"status,omitempty"`
}

// Result é a projeção pública de um nó, pronta para exibição
type Result struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	Action      string   `json:"action,omitempty"`
	PathLabel   string   `json:"path_label"`
	Tag         []string `json:"tag"`
	Module      string   `json:"module"`
	Usage       int      `json:"usage"`
}
