package models

// RankRequest representa uma requisição de busca no catálogo
// @Description Parâmetros da busca de navegação. Query vazia retorna a visão padrão.
type RankRequest struct {
	// Query de busca. Vazia retorna a visão padrão ordenada por contexto de uso.
	Query string `form:"q" example:"ordenes de venta"`
	// Filtrar por categoria (módulo). Case-insensitive, acentos ignorados.
	Category string `form:"categoria" example:"ventas"`
	// Limite de resultados (default: configuração do motor)
	Limit int `form:"limit" example:"20" minimum:"1" maximum:"100"`
}

// Validate aplica defaults e limites à requisição
func (r *RankRequest) Validate(maxResults int) {
	if r.Limit < 1 || r.Limit > maxResults {
		r.Limit = maxResults
	}
}

// SelectionRequest registra a seleção de um nó pelo usuário
// @Description Evento de seleção usado para alimentar frequência e recência.
type SelectionRequest struct {
	// Identificador do nó selecionado (obrigatório)
	ID string `json:"id" binding:"required" example:"orders"`
}

// RegisterNodesRequest registra nós descobertos na página (procedência "dom")
// @Description Lote de nós detectados pelo coletor externo.
type RegisterNodesRequest struct {
	// Nós a registrar. Campos derivados são recalculados pela normalização.
	Nodes []Node `json:"nodes" binding:"required"`
}
