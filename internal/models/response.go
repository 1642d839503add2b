package models

// TimingMeta expõe tempos de processamento da requisição
type TimingMeta struct {
	RankingMs float64 `json:"ranking_ms"`
	TotalMs   float64 `json:"total_ms"`
}

// QueryMeta descreve como a query foi interpretada
type QueryMeta struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Category   string `json:"category,omitempty"`
}

// RankResponse é a resposta da busca de navegação
type RankResponse struct {
	Results []Result   `json:"results"`
	Total   int        `json:"total"`
	Query   QueryMeta  `json:"query"`
	Timing  TimingMeta `json:"timing"`
	Version int64      `json:"catalog_version"`
}

// CatalogResponse lista o catálogo corrente e sua versão
type CatalogResponse struct {
	Nodes   []Node `json:"nodes"`
	Total   int    `json:"total"`
	Version int64  `json:"version"`
}

// SelectionResponse confirma o registro de uma seleção
type SelectionResponse struct {
	ID    string `json:"id"`
	Usage int    `json:"usage"`
}
