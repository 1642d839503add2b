package models

import "errors"

// Erros de domínio expostos pela API
var (
	// ErrNodeNotFound indica seleção de um id inexistente no catálogo
	ErrNodeNotFound = errors.New("nó não encontrado no catálogo")
	// ErrCatalogUnavailable indica falha ao carregar o catálogo
	ErrCatalogUnavailable = errors.New("catálogo indisponível")
)
