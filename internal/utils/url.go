package utils

import (
	"net/url"
	"strings"
)

// ResolveURL resolve a URL de uma rota do catálogo contra a base do
// sistema navegado. Rotas absolutas passam intactas; rotas relativas são
// unidas à base. Base vazia ou URL mal-formada devolvem a original.
func ResolveURL(routeURL, baseURL string) string {
	trimmed := strings.TrimSpace(routeURL)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}

	if baseURL == "" {
		return trimmed
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return trimmed
	}
	ref, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	return base.ResolveReference(ref).String()
}
