package ranking

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents remove acentos e diacríticos de um texto
// Exemplo: "Órdenes" -> "Ordenes", "configuración" -> "configuracion"
func RemoveAccents(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return normalized
}

// Normalize remove acentos e converte para minúsculas
func Normalize(text string) string {
	return strings.ToLower(RemoveAccents(text))
}

// Tokenize normaliza a query e a quebra em tokens por espaços.
// Query vazia (ou só espaços) produz zero tokens, o que sinaliza ao
// chamador que deve usar o ranking padrão sem texto.
func Tokenize(query string) []string {
	return strings.Fields(Normalize(query))
}

// DefaultCategory é a categoria sentinela usada quando nenhuma é informada
const DefaultCategory = "all"

// BuildCacheKey monta a chave de cache composta "categoria::query".
// Ambos os lados são normalizados (sem acentos, minúsculas, sem espaços
// nas pontas); categoria vazia vira a sentinela "all".
func BuildCacheKey(query, category string) string {
	normalizedQuery := strings.TrimSpace(Normalize(query))
	normalizedCategory := strings.TrimSpace(Normalize(category))
	if normalizedCategory == "" {
		normalizedCategory = DefaultCategory
	}
	return normalizedCategory + "::" + normalizedQuery
}
