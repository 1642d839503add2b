package ranking

import (
	"reflect"
	"testing"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"texto com acentos", "Órdenes de façón", "Ordenes de facon"},
		{"acento agudo", "configuración", "configuracion"},
		{"texto sem acentos", "panel de ventas", "panel de ventas"},
		{"string vazia", "", ""},
		{"maiúsculas acentuadas", "ÓRDENES", "ORDENES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveAccents(tt.input)
			if got != tt.want {
				t.Errorf("RemoveAccents(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"acentos e caixa", "Órdenes de Venta", "ordenes de venta"},
		{"somente caixa", "VENTAS", "ventas"},
		{"vazio", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"query normal", "Órdenes de Venta", []string{"ordenes", "de", "venta"}},
		{"espaços múltiplos", "  panel   ventas  ", []string{"panel", "ventas"}},
		{"query vazia", "", nil},
		{"somente espaços", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     string
	}{
		{"categoria e query", "Órdenes", "Ventas", "ventas::ordenes"},
		{"categoria vazia vira sentinela", "ordenes", "", "all::ordenes"},
		{"categoria só de espaços vira sentinela", "ordenes", "   ", "all::ordenes"},
		{"query vazia", "", "ventas", "ventas::"},
		{"ambos normalizados", " ÓRDENES ", " VENTAS ", "ventas::ordenes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCacheKey(tt.query, tt.category)
			if got != tt.want {
				t.Errorf("BuildCacheKey(%q, %q) = %q, want %q", tt.query, tt.category, got, tt.want)
			}
		})
	}
}
