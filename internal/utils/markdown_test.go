package utils

import "testing"

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "texto puro",
			input: "Listado de órdenes de venta",
			want:  "Listado de órdenes de venta",
		},
		{
			name:  "ênfase removida",
			input: "Listado **completo** de *órdenes*",
			want:  "Listado completo de órdenes",
		},
		{
			name:  "link vira texto",
			input: "Ver [órdenes](https://erp.example.com/ordenes) abiertas",
			want:  "Ver órdenes abiertas",
		},
		{
			name:  "código inline preservado como texto",
			input: "Usar el filtro `status=open`",
			want:  "Usar el filtro status=open",
		},
		{
			name:  "cabeçalho vira texto",
			input: "# Órdenes\nListado general",
			want:  "Órdenes\n\nListado general",
		},
		{
			name:  "string vazia",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
