package utils

import "testing"

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		baseURL string
		want    string
	}{
		{
			name:    "URL vazia",
			url:     "",
			baseURL: "https://erp.example.com",
			want:    "",
		},
		{
			name:    "somente espaços",
			url:     "   ",
			baseURL: "https://erp.example.com",
			want:    "",
		},
		{
			name:    "URL absoluta passa intacta",
			url:     "https://otro.example.com/ordenes",
			baseURL: "https://erp.example.com",
			want:    "https://otro.example.com/ordenes",
		},
		{
			name:    "URL absoluta http passa intacta",
			url:     "http://otro.example.com/ordenes",
			baseURL: "https://erp.example.com",
			want:    "http://otro.example.com/ordenes",
		},
		{
			name:    "caminho relativo resolve contra a base",
			url:     "/ventas/ordenes",
			baseURL: "https://erp.example.com",
			want:    "https://erp.example.com/ventas/ordenes",
		},
		{
			name:    "fragmento resolve contra a base",
			url:     "#/ordenes",
			baseURL: "https://erp.example.com/app",
			want:    "https://erp.example.com/app#/ordenes",
		},
		{
			name:    "sem base devolve a original",
			url:     "/ventas/ordenes",
			baseURL: "",
			want:    "/ventas/ordenes",
		},
		{
			name:    "base mal-formada devolve a original",
			url:     "/ventas",
			baseURL: "://quebrada",
			want:    "/ventas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveURL(tt.url, tt.baseURL)
			if got != tt.want {
				t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.url, tt.baseURL, got, tt.want)
			}
		})
	}
}
