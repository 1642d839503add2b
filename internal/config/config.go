// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta do servidor HTTP (default: 8080)
//
// ## Catálogo
//   - CATALOG_PATH: Caminho do arquivo JSON de catálogo (obrigatória)
//   - CATALOG_WATCH: Recarregar o catálogo quando o arquivo mudar (default: true)
//   - NAVIGATOR_BASE_URL: Base para resolver URLs relativas do catálogo
//
// ## Ranking
//   - RANKING_MAX_RESULTS: Máximo de resultados por resposta (default: 40)
//   - RANKING_CACHE_TTL_SECONDS: TTL do cache de resultados em segundos (default: 120)
//   - RANKING_CACHE_CLEANUP_SECONDS: Intervalo de limpeza do cache em segundos (default: 600)
//   - RANKING_CALIBRATION_PATH: Arquivo JSON de calibração de pesos (opcional)
//   - RANKING_LOCALE: Locale das comparações de desempate (default: es)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP de traces (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor OTLP (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Catálogo
	CatalogPath      string
	CatalogWatch     bool
	NavigatorBaseURL string

	// Ranking
	Ranking RankingConfig

	// Tracing
	TracingEnabled  bool
	TracingEndpoint string
}

// RankingConfig agrupa os parâmetros operacionais do motor de ranking
type RankingConfig struct {
	// Máximo de resultados por resposta (default 40)
	MaxResults int

	// TTL do cache de resultados em segundos (default 120)
	CacheTTLSeconds int

	// Intervalo de limpeza do cache em segundos (default 600)
	CacheCleanupSeconds int

	// Arquivo de calibração de pesos; vazio usa os defaults embutidos
	CalibrationPath string

	// Locale das comparações de desempate (default "es")
	Locale string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		// Catálogo
		CatalogWatch:     getEnv("CATALOG_WATCH", "true") == "true",
		NavigatorBaseURL: getEnv("NAVIGATOR_BASE_URL", ""),

		// Ranking
		Ranking: RankingConfig{
			MaxResults:          getEnvInt("RANKING_MAX_RESULTS", 40),
			CacheTTLSeconds:     getEnvInt("RANKING_CACHE_TTL_SECONDS", 120),
			CacheCleanupSeconds: getEnvInt("RANKING_CACHE_CLEANUP_SECONDS", 600),
			CalibrationPath:     getEnv("RANKING_CALIBRATION_PATH", ""),
			Locale:              getEnv("RANKING_LOCALE", "es"),
		},

		// Tracing
		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	if cfg.CatalogPath == "" {
		log.Fatal("CATALOG_PATH environment variable is required but not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
