package main

import (
	"log"
	"time"

	"golang.org/x/text/language"

	_ "github.com/prefeitura-rio/app-navegador-search/docs"
	"github.com/prefeitura-rio/app-navegador-search/internal/api/routes"
	"github.com/prefeitura-rio/app-navegador-search/internal/catalog"
	"github.com/prefeitura-rio/app-navegador-search/internal/config"
	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/observability"
	"github.com/prefeitura-rio/app-navegador-search/internal/ranking"
	"github.com/prefeitura-rio/app-navegador-search/internal/services"
	"github.com/prefeitura-rio/app-navegador-search/internal/usage"
)

// @title           Navegador de Comandos API
// @version         1.0
// @description     API de ranking para paleta de comandos de navegação: relevância textual em camadas combinada com sinais de uso, recência e padrões temporais
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-navegador-search

func main() {

	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	cat := catalog.NewService(cfg.CatalogPath, cfg.NavigatorBaseURL)
	if err := cat.Load(); err != nil {
		log.Fatalf("Erro ao carregar catálogo: %v", err)
	}
	log.Printf("Catálogo carregado: %d nós (versão %d)", cat.Len(), cat.Version())

	weights := ranking.DefaultWeights()
	if cfg.Ranking.CalibrationPath != "" {
		loaded, err := ranking.LoadCalibration(cfg.Ranking.CalibrationPath)
		if err != nil {
			log.Printf("Calibração inválida, usando pesos padrão: %v", err)
		} else {
			weights = loaded
		}
	}

	locale, err := language.Parse(cfg.Ranking.Locale)
	if err != nil {
		log.Printf("Locale %q inválido, usando es: %v", cfg.Ranking.Locale, err)
		locale = language.Spanish
	}

	tracker := usage.NewTracker(models.NewFrequencyData(), nil)
	engine := ranking.NewEngine(ranking.Options{
		MaxResults:           cfg.Ranking.MaxResults,
		Frequency:            tracker.Frequency(),
		Weights:              weights,
		CacheTTL:             time.Duration(cfg.Ranking.CacheTTLSeconds) * time.Second,
		CacheCleanupInterval: time.Duration(cfg.Ranking.CacheCleanupSeconds) * time.Second,
		Locale:               locale,
	})
	defer engine.Close()

	service := services.NewNavigatorService(cat, tracker, engine)

	if cfg.CatalogWatch {
		watcher, err := catalog.NewWatcher(cat)
		if err != nil {
			log.Printf("Watcher de catálogo indisponível: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	r := routes.SetupRouter(cfg, service, cat)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
