package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/prefeitura-rio/app-navegador-search/internal/api/handlers"
	"github.com/prefeitura-rio/app-navegador-search/internal/catalog"
	"github.com/prefeitura-rio/app-navegador-search/internal/config"
	middlewares "github.com/prefeitura-rio/app-navegador-search/internal/middleware"
	"github.com/prefeitura-rio/app-navegador-search/internal/services"
)

func SetupRouter(cfg *config.Config, service *services.NavigatorService, cat *catalog.Service) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTiming())
	}

	navegadorHandler := handlers.NewNavegadorHandler(service, cfg.Ranking.MaxResults)
	catalogoHandler := handlers.NewCatalogoHandler(service)
	healthHandler := handlers.NewHealthHandler(cat)

	api := r.Group("/api/v1")
	{
		api.GET("/busca", navegadorHandler.Busca)
		api.GET("/destaques", navegadorHandler.Destaques)
		api.POST("/selecao", navegadorHandler.Selecao)
		api.GET("/catalogo", catalogoHandler.Catalogo)
		api.POST("/catalogo/recarregar", catalogoHandler.Recarregar)
		api.POST("/catalogo/nos", catalogoHandler.RegistrarNos)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
