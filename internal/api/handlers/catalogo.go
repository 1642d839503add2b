package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/services"
)

type CatalogoHandler struct {
	service *services.NavigatorService
}

func NewCatalogoHandler(service *services.NavigatorService) *CatalogoHandler {
	return &CatalogoHandler{
		service: service,
	}
}

// Catalogo godoc
// @Summary Lista o catálogo corrente
// @Description Devolve o conjunto de nós navegáveis carregado, com uso aplicado, e a versão corrente do catálogo
// @Tags catalogo
// @Produce json
// @Success 200 {object} models.CatalogResponse
// @Router /api/v1/catalogo [get]
func (h *CatalogoHandler) Catalogo(c *gin.Context) {
	nodes, version := h.service.Catalog()
	c.JSON(http.StatusOK, models.CatalogResponse{
		Nodes:   nodes,
		Total:   len(nodes),
		Version: version,
	})
}

// Recarregar godoc
// @Summary Recarrega o catálogo do disco
// @Description Relê o arquivo de catálogo e invalida o cache de resultados
// @Tags catalogo
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/catalogo/recarregar [post]
func (h *CatalogoHandler) Recarregar(c *gin.Context) {
	if err := h.service.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Erro ao recarregar catálogo: %v", err)})
		return
	}

	nodes, version := h.service.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"status":  "recarregado",
		"total":   len(nodes),
		"version": version,
	})
}

// RegistrarNos godoc
// @Summary Registra nós detectados externamente
// @Description Insere ou substitui nós de procedência "dom" enviados pelo coletor. Nós sem título ou sem destino são descartados.
// @Tags catalogo
// @Accept json
// @Produce json
// @Param nos body models.RegisterNodesRequest true "Nós a registrar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/catalogo/nos [post]
func (h *CatalogoHandler) RegistrarNos(c *gin.Context) {
	var req models.RegisterNodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lista de nós é obrigatória"})
		return
	}

	accepted := h.service.RegisterNodes(req.Nodes)
	c.JSON(http.StatusOK, gin.H{
		"aceitos":     accepted,
		"recebidos":   len(req.Nodes),
		"descartados": len(req.Nodes) - accepted,
	})
}
