package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
	"github.com/prefeitura-rio/app-navegador-search/internal/services"
)

type NavegadorHandler struct {
	service    *services.NavigatorService
	maxResults int
}

func NewNavegadorHandler(service *services.NavigatorService, maxResults int) *NavegadorHandler {
	return &NavegadorHandler{
		service:    service,
		maxResults: maxResults,
	}
}

// Busca godoc
// @Summary Busca de navegação ranqueada
// @Description Ranqueia os nós do catálogo para uma query, combinando relevância textual com sinais de uso. Query vazia devolve a visão padrão por contexto.
// @Tags navegacao
// @Produce json
// @Param q query string false "Termo de busca"
// @Param categoria query string false "Filtro por módulo/categoria"
// @Param limit query int false "Máximo de resultados" default(40)
// @Success 200 {object} models.RankResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/busca [get]
func (h *NavegadorHandler) Busca(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetros de busca inválidos"})
		return
	}
	req.Validate(h.maxResults)

	resultado := h.service.Search(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resultado)
}

// Destaques godoc
// @Summary Visão padrão sem query
// @Description Devolve os nós mais prováveis para o momento atual, ordenados por uso, recência e padrões temporais
// @Tags navegacao
// @Produce json
// @Param categoria query string false "Filtro por módulo/categoria"
// @Param limit query int false "Máximo de resultados" default(40)
// @Success 200 {object} models.RankResponse
// @Router /api/v1/destaques [get]
func (h *NavegadorHandler) Destaques(c *gin.Context) {
	categoria := c.Query("categoria")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 || limit > h.maxResults {
		limit = 0
	}

	resultado := h.service.Defaults(c.Request.Context(), categoria, limit)
	c.JSON(http.StatusOK, resultado)
}

// Selecao godoc
// @Summary Registra a seleção de um nó
// @Description Incrementa o uso do nó selecionado e atualiza os padrões temporais usados pelo ranking
// @Tags navegacao
// @Accept json
// @Produce json
// @Param selecao body models.SelectionRequest true "Nó selecionado"
// @Success 200 {object} models.SelectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/selecao [post]
func (h *NavegadorHandler) Selecao(c *gin.Context) {
	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID do nó é obrigatório"})
		return
	}

	usage, err := h.service.RecordSelection(req.ID)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nó não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SelectionResponse{ID: req.ID, Usage: usage})
}
