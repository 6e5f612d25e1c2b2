package handlers

import (
	"net/http"

	"github.com/douglasmeneses/NeuroScan-app/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	log *zap.Logger
}

func NewDashboardHandler(log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{log: log}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := repository.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) TempoQuestionarios(c *gin.Context) {
	data, err := repository.GetTempoPorPergunta(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *DashboardHandler) UsuariosStats(c *gin.Context) {
	data, err := repository.GetUsuariosStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *DashboardHandler) GraficosRespostas(c *gin.Context) {
	data, err := repository.GetGraficosRespostas(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
