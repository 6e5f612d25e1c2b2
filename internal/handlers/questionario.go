package handlers

import (
	"net/http"

	"github.com/douglasmeneses/NeuroScan-app/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionarioHandler struct {
	log *zap.Logger
}

func NewQuestionarioHandler(log *zap.Logger) *QuestionarioHandler {
	return &QuestionarioHandler{log: log}
}

func (h *QuestionarioHandler) List(c *gin.Context) {
	questionarios, err := repository.ListQuestionarios(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, questionarios)
}

func (h *QuestionarioHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	questionario, err := repository.GetQuestionarioByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, questionario)
}
