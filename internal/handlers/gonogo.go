package handlers

import (
	"net/http"

	"github.com/douglasmeneses/NeuroScan-app/internal/models"
	"github.com/douglasmeneses/NeuroScan-app/internal/repository"
	"github.com/douglasmeneses/NeuroScan-app/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GoNogoHandler struct {
	log *zap.Logger
}

func NewGoNogoHandler(log *zap.Logger) *GoNogoHandler {
	return &GoNogoHandler{log: log}
}

func (h *GoNogoHandler) List(c *gin.Context) {
	gonogos, err := repository.ListGoNogos(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gonogos)
}

func (h *GoNogoHandler) ListByUsuario(c *gin.Context) {
	usuarioID, ok := parseIDParam(c, "usuario_id")
	if !ok {
		return
	}
	gonogos, err := repository.ListGoNogosByUsuarioID(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gonogos)
}

func (h *GoNogoHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	gonogo, err := repository.GetGoNogoByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gonogo)
}

func (h *GoNogoHandler) Create(c *gin.Context) {
	var payload validation.CriarGoNogo
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Message: err.Error()})
		return
	}
	if details := validation.Struct(&payload); details != nil {
		respondValidationError(c, details)
		return
	}

	gonogo := models.GoNogo{
		UsuarioID:               payload.UsuarioID,
		ErrosComissaoPercentual: *payload.ErrosComissaoPercentual,
		ErrosOmissaoPercentual:  *payload.ErrosOmissaoPercentual,
		AcertoGoPercentual:      *payload.AcertoGoPercentual,
		TempoMedioReacaoMs:      *payload.TempoMedioReacaoMs,
		VariabilidadeRtMs:       *payload.VariabilidadeRtMs,
		LatenciaMediaNogoErro:   *payload.LatenciaMediaNogoErro,
	}
	if err := repository.CreateGoNogo(c.Request.Context(), &gonogo); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("GoNogo result created",
		zap.Uint("gonogo_id", gonogo.ID),
		zap.Uint("usuario_id", gonogo.UsuarioID),
	)
	c.JSON(http.StatusCreated, gonogo)
}

func (h *GoNogoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload validation.AtualizarGoNogo
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Message: err.Error()})
		return
	}
	if details := validation.Struct(&payload); details != nil {
		respondValidationError(c, details)
		return
	}

	if _, err := repository.GetGoNogoByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	updates := make(map[string]interface{})
	if payload.ErrosComissaoPercentual != nil {
		updates["erros_comissao_percentual"] = *payload.ErrosComissaoPercentual
	}
	if payload.ErrosOmissaoPercentual != nil {
		updates["erros_omissao_percentual"] = *payload.ErrosOmissaoPercentual
	}
	if payload.AcertoGoPercentual != nil {
		updates["acerto_go_percentual"] = *payload.AcertoGoPercentual
	}
	if payload.TempoMedioReacaoMs != nil {
		updates["tempo_medio_reacao_ms"] = *payload.TempoMedioReacaoMs
	}
	if payload.VariabilidadeRtMs != nil {
		updates["variabilidade_rt_ms"] = *payload.VariabilidadeRtMs
	}
	if payload.LatenciaMediaNogoErro != nil {
		updates["latencia_media_nogo_erro"] = *payload.LatenciaMediaNogoErro
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No fields to update"})
		return
	}

	gonogo, err := repository.UpdateGoNogo(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gonogo)
}

func (h *GoNogoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := repository.GetGoNogoByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := repository.DeleteGoNogo(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
