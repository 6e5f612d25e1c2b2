package handlers

import (
	"net/http"

	"github.com/douglasmeneses/NeuroScan-app/internal/models"
	"github.com/douglasmeneses/NeuroScan-app/internal/repository"
	"github.com/douglasmeneses/NeuroScan-app/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UsuarioHandler struct {
	log *zap.Logger
}

func NewUsuarioHandler(log *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{log: log}
}

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := repository.ListUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usuario, err := repository.GetUsuarioByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	var payload validation.CriarUsuario
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Message: err.Error()})
		return
	}
	if details := validation.Struct(&payload); details != nil {
		respondValidationError(c, details)
		return
	}

	usuario := models.Usuario{
		IniciaisDoNome:            payload.IniciaisDoNome,
		Idade:                     payload.Idade,
		Sexo:                      payload.Sexo,
		Email:                     payload.Email,
		RendaMensal:               payload.RendaMensal,
		EstadoCivil:               payload.EstadoCivil,
		Ocupacao:                  payload.Ocupacao,
		CargaHorariaSemanal:       payload.CargaHorariaSemanal,
		Escolaridade:              payload.Escolaridade,
		Estado:                    payload.Estado,
		FazTratamentoPsicologico:  payload.FazTratamentoPsicologico,
		Tratamentos:               payload.Tratamentos,
		TomaMedicacaoPsiquiatrica: payload.TomaMedicacaoPsiquiatrica,
		Medicacoes:                payload.Medicacoes,
	}
	if err := repository.CreateUsuario(c.Request.Context(), &usuario); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("User created", zap.Uint("usuario_id", usuario.ID))
	c.JSON(http.StatusCreated, gin.H{"id": usuario.ID})
}

// Update serves both PUT and PATCH: any subset of fields may be present and
// only the present ones change.
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload validation.AtualizarUsuario
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Message: err.Error()})
		return
	}
	if details := validation.Struct(&payload); details != nil {
		respondValidationError(c, details)
		return
	}

	// The record must exist before an update is attempted.
	if _, err := repository.GetUsuarioByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	updates := usuarioUpdates(&payload)
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No fields to update"})
		return
	}

	usuario, err := repository.UpdateUsuario(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := repository.GetUsuarioByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := repository.DeleteUsuario(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("User deleted", zap.Uint("usuario_id", id))
	c.Status(http.StatusNoContent)
}

// usuarioUpdates builds the column map from the fields actually present in
// the payload. Marshalling through JSON would lose the present-but-null
// distinction, so the map is built by hand.
func usuarioUpdates(p *validation.AtualizarUsuario) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.IniciaisDoNome != nil {
		updates["iniciais_do_nome"] = *p.IniciaisDoNome
	}
	if p.Idade != nil {
		updates["idade"] = *p.Idade
	}
	if p.Sexo != nil {
		updates["sexo"] = *p.Sexo
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.RendaMensal != nil {
		updates["renda_mensal"] = *p.RendaMensal
	}
	if p.EstadoCivil != nil {
		updates["estado_civil"] = *p.EstadoCivil
	}
	if p.Ocupacao != nil {
		updates["ocupacao"] = *p.Ocupacao
	}
	if p.CargaHorariaSemanal != nil {
		updates["carga_horaria_semanal"] = *p.CargaHorariaSemanal
	}
	if p.Escolaridade != nil {
		updates["escolaridade"] = *p.Escolaridade
	}
	if p.Estado != nil {
		updates["estado"] = *p.Estado
	}
	if p.FazTratamentoPsicologico != nil {
		updates["faz_tratamento_psicologico"] = *p.FazTratamentoPsicologico
	}
	if p.Tratamentos != nil {
		updates["tratamentos"] = *p.Tratamentos
	}
	if p.TomaMedicacaoPsiquiatrica != nil {
		updates["toma_medicacao_psiquiatrica"] = *p.TomaMedicacaoPsiquiatrica
	}
	if p.Medicacoes != nil {
		updates["medicacoes"] = *p.Medicacoes
	}
	return updates
}
