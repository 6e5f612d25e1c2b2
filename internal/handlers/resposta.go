package handlers

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"
	"github.com/douglasmeneses/NeuroScan-app/internal/repository"
	"github.com/douglasmeneses/NeuroScan-app/internal/sensor"
	"github.com/douglasmeneses/NeuroScan-app/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RespostaHandler struct {
	log *zap.Logger
}

func NewRespostaHandler(log *zap.Logger) *RespostaHandler {
	return &RespostaHandler{log: log}
}

// respostaCriada is the success body of every ingestion path. The compact
// paths fill in the transfer diagnostics; the expanded path leaves them out.
type respostaCriada struct {
	ID                   uint   `json:"id"`
	Message              string `json:"message"`
	SensoresProcessados  int    `json:"sensores_processados"`
	Formato              string `json:"formato,omitempty"`
	TempoProcessamentoMs int64  `json:"tempo_processamento_ms,omitempty"`
	ReducaoTamanho       string `json:"reducao_tamanho,omitempty"`
	CompressaoHTTP       string `json:"compressao_http,omitempty"`
}

func (h *RespostaHandler) List(c *gin.Context) {
	respostas, err := repository.ListRespostas(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, respostas)
}

func (h *RespostaHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resposta, err := repository.GetRespostaByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resposta)
}

func (h *RespostaHandler) GetSensores(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	coletas, err := repository.GetColetasByRespostaID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, coletas)
}

// Create accepts either wire format on the main ingestion route. The compact
// form is recognized by its tuple array; anything else is treated as the
// expanded form.
func (h *RespostaHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body", Message: err.Error()})
		return
	}

	if sensor.IsCompact(body) {
		h.createCompact(c, body, "compacto")
		return
	}
	h.createExpanded(c, body)
}

// CreateCompact serves the explicit compact-format route.
func (h *RespostaHandler) CreateCompact(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body", Message: err.Error()})
		return
	}
	h.createCompact(c, body, "compacto")
}

// CreateCompactGzip accepts the compact payload pre-compressed as a gzip
// file upload, decompresses it and follows the identical validation, codec
// and write path.
func (h *RespostaHandler) CreateCompactGzip(c *gin.Context) {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing 'arquivo' upload field", Message: err.Error()})
		return
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".gz" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file format. Only .gz files are accepted."})
		return
	}

	maxBytes := config.Get().Ingest.MaxUploadBytes
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Uploaded file exceeds the size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to decompress upload", Message: err.Error()})
		return
	}
	defer gz.Close()

	// Bound the decompressed size as well; a tiny .gz can inflate hugely.
	body, err := io.ReadAll(io.LimitReader(gz, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to decompress upload", Message: err.Error()})
		return
	}
	if int64(len(body)) > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Decompressed payload exceeds the size limit"})
		return
	}

	h.createCompact(c, body, "compacto-gzip")
}

func (h *RespostaHandler) createCompact(c *gin.Context, body []byte, formato string) {
	start := time.Now()

	var payload validation.RespostaCompacta
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Message: err.Error()})
		return
	}
	if details := validation.Struct(&payload); details != nil {
		respondValidationError(c, details)
		return
	}

	leituras, dhInicio, dhFim := sensor.Expand(payload.TimestampInicial, payload.Sensores)

	resposta := models.Resposta{
		UsuarioID:         payload.UsuarioID,
		PerguntaID:        payload.PerguntaID,
		Resposta:          strconv.Itoa(payload.Resposta),
		Duracao:           payload.Duracao,
		Idle:              payload.Idle,
		QuantidadeCliques: payload.QuantidadeCliques,
		QuantidadePassos:  payload.QuantidadePassos,
		DhInicio:          dhInicio,
		DhFim:             dhFim,
	}

	processados, err := repository.CreateRespostaBatch(c.Request.Context(), &resposta, leituras)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("Answer created from compact submission",
		zap.Uint("resposta_id", resposta.ID),
		zap.Int("sensores_processados", processados),
		zap.String("formato", formato),
	)

	c.JSON(http.StatusCreated, respostaCriada{
		ID:                   resposta.ID,
		Message:              "Resposta criada com sucesso",
		SensoresProcessados:  processados,
		Formato:              formato,
		TempoProcessamentoMs: time.Since(start).Milliseconds(),
		ReducaoTamanho:       "~86%",
		CompressaoHTTP:       "gzip (level 6)",
	})
}

func (h *RespostaHandler) createExpanded(c *gin.Context, body []byte) {
	var payload validation.RespostaExpandida
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Message: err.Error()})
		return
	}
	if details := validation.Struct(&payload); details != nil {
		respondValidationError(c, details)
		return
	}

	resposta := models.Resposta{
		UsuarioID:         payload.UsuarioID,
		PerguntaID:        payload.PerguntaID,
		Resposta:          string(payload.Resposta),
		Duracao:           payload.Duracao,
		Idle:              payload.Idle,
		QuantidadeCliques: payload.QuantidadeCliques,
		QuantidadePassos:  payload.QuantidadePassos,
		DhInicio:          payload.DhInicio.UTC(),
		DhFim:             payload.DhFim.UTC(),
	}

	processados, err := repository.CreateRespostaBatch(c.Request.Context(), &resposta, payload.DadosSensores)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("Answer created from expanded submission",
		zap.Uint("resposta_id", resposta.ID),
		zap.Int("sensores_processados", processados),
	)

	c.JSON(http.StatusCreated, respostaCriada{
		ID:                  resposta.ID,
		Message:             "Resposta criada com sucesso",
		SensoresProcessados: processados,
	})
}
