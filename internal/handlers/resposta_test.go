package handlers

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.Questionario{},
		&models.Pergunta{},
		&models.Resposta{},
		&models.Coleta{},
		&models.Acelerometro{},
		&models.Giroscopio{},
	))
	database.DB = db
	config.Set(&config.Config{
		Ingest: config.IngestConfig{
			TxTimeout:      30 * time.Second,
			LockWait:       10 * time.Second,
			BatchSize:      1000,
			MaxUploadBytes: 50 * 1024 * 1024,
		},
	})

	handler := NewRespostaHandler(zap.NewNop())
	router := gin.New()
	router.POST("/api/respostas", handler.Create)
	router.POST("/api/respostas/compacto", handler.CreateCompact)
	router.POST("/api/respostas/compacto-gzip", handler.CreateCompactGzip)
	return router, db
}

func seedSubmissionGraph(t *testing.T, db *gorm.DB) (models.Usuario, models.Pergunta) {
	t.Helper()
	usuario := models.Usuario{IniciaisDoNome: "AB", Idade: 28}
	require.NoError(t, db.Create(&usuario).Error)
	questionario := models.Questionario{Nome: "CAPC", QuantidadePerguntas: 1}
	require.NoError(t, db.Create(&questionario).Error)
	pergunta := models.Pergunta{QuestionarioID: questionario.ID, Numero: 1, Texto: "Pergunta de teste"}
	require.NoError(t, db.Create(&pergunta).Error)
	return usuario, pergunta
}

func compactPayload(usuarioID, perguntaID uint) map[string]any {
	return map[string]any{
		"usuario_id":         usuarioID,
		"pergunta_id":        perguntaID,
		"resposta":           4,
		"duracao":            12.5,
		"idle":               1.2,
		"quantidade_cliques": 3,
		"quantidade_passos":  8,
		"timestamp_inicial":  1000,
		"sensores": [][]float64{
			{101, 0.1, 0.2, 0.3, 1.1, 1.2, 1.3},
			{202, 0.4, 0.5, 0.6, 1.4, 1.5, 1.6},
		},
	}
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCompact(t *testing.T) {
	router, db := setupTestServer(t)
	usuario, pergunta := seedSubmissionGraph(t, db)

	w := postJSON(router, "/api/respostas/compacto", compactPayload(usuario.ID, pergunta.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID                  uint   `json:"id"`
		SensoresProcessados int    `json:"sensores_processados"`
		Formato             string `json:"formato"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.SensoresProcessados)
	assert.Equal(t, "compacto", resp.Formato)

	// Offsets become absolute timestamps relative to the base, and the
	// answer window spans the base through the last sample.
	var resposta models.Resposta
	require.NoError(t, db.Preload("Coletas").First(&resposta, resp.ID).Error)
	assert.Equal(t, "4", resposta.Resposta)
	assert.Equal(t, int64(1000), resposta.DhInicio.UnixMilli())
	assert.Equal(t, int64(1202), resposta.DhFim.UnixMilli())
	require.Len(t, resposta.Coletas, 2)
	assert.Equal(t, int64(1101), resposta.Coletas[0].Timestamp.UnixMilli())
	assert.Equal(t, int64(1202), resposta.Coletas[1].Timestamp.UnixMilli())
}

func TestCreateCompactValidationDetails(t *testing.T) {
	router, _ := setupTestServer(t)

	payload := map[string]any{
		"usuario_id":        1,
		"pergunta_id":       1,
		"timestamp_inicial": 1000,
		"sensores": [][]float64{
			{101, 0.1, 0.2, 0.3, 1.1, 1.2, 1.3},
			{202, 0.4, 0.5},
		},
	}
	w := postJSON(router, "/api/respostas/compacto", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation Error", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "sensores[1]", resp.Details[0].Field)
	assert.Equal(t, "must have exactly 7 elements", resp.Details[0].Message)
}

func TestCreateSniffsWireFormat(t *testing.T) {
	router, db := setupTestServer(t)
	usuario, pergunta := seedSubmissionGraph(t, db)

	// Compact body on the generic route
	w := postJSON(router, "/api/respostas", compactPayload(usuario.ID, pergunta.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var compact map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &compact))
	assert.Equal(t, "compacto", compact["formato"])

	// Expanded body on the same route
	expanded := map[string]any{
		"usuario_id":  usuario.ID,
		"pergunta_id": pergunta.ID,
		"resposta":    "concordo",
		"duracao":     5.0,
		"dh_inicio":   "2025-03-01T12:00:00Z",
		"dh_fim":      "2025-03-01T12:00:05Z",
		"dados_sensores": []map[string]any{
			{"timestamp": "2025-03-01T12:00:01Z", "acelerometro": map[string]float64{"eixo_x": 0.1, "eixo_y": 0.2, "eixo_z": 0.3}},
		},
	}
	w = postJSON(router, "/api/respostas", expanded)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var exp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exp))
	assert.NotContains(t, exp, "formato")
	assert.EqualValues(t, 1, exp["sensores_processados"])
}

func gzipUpload(t *testing.T, filename string, payload any) (*bytes.Buffer, string) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err = gz.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("arquivo", filename)
	require.NoError(t, err)
	_, err = part.Write(compressed.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &form, writer.FormDataContentType()
}

func TestCreateCompactGzip(t *testing.T) {
	router, db := setupTestServer(t)
	usuario, pergunta := seedSubmissionGraph(t, db)

	form, contentType := gzipUpload(t, "dados.json.gz", compactPayload(usuario.ID, pergunta.ID))
	req := httptest.NewRequest(http.MethodPost, "/api/respostas/compacto-gzip", form)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "compacto-gzip", resp["formato"])
	assert.EqualValues(t, 2, resp["sensores_processados"])
}

func TestCreateCompactGzipRejectsOtherExtensions(t *testing.T) {
	router, db := setupTestServer(t)
	usuario, pergunta := seedSubmissionGraph(t, db)

	form, contentType := gzipUpload(t, "dados.json", compactPayload(usuario.ID, pergunta.ID))
	req := httptest.NewRequest(http.MethodPost, "/api/respostas/compacto-gzip", form)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
