package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the package at a throwaway sqlite database and installs
// the ingest configuration the write path reads.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
		&models.GoNogo{},
	))

	database.DB = db
	config.Set(&config.Config{
		Ingest: config.IngestConfig{
			TxTimeout:      30 * time.Second,
			LockWait:       10 * time.Second,
			BatchSize:      1000,
			MaxUploadBytes: 50 * 1024 * 1024,
			RateLimit:      60,
		},
	})
	return db
}

// seedUsuarioPergunta creates the minimal graph a submission references.
func seedUsuarioPergunta(t *testing.T, db *gorm.DB) (models.Usuario, models.Pergunta) {
	t.Helper()

	usuario := models.Usuario{IniciaisDoNome: "AB", Idade: 30}
	require.NoError(t, db.Create(&usuario).Error)

	questionario := models.Questionario{Nome: "CAPC", QuantidadePerguntas: 1}
	require.NoError(t, db.Create(&questionario).Error)

	pergunta := models.Pergunta{QuestionarioID: questionario.ID, Numero: 1, Texto: "Pergunta de teste"}
	require.NoError(t, db.Create(&pergunta).Error)

	return usuario, pergunta
}
