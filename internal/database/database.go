package database

import (
	"fmt"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	logging "github.com/douglasmeneses/NeuroScan-app/internal/logging"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	conf := config.Get()
	dbConf := conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewQueryLogger(log, conf.Logging.SlowQueryThreshold).LogMode(logger.Warn)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		// Map driver duplicate-key errors to gorm.ErrDuplicatedKey so the
		// handlers can answer 409 without driver-specific checks.
		TranslateError: true,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

// Close drains the underlying connection pool on shutdown.
func Close(log *zap.Logger) {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Error("Failed to obtain database handle for shutdown", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("Failed to close database connection pool", zap.Error(err))
	}
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.Usuario{},
		&models.Questionario{},
		&models.Pergunta{},
		&models.Resposta{},
		&models.Coleta{},
		&models.Acelerometro{},
		&models.Giroscopio{},
		&models.GoNogo{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	respostasIndex := `CREATE INDEX IF NOT EXISTS idx_respostas_query ON respostas (usuario_id, pergunta_id, dh_inicio DESC);`
	if err := DB.Exec(respostasIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on respostas table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}

// SeedQuestionarios loads the questionnaire YAML and inserts it when the
// table is still empty. Questionnaires are immutable after seeding.
func SeedQuestionarios(log *zap.Logger, path string) {
	var count int64
	if err := DB.Model(&models.Questionario{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count questionnaires", zap.Error(err))
	}
	if count > 0 {
		log.Info("Questionnaires already seeded, skipping.", zap.Int64("count", count))
		return
	}

	questionarios, err := models.LoadQuestionarios(path)
	if err != nil {
		log.Fatal("Failed to load questionnaire seed file", zap.Error(err))
	}
	if len(questionarios) == 0 {
		log.Warn("Questionnaire seed file is empty, nothing to seed.")
		return
	}

	if err := DB.Create(&questionarios).Error; err != nil {
		log.Fatal("Failed to seed questionnaires", zap.Error(err))
	}
	log.Info("Questionnaires seeded successfully.", zap.Int("count", len(questionarios)))
}
