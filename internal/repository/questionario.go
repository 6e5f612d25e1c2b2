package repository

import (
	"context"

	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"

	"gorm.io/gorm"
)

func ListQuestionarios(ctx context.Context) ([]models.Questionario, error) {
	var questionarios []models.Questionario
	result := database.DB.WithContext(ctx).
		Preload("Perguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("perguntas.numero asc")
		}).
		Order("id asc").
		Find(&questionarios)
	return questionarios, result.Error
}

func GetQuestionarioByID(ctx context.Context, id uint) (*models.Questionario, error) {
	var questionario models.Questionario
	result := database.DB.WithContext(ctx).
		Preload("Perguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("perguntas.numero asc")
		}).
		First(&questionario, id)
	return &questionario, result.Error
}
