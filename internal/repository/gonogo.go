package repository

import (
	"context"

	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"
)

func ListGoNogos(ctx context.Context) ([]models.GoNogo, error) {
	var gonogos []models.GoNogo
	result := database.DB.WithContext(ctx).
		Preload("Usuario").
		Order("created_at desc").
		Find(&gonogos)
	return gonogos, result.Error
}

func ListGoNogosByUsuarioID(ctx context.Context, usuarioID uint) ([]models.GoNogo, error) {
	var gonogos []models.GoNogo
	result := database.DB.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at desc").
		Find(&gonogos)
	return gonogos, result.Error
}

func GetGoNogoByID(ctx context.Context, id uint) (*models.GoNogo, error) {
	var gonogo models.GoNogo
	result := database.DB.WithContext(ctx).Preload("Usuario").First(&gonogo, id)
	return &gonogo, result.Error
}

func CreateGoNogo(ctx context.Context, gonogo *models.GoNogo) error {
	if err := database.DB.WithContext(ctx).Create(gonogo).Error; err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Preload("Usuario").First(gonogo, gonogo.ID).Error
}

func UpdateGoNogo(ctx context.Context, id uint, updates map[string]interface{}) (*models.GoNogo, error) {
	if err := database.DB.WithContext(ctx).Model(&models.GoNogo{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetGoNogoByID(ctx, id)
}

func DeleteGoNogo(ctx context.Context, id uint) error {
	return database.DB.WithContext(ctx).Delete(&models.GoNogo{}, id).Error
}
