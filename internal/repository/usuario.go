package repository

import (
	"context"

	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"
)

func ListUsuarios(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	result := database.DB.WithContext(ctx).Order("id asc").Find(&usuarios)
	return usuarios, result.Error
}

// GetUsuarioByID loads the user together with their answers and the question
// and questionnaire each answer belongs to.
func GetUsuarioByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	result := database.DB.WithContext(ctx).
		Preload("Respostas").
		Preload("Respostas.Pergunta").
		First(&usuario, id)
	return &usuario, result.Error
}

func CreateUsuario(ctx context.Context, usuario *models.Usuario) error {
	return database.DB.WithContext(ctx).Create(usuario).Error
}

// UpdateUsuario applies a partial update; only the given columns change.
func UpdateUsuario(ctx context.Context, id uint, updates map[string]interface{}) (*models.Usuario, error) {
	if err := database.DB.WithContext(ctx).Model(&models.Usuario{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var usuario models.Usuario
	result := database.DB.WithContext(ctx).First(&usuario, id)
	return &usuario, result.Error
}

// DeleteUsuario is immediate and permanent, constrained only by referential
// integrity with the user's answers.
func DeleteUsuario(ctx context.Context, id uint) error {
	return database.DB.WithContext(ctx).Delete(&models.Usuario{}, id).Error
}
