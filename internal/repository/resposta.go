package repository

import (
	"context"
	"fmt"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"
	"github.com/douglasmeneses/NeuroScan-app/internal/sensor"

	"gorm.io/gorm"
)

func ListRespostas(ctx context.Context) ([]models.Resposta, error) {
	var respostas []models.Resposta
	result := database.DB.WithContext(ctx).
		Preload("Usuario").
		Preload("Pergunta").
		Order("dh_inicio desc").
		Find(&respostas)
	return respostas, result.Error
}

// GetRespostaByID loads one answer with its user, question and full sensor
// time-series, samples ordered by timestamp.
func GetRespostaByID(ctx context.Context, id uint) (*models.Resposta, error) {
	var resposta models.Resposta
	result := database.DB.WithContext(ctx).
		Preload("Usuario").
		Preload("Pergunta").
		Preload("Coletas", func(db *gorm.DB) *gorm.DB {
			return db.Order("coletas.timestamp asc")
		}).
		Preload("Coletas.Acelerometro").
		Preload("Coletas.Giroscopio").
		First(&resposta, id)
	return &resposta, result.Error
}

func GetColetasByRespostaID(ctx context.Context, respostaID uint) ([]models.Coleta, error) {
	// The parent must exist; an answer without samples returns an empty list,
	// a missing answer returns not-found.
	var resposta models.Resposta
	if err := database.DB.WithContext(ctx).Select("id").First(&resposta, respostaID).Error; err != nil {
		return nil, err
	}

	var coletas []models.Coleta
	result := database.DB.WithContext(ctx).
		Preload("Acelerometro").
		Preload("Giroscopio").
		Where("resposta_id = ?", respostaID).
		Order("timestamp asc").
		Find(&coletas)
	return coletas, result.Error
}

// CreateRespostaBatch persists one answer and its N samples as a single
// atomic unit: the answer row first, then all samples in one bulk insert,
// then the accelerometer and gyroscope batches keyed by the generated sample
// IDs. GORM backfills generated IDs into the slice in submission order, which
// is what lets the readings attach positionally.
//
// The transaction carries two independent bounds: a lock wait limit (applied
// via SET LOCAL on postgres) and a total execution deadline on the context.
// Any failure in any step rolls the whole submission back.
//
// The returned count is the number of submitted samples, including samples
// that carry neither reading.
func CreateRespostaBatch(ctx context.Context, resposta *models.Resposta, leituras []sensor.Leitura) (int, error) {
	ingest := config.Get().Ingest
	ctx, cancel := context.WithTimeout(ctx, ingest.TxTimeout)
	defer cancel()

	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			lockWait := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", ingest.LockWait.Milliseconds())
			if err := tx.Exec(lockWait).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(resposta).Error; err != nil {
			return err
		}

		if len(leituras) == 0 {
			return nil
		}

		coletas := make([]models.Coleta, len(leituras))
		for i, l := range leituras {
			coletas[i] = models.Coleta{RespostaID: resposta.ID, Timestamp: l.Timestamp}
		}
		if err := tx.CreateInBatches(&coletas, ingest.BatchSize).Error; err != nil {
			return err
		}

		var acelerometros []models.Acelerometro
		var giroscopios []models.Giroscopio
		for i, l := range leituras {
			if l.Acelerometro != nil {
				acelerometros = append(acelerometros, models.Acelerometro{
					ColetaID: coletas[i].ID,
					EixoX:    l.Acelerometro.EixoX,
					EixoY:    l.Acelerometro.EixoY,
					EixoZ:    l.Acelerometro.EixoZ,
				})
			}
			if l.Giroscopio != nil {
				giroscopios = append(giroscopios, models.Giroscopio{
					ColetaID: coletas[i].ID,
					EixoX:    l.Giroscopio.EixoX,
					EixoY:    l.Giroscopio.EixoY,
					EixoZ:    l.Giroscopio.EixoZ,
				})
			}
		}

		if len(acelerometros) > 0 {
			if err := tx.CreateInBatches(&acelerometros, ingest.BatchSize).Error; err != nil {
				return err
			}
		}
		if len(giroscopios) > 0 {
			if err := tx.CreateInBatches(&giroscopios, ingest.BatchSize).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(leituras), nil
}
