package repository

import (
	"context"
	"testing"
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/models"
	"github.com/douglasmeneses/NeuroScan-app/internal/sensor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func leituraAt(base time.Time, offsetMs int64, val float64) sensor.Leitura {
	return sensor.Leitura{
		Timestamp:    base.Add(time.Duration(offsetMs) * time.Millisecond),
		Acelerometro: &sensor.Eixos{EixoX: val, EixoY: val + 0.1, EixoZ: val + 0.2},
		Giroscopio:   &sensor.Eixos{EixoX: -val, EixoY: -val - 0.1, EixoZ: -val - 0.2},
	}
}

func TestCreateRespostaBatchPreservesSampleOrder(t *testing.T) {
	db := setupTestDB(t)
	usuario, pergunta := seedUsuarioPergunta(t, db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	leituras := []sensor.Leitura{
		leituraAt(base, 0, 1.0),
		leituraAt(base, 100, 2.0),
		leituraAt(base, 200, 3.0),
	}

	resposta := models.Resposta{
		UsuarioID:  usuario.ID,
		PerguntaID: pergunta.ID,
		Resposta:   "4",
		Duracao:    12.5,
		DhInicio:   base,
		DhFim:      leituras[2].Timestamp,
	}

	processados, err := CreateRespostaBatch(context.Background(), &resposta, leituras)
	require.NoError(t, err)
	assert.Equal(t, 3, processados)
	require.NotZero(t, resposta.ID)

	stored, err := GetRespostaByID(context.Background(), resposta.ID)
	require.NoError(t, err)
	require.Len(t, stored.Coletas, 3)

	for i, coleta := range stored.Coletas {
		require.NotNil(t, coleta.Acelerometro, "sample %d missing accelerometer", i)
		require.NotNil(t, coleta.Giroscopio, "sample %d missing gyroscope", i)
		assert.Equal(t, float64(i+1), coleta.Acelerometro.EixoX)
		assert.Equal(t, float64(-(i + 1)), coleta.Giroscopio.EixoX)
		assert.True(t, coleta.Timestamp.Equal(leituras[i].Timestamp))
	}
}

func TestCreateRespostaBatchZeroSamples(t *testing.T) {
	db := setupTestDB(t)
	usuario, pergunta := seedUsuarioPergunta(t, db)

	resposta := models.Resposta{
		UsuarioID:  usuario.ID,
		PerguntaID: pergunta.ID,
		Resposta:   "nenhuma",
		DhInicio:   time.Now().UTC(),
		DhFim:      time.Now().UTC(),
	}

	processados, err := CreateRespostaBatch(context.Background(), &resposta, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, processados)
	assert.NotZero(t, resposta.ID)

	var coletas int64
	require.NoError(t, db.Model(&models.Coleta{}).Count(&coletas).Error)
	assert.Zero(t, coletas)
}

func TestCreateRespostaBatchRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	usuario, pergunta := seedUsuarioPergunta(t, db)

	// Removing the gyroscope table makes the final insert of the
	// transaction fail, which must undo every earlier insert too.
	require.NoError(t, db.Migrator().DropTable(&models.Giroscopio{}))

	base := time.Now().UTC()
	resposta := models.Resposta{
		UsuarioID:  usuario.ID,
		PerguntaID: pergunta.ID,
		Resposta:   "1",
		DhInicio:   base,
		DhFim:      base,
	}

	processados, err := CreateRespostaBatch(context.Background(), &resposta, []sensor.Leitura{leituraAt(base, 0, 1.0)})
	require.Error(t, err)
	assert.Zero(t, processados)

	var respostas, coletas, acelerometros int64
	require.NoError(t, db.Model(&models.Resposta{}).Count(&respostas).Error)
	require.NoError(t, db.Model(&models.Coleta{}).Count(&coletas).Error)
	require.NoError(t, db.Model(&models.Acelerometro{}).Count(&acelerometros).Error)
	assert.Zero(t, respostas)
	assert.Zero(t, coletas)
	assert.Zero(t, acelerometros)
}

func TestCreateRespostaBatchPartialReadings(t *testing.T) {
	db := setupTestDB(t)
	usuario, pergunta := seedUsuarioPergunta(t, db)

	base := time.Now().UTC().Truncate(time.Millisecond)
	leituras := []sensor.Leitura{
		{Timestamp: base, Acelerometro: &sensor.Eixos{EixoX: 1}},
		{Timestamp: base.Add(50 * time.Millisecond), Giroscopio: &sensor.Eixos{EixoZ: 2}},
		{Timestamp: base.Add(100 * time.Millisecond)},
	}

	resposta := models.Resposta{
		UsuarioID:  usuario.ID,
		PerguntaID: pergunta.ID,
		Resposta:   "2",
		DhInicio:   base,
		DhFim:      leituras[2].Timestamp,
	}

	processados, err := CreateRespostaBatch(context.Background(), &resposta, leituras)
	require.NoError(t, err)
	assert.Equal(t, 3, processados)

	coletas, err := GetColetasByRespostaID(context.Background(), resposta.ID)
	require.NoError(t, err)
	require.Len(t, coletas, 3)

	assert.NotNil(t, coletas[0].Acelerometro)
	assert.Nil(t, coletas[0].Giroscopio)
	assert.Nil(t, coletas[1].Acelerometro)
	require.NotNil(t, coletas[1].Giroscopio)
	assert.Equal(t, 2.0, coletas[1].Giroscopio.EixoZ)
	assert.Nil(t, coletas[2].Acelerometro)
	assert.Nil(t, coletas[2].Giroscopio)
}

func TestGetColetasByRespostaIDMissingAnswer(t *testing.T) {
	setupTestDB(t)

	_, err := GetColetasByRespostaID(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
