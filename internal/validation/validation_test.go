package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldSet(details []FieldError) map[string]string {
	m := make(map[string]string, len(details))
	for _, d := range details {
		m[d.Field] = d.Message
	}
	return m
}

func TestRespostaCompactaValid(t *testing.T) {
	payload := RespostaCompacta{
		UsuarioID:        1,
		PerguntaID:       1,
		Resposta:         2,
		Duracao:          0,
		Idle:             3.04,
		TimestampInicial: 1000,
		Sensores: [][]float64{
			{101, 10.13, 8.72, 10.06, 0.11, 0.23, 0.14},
		},
	}

	assert.Nil(t, Struct(&payload))
}

func TestRespostaCompactaEnumeratesEveryOffendingField(t *testing.T) {
	payload := RespostaCompacta{
		UsuarioID:        0,
		PerguntaID:       1,
		Duracao:          -1,
		Idle:             -0.5,
		TimestampInicial: 1000,
		Sensores: [][]float64{
			{0, 1, 2, 3, 4, 5, 6},
			{1, 2, 3}, // wrong arity
		},
	}

	details := Struct(&payload)
	require.NotNil(t, details)

	fields := fieldSet(details)
	assert.Contains(t, fields, "usuario_id")
	assert.Contains(t, fields, "duracao")
	assert.Contains(t, fields, "idle")
	assert.Contains(t, fields, "sensores[1]")
	assert.Equal(t, "must have exactly 7 elements", fields["sensores[1]"])
}

func TestRespostaCompactaRejectsEmptySensores(t *testing.T) {
	payload := RespostaCompacta{
		UsuarioID:        1,
		PerguntaID:       1,
		TimestampInicial: 1000,
		Sensores:         [][]float64{},
	}

	details := Struct(&payload)
	require.NotNil(t, details)
	assert.Contains(t, fieldSet(details), "sensores")
}

func TestRespostaCompactaNegativeFrequencia(t *testing.T) {
	freq := -10.0
	payload := RespostaCompacta{
		UsuarioID:        1,
		PerguntaID:       1,
		TimestampInicial: 1000,
		FrequenciaHz:     &freq,
		Sensores:         [][]float64{{0, 1, 2, 3, 4, 5, 6}},
	}

	details := Struct(&payload)
	require.NotNil(t, details)
	assert.Contains(t, fieldSet(details), "frequencia_hz")
}

func TestRespostaExpandidaAllowsEmptySamples(t *testing.T) {
	var payload RespostaExpandida
	err := json.Unmarshal([]byte(`{
		"usuario_id": 1,
		"pergunta_id": 2,
		"resposta": "talvez",
		"duracao": 8.2,
		"idle": 1.1,
		"quantidade_cliques": 3,
		"quantidade_passos": 0,
		"dh_inicio": "2025-01-27T13:50:53.084Z",
		"dh_fim": "2025-01-27T13:51:01.284Z",
		"dados_sensores": []
	}`), &payload)
	require.NoError(t, err)

	assert.Nil(t, Struct(&payload))
	assert.Empty(t, payload.DadosSensores)
}

func TestFlexStringAcceptsStringOrNumber(t *testing.T) {
	var s FlexString

	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &s))
	assert.Equal(t, FlexString("abc"), s)

	require.NoError(t, json.Unmarshal([]byte(`42`), &s))
	assert.Equal(t, FlexString("42"), s)

	require.NoError(t, json.Unmarshal([]byte(`3.5`), &s))
	assert.Equal(t, FlexString("3.5"), s)

	assert.Error(t, json.Unmarshal([]byte(`true`), &s))
}

func TestCriarUsuario(t *testing.T) {
	valid := CriarUsuario{IniciaisDoNome: "JDS", Idade: 25}
	assert.Nil(t, Struct(&valid))

	sexo := "X"
	invalid := CriarUsuario{IniciaisDoNome: "J", Idade: 200, Sexo: &sexo}
	fields := fieldSet(Struct(&invalid))
	assert.Contains(t, fields, "iniciais_do_nome")
	assert.Contains(t, fields, "idade")
	assert.Contains(t, fields, "sexo")
}

func TestCriarGoNogoRequiresEveryMetricButAcceptsZero(t *testing.T) {
	zero := 0.0
	valid := CriarGoNogo{
		UsuarioID:               1,
		ErrosComissaoPercentual: &zero,
		ErrosOmissaoPercentual:  &zero,
		AcertoGoPercentual:      &zero,
		TempoMedioReacaoMs:      &zero,
		VariabilidadeRtMs:       &zero,
		LatenciaMediaNogoErro:   &zero,
	}
	assert.Nil(t, Struct(&valid))

	missing := CriarGoNogo{UsuarioID: 1}
	details := Struct(&missing)
	require.NotNil(t, details)
	assert.Len(t, details, 6)

	neg := -1.0
	invalid := valid
	invalid.AcertoGoPercentual = &neg
	fields := fieldSet(Struct(&invalid))
	assert.Contains(t, fields, "acerto_go_percentual")
}
