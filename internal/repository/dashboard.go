package repository

import (
	"context"
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	"github.com/douglasmeneses/NeuroScan-app/internal/models"
)

// Stats are the dashboard headline counters.
type Stats struct {
	TotalUsuarios      int64 `json:"totalUsuarios"`
	TotalQuestionarios int64 `json:"totalQuestionarios"`
	TotalRespostas     int64 `json:"totalRespostas"`
}

// TempoPergunta aggregates answer duration per question.
type TempoPergunta struct {
	PerguntaID       uint    `json:"pergunta_id"`
	PerguntaNumero   int     `json:"pergunta_numero"`
	PerguntaTexto    string  `json:"pergunta_texto"`
	QuestionarioNome string  `json:"questionario_nome"`
	TempoMedio       float64 `json:"tempo_medio"`
	TempoTotal       float64 `json:"tempo_total"`
	TotalRespostas   int     `json:"total_respostas"`
}

// UsuarioStats aggregates interaction totals per user.
type UsuarioStats struct {
	ID                    uint    `json:"id"`
	IniciaisDoNome        string  `json:"iniciais_do_nome"`
	Idade                 int     `json:"idade"`
	TotalRespostas        int     `json:"total_respostas"`
	TotalCliques          int     `json:"total_cliques"`
	TotalPassos           int     `json:"total_passos"`
	TempoTotal            float64 `json:"tempo_total"`
	TempoIdleTotal        float64 `json:"tempo_idle_total"`
	TempoMedioPorResposta float64 `json:"tempo_medio_por_resposta"`
}

// GraficoPonto is one chart-ready data point of the click/step/duration
// series.
type GraficoPonto struct {
	ID           uint      `json:"id"`
	Usuario      string    `json:"usuario"`
	Questionario string    `json:"questionario"`
	Pergunta     int       `json:"pergunta"`
	Valor        float64   `json:"valor"`
	Timestamp    time.Time `json:"timestamp"`
}

// GraficosRespostas groups the three series consumed by the dashboard charts.
type GraficosRespostas struct {
	Cliques []GraficoPonto `json:"cliques"`
	Passos  []GraficoPonto `json:"passos"`
	Duracao []GraficoPonto `json:"duracao"`
}

func GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	db := database.DB.WithContext(ctx)

	if err := db.Model(&models.Usuario{}).Count(&stats.TotalUsuarios).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Questionario{}).Count(&stats.TotalQuestionarios).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Resposta{}).Count(&stats.TotalRespostas).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetTempoPorPergunta computes mean and total answer duration per question,
// joined with the question text and owning questionnaire name.
func GetTempoPorPergunta(ctx context.Context) ([]TempoPergunta, error) {
	var data []TempoPergunta

	query := `
		SELECT
			p.id AS pergunta_id,
			p.numero AS pergunta_numero,
			p.texto AS pergunta_texto,
			q.nome AS questionario_nome,
			AVG(r.duracao) AS tempo_medio,
			SUM(r.duracao) AS tempo_total,
			COUNT(r.id) AS total_respostas
		FROM respostas r
		JOIN perguntas p ON r.pergunta_id = p.id
		JOIN questionarios q ON p.questionario_id = q.id
		GROUP BY p.id, p.numero, p.texto, q.nome
		ORDER BY p.id;
	`

	err := database.DB.WithContext(ctx).Raw(query).Scan(&data).Error
	return data, err
}

// GetUsuariosStats computes per-user interaction totals. Users without
// answers are included with zeroed totals; the mean is guarded against
// division by zero in SQL.
func GetUsuariosStats(ctx context.Context) ([]UsuarioStats, error) {
	var data []UsuarioStats

	query := `
		SELECT
			u.id,
			u.iniciais_do_nome,
			u.idade,
			COUNT(r.id) AS total_respostas,
			COALESCE(SUM(r.quantidade_cliques), 0) AS total_cliques,
			COALESCE(SUM(r.quantidade_passos), 0) AS total_passos,
			COALESCE(SUM(r.duracao), 0) AS tempo_total,
			COALESCE(SUM(r.idle), 0) AS tempo_idle_total,
			CASE
				WHEN COUNT(r.id) > 0 THEN SUM(r.duracao) / COUNT(r.id)
				ELSE 0
			END AS tempo_medio_por_resposta
		FROM usuarios u
		LEFT JOIN respostas r ON r.usuario_id = u.id
		GROUP BY u.id, u.iniciais_do_nome, u.idade
		ORDER BY u.id;
	`

	err := database.DB.WithContext(ctx).Raw(query).Scan(&data).Error
	return data, err
}

type graficoRow struct {
	ID                uint
	Usuario           string
	Questionario      string
	Pergunta          int
	QuantidadeCliques int
	QuantidadePassos  int
	Duracao           float64
	Timestamp         time.Time
}

// GetGraficosRespostas builds the chart series for clicks, steps and
// duration per answer, ordered by start time.
func GetGraficosRespostas(ctx context.Context) (*GraficosRespostas, error) {
	var rows []graficoRow

	query := `
		SELECT
			r.id,
			u.iniciais_do_nome AS usuario,
			q.nome AS questionario,
			p.numero AS pergunta,
			r.quantidade_cliques,
			r.quantidade_passos,
			r.duracao,
			r.dh_inicio AS timestamp
		FROM respostas r
		JOIN usuarios u ON r.usuario_id = u.id
		JOIN perguntas p ON r.pergunta_id = p.id
		JOIN questionarios q ON p.questionario_id = q.id
		ORDER BY r.dh_inicio ASC;
	`

	if err := database.DB.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	graficos := &GraficosRespostas{
		Cliques: make([]GraficoPonto, 0, len(rows)),
		Passos:  make([]GraficoPonto, 0, len(rows)),
		Duracao: make([]GraficoPonto, 0, len(rows)),
	}
	for _, r := range rows {
		base := GraficoPonto{
			ID:           r.ID,
			Usuario:      r.Usuario,
			Questionario: r.Questionario,
			Pergunta:     r.Pergunta,
			Timestamp:    r.Timestamp,
		}

		cliques := base
		cliques.Valor = float64(r.QuantidadeCliques)
		graficos.Cliques = append(graficos.Cliques, cliques)

		passos := base
		passos.Valor = float64(r.QuantidadePassos)
		graficos.Passos = append(graficos.Passos, passos)

		duracao := base
		duracao.Valor = r.Duracao
		graficos.Duracao = append(graficos.Duracao, duracao)
	}

	return graficos, nil
}
