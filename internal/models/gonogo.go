package models

import "time"

// GoNogo holds the derived metrics of one go/no-go test run. Results are
// managed independently of answers and follow full CRUD.
type GoNogo struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	UsuarioID               uint      `gorm:"not null;index" json:"usuario_id"`
	Usuario                 *Usuario  `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	ErrosComissaoPercentual float64   `gorm:"not null" json:"erros_comissao_percentual"`
	ErrosOmissaoPercentual  float64   `gorm:"not null" json:"erros_omissao_percentual"`
	AcertoGoPercentual      float64   `gorm:"not null" json:"acerto_go_percentual"`
	TempoMedioReacaoMs      float64   `gorm:"not null" json:"tempo_medio_reacao_ms"`
	VariabilidadeRtMs       float64   `gorm:"not null" json:"variabilidade_rt_ms"`
	LatenciaMediaNogoErro   float64   `gorm:"not null" json:"latencia_media_nogo_erro"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
