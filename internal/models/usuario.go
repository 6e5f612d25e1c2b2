package models

import "time"

// Usuario is a study participant. Only initials and age are collected when
// the account is created; the sociodemographic block is filled in later
// through a partial update.
type Usuario struct {
	ID                        uint       `gorm:"primaryKey" json:"id"`
	IniciaisDoNome            string     `gorm:"size:10;not null" json:"iniciais_do_nome"`
	Idade                     int        `gorm:"not null" json:"idade"`
	Sexo                      *string    `gorm:"size:1" json:"sexo,omitempty"`
	Email                     *string    `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	RendaMensal               *float64   `json:"renda_mensal,omitempty"`
	EstadoCivil               *string    `gorm:"size:50" json:"estado_civil,omitempty"`
	Ocupacao                  *string    `gorm:"size:100" json:"ocupacao,omitempty"`
	CargaHorariaSemanal       *int       `json:"carga_horaria_semanal,omitempty"`
	Escolaridade              *string    `gorm:"size:100" json:"escolaridade,omitempty"`
	Estado                    *string    `gorm:"size:2" json:"estado,omitempty"`
	FazTratamentoPsicologico  *bool      `json:"faz_tratamento_psicologico,omitempty"`
	Tratamentos               *string    `gorm:"type:text" json:"tratamentos,omitempty"`
	TomaMedicacaoPsiquiatrica *bool      `json:"toma_medicacao_psiquiatrica,omitempty"`
	Medicacoes                *string    `gorm:"type:text" json:"medicacoes,omitempty"`
	Respostas                 []Resposta `gorm:"foreignKey:UsuarioID" json:"respostas,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}
