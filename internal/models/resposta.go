package models

import "time"

// Resposta is one response event to one question by one user, optionally
// carrying the sensor time-series captured while the question was answered.
// The chosen response is stored as text regardless of its wire type.
type Resposta struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UsuarioID         uint      `gorm:"not null;index" json:"usuario_id"`
	Usuario           *Usuario  `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	PerguntaID        uint      `gorm:"not null;index" json:"pergunta_id"`
	Pergunta          *Pergunta `gorm:"foreignKey:PerguntaID" json:"pergunta,omitempty"`
	Resposta          string    `gorm:"type:text;not null" json:"resposta"`
	Duracao           float64   `gorm:"not null" json:"duracao"`
	Idle              float64   `gorm:"not null" json:"idle"`
	QuantidadeCliques int       `gorm:"not null" json:"quantidade_cliques"`
	QuantidadePassos  int       `gorm:"not null" json:"quantidade_passos"`
	DhInicio          time.Time `gorm:"not null;index" json:"dh_inicio"`
	DhFim             time.Time `gorm:"not null" json:"dh_fim"`
	Coletas           []Coleta  `gorm:"foreignKey:RespostaID" json:"coletas,omitempty"`
}

// TableName pins the plural table name; GORM's pluralizer treats nouns
// ending in "-ta" as already plural and would otherwise emit "resposta".
func (Resposta) TableName() string { return "respostas" }

// Coleta is one timestamped sensor snapshot within an answer's time-series.
// Each reading is optional and independently present.
type Coleta struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	RespostaID   uint          `gorm:"not null;index" json:"resposta_id"`
	Timestamp    time.Time     `gorm:"not null" json:"timestamp"`
	Acelerometro *Acelerometro `gorm:"foreignKey:ColetaID" json:"acelerometro,omitempty"`
	Giroscopio   *Giroscopio   `gorm:"foreignKey:ColetaID" json:"giroscopio,omitempty"`
}

// TableName pins the plural table name; GORM's pluralizer treats nouns
// ending in "-ta" as already plural and would otherwise emit "coleta".
func (Coleta) TableName() string { return "coletas" }

// Acelerometro holds one three-axis accelerometer reading in m/s².
type Acelerometro struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ColetaID uint    `gorm:"not null;uniqueIndex" json:"coleta_id"`
	EixoX    float64 `gorm:"not null" json:"eixo_x"`
	EixoY    float64 `gorm:"not null" json:"eixo_y"`
	EixoZ    float64 `gorm:"not null" json:"eixo_z"`
}

// Giroscopio holds one three-axis gyroscope reading in rad/s.
type Giroscopio struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ColetaID uint    `gorm:"not null;uniqueIndex" json:"coleta_id"`
	EixoX    float64 `gorm:"not null" json:"eixo_x"`
	EixoY    float64 `gorm:"not null" json:"eixo_y"`
	EixoZ    float64 `gorm:"not null" json:"eixo_z"`
}
