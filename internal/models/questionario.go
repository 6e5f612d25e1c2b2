package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Questionario is seeded once from YAML and is read-only afterwards.
type Questionario struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Nome                string     `gorm:"size:255;not null" json:"nome"`
	QuantidadePerguntas int        `gorm:"not null" json:"quantidade_perguntas"`
	Perguntas           []Pergunta `gorm:"foreignKey:QuestionarioID" json:"perguntas,omitempty"`
}

// Pergunta numbering is 1-based and unique within its questionnaire.
type Pergunta struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Numero         int    `gorm:"not null;uniqueIndex:idx_perguntas_numero" json:"numero"`
	Texto          string `gorm:"type:text;not null" json:"texto"`
	QuestionarioID uint   `gorm:"not null;uniqueIndex:idx_perguntas_numero;index" json:"questionario_id"`
}

// TableName pins the plural table name; GORM's pluralizer treats nouns
// ending in "-ta" as already plural and would otherwise emit "pergunta".
func (Pergunta) TableName() string { return "perguntas" }

type questionarioSeed struct {
	Nome      string   `yaml:"nome"`
	Perguntas []string `yaml:"perguntas"`
}

// LoadQuestionarios reads and parses the questionnaire seed file. Question
// numbers are assigned from the order the texts appear in the file.
func LoadQuestionarios(path string) ([]Questionario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire file: %w", err)
	}

	var seeds []questionarioSeed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questionnaire YAML: %w", err)
	}

	questionarios := make([]Questionario, 0, len(seeds))
	for _, seed := range seeds {
		q := Questionario{
			Nome:                seed.Nome,
			QuantidadePerguntas: len(seed.Perguntas),
		}
		for i, texto := range seed.Perguntas {
			q.Perguntas = append(q.Perguntas, Pergunta{
				Numero: i + 1,
				Texto:  texto,
			})
		}
		questionarios = append(questionarios, q)
	}

	return questionarios, nil
}
