// Package validation schema-checks both submission wire formats, plus the
// CRUD payloads, before anything reaches persistence. Failures come back as
// a field-by-field breakdown; nothing is partially accepted.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/douglasmeneses/NeuroScan-app/internal/sensor"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report field paths using the wire names, not the Go names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError is one entry of a validation failure breakdown.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Struct validates v and returns every offending field path, or nil when the
// payload is well formed.
func Struct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the struct name prefix from the namespace.
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		details = append(details, FieldError{Field: field, Message: message(fe)})
	}
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s elements", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at most %s elements", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have exactly %s elements", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// FlexString accepts either a JSON string or a JSON number and keeps the
// value as text, matching how responses are persisted.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// RespostaCompacta is the compact submission wire format: flat numeric
// tuples offset-relative to a base timestamp.
type RespostaCompacta struct {
	UsuarioID         uint        `json:"usuario_id" validate:"required,gt=0"`
	PerguntaID        uint        `json:"pergunta_id" validate:"required,gt=0"`
	Resposta          int         `json:"resposta"`
	Duracao           float64     `json:"duracao" validate:"gte=0"`
	Idle              float64     `json:"idle" validate:"gte=0"`
	QuantidadeCliques int         `json:"quantidade_cliques" validate:"gte=0"`
	QuantidadePassos  int         `json:"quantidade_passos" validate:"gte=0"`
	TimestampInicial  int64       `json:"timestamp_inicial" validate:"required,gt=0"`
	FrequenciaHz      *float64    `json:"frequencia_hz,omitempty" validate:"omitempty,gt=0"`
	Sensores          [][]float64 `json:"sensores" validate:"required,min=1,dive,len=7"`
}

// RespostaExpandida is the expanded submission wire format, with absolute
// timestamps and per-sample objects. The sample list may be empty.
type RespostaExpandida struct {
	UsuarioID         uint             `json:"usuario_id" validate:"required,gt=0"`
	PerguntaID        uint             `json:"pergunta_id" validate:"required,gt=0"`
	Resposta          FlexString       `json:"resposta"`
	Duracao           float64          `json:"duracao" validate:"gte=0"`
	Idle              float64          `json:"idle" validate:"gte=0"`
	QuantidadeCliques int              `json:"quantidade_cliques" validate:"gte=0"`
	QuantidadePassos  int              `json:"quantidade_passos" validate:"gte=0"`
	DhInicio          time.Time        `json:"dh_inicio" validate:"required"`
	DhFim             time.Time        `json:"dh_fim" validate:"required"`
	DadosSensores     []sensor.Leitura `json:"dados_sensores"`
}

// CriarUsuario covers user creation; everything beyond initials and age is
// optional at signup.
type CriarUsuario struct {
	IniciaisDoNome            string   `json:"iniciais_do_nome" validate:"required,min=2,max=10"`
	Idade                     int      `json:"idade" validate:"required,gte=1,lte=150"`
	Sexo                      *string  `json:"sexo,omitempty" validate:"omitempty,oneof=M F O"`
	Email                     *string  `json:"email,omitempty" validate:"omitempty,email"`
	RendaMensal               *float64 `json:"renda_mensal,omitempty" validate:"omitempty,gt=0"`
	EstadoCivil               *string  `json:"estado_civil,omitempty" validate:"omitempty,min=1"`
	Ocupacao                  *string  `json:"ocupacao,omitempty" validate:"omitempty,min=1"`
	CargaHorariaSemanal       *int     `json:"carga_horaria_semanal,omitempty" validate:"omitempty,gt=0"`
	Escolaridade              *string  `json:"escolaridade,omitempty" validate:"omitempty,min=1"`
	Estado                    *string  `json:"estado,omitempty" validate:"omitempty,len=2"`
	FazTratamentoPsicologico  *bool    `json:"faz_tratamento_psicologico,omitempty"`
	Tratamentos               *string  `json:"tratamentos,omitempty"`
	TomaMedicacaoPsiquiatrica *bool    `json:"toma_medicacao_psiquiatrica,omitempty"`
	Medicacoes                *string  `json:"medicacoes,omitempty"`
}

// AtualizarUsuario is the partial-update payload: every field optional,
// range-checked only when present.
type AtualizarUsuario struct {
	IniciaisDoNome            *string  `json:"iniciais_do_nome,omitempty" validate:"omitempty,min=2,max=10"`
	Idade                     *int     `json:"idade,omitempty" validate:"omitempty,gte=1,lte=150"`
	Sexo                      *string  `json:"sexo,omitempty" validate:"omitempty,oneof=M F O"`
	Email                     *string  `json:"email,omitempty" validate:"omitempty,email"`
	RendaMensal               *float64 `json:"renda_mensal,omitempty" validate:"omitempty,gt=0"`
	EstadoCivil               *string  `json:"estado_civil,omitempty" validate:"omitempty,min=1"`
	Ocupacao                  *string  `json:"ocupacao,omitempty" validate:"omitempty,min=1"`
	CargaHorariaSemanal       *int     `json:"carga_horaria_semanal,omitempty" validate:"omitempty,gt=0"`
	Escolaridade              *string  `json:"escolaridade,omitempty" validate:"omitempty,min=1"`
	Estado                    *string  `json:"estado,omitempty" validate:"omitempty,len=2"`
	FazTratamentoPsicologico  *bool    `json:"faz_tratamento_psicologico,omitempty"`
	Tratamentos               *string  `json:"tratamentos,omitempty"`
	TomaMedicacaoPsiquiatrica *bool    `json:"toma_medicacao_psiquiatrica,omitempty"`
	Medicacoes                *string  `json:"medicacoes,omitempty"`
}

// CriarGoNogo requires every metric; percentages and latencies may not be
// negative.
type CriarGoNogo struct {
	UsuarioID               uint     `json:"usuario_id" validate:"required,gt=0"`
	ErrosComissaoPercentual *float64 `json:"erros_comissao_percentual" validate:"required,gte=0"`
	ErrosOmissaoPercentual  *float64 `json:"erros_omissao_percentual" validate:"required,gte=0"`
	AcertoGoPercentual      *float64 `json:"acerto_go_percentual" validate:"required,gte=0"`
	TempoMedioReacaoMs      *float64 `json:"tempo_medio_reacao_ms" validate:"required,gte=0"`
	VariabilidadeRtMs       *float64 `json:"variabilidade_rt_ms" validate:"required,gte=0"`
	LatenciaMediaNogoErro   *float64 `json:"latencia_media_nogo_erro" validate:"required,gte=0"`
}

// AtualizarGoNogo updates any subset of the metrics.
type AtualizarGoNogo struct {
	ErrosComissaoPercentual *float64 `json:"erros_comissao_percentual,omitempty" validate:"omitempty,gte=0"`
	ErrosOmissaoPercentual  *float64 `json:"erros_omissao_percentual,omitempty" validate:"omitempty,gte=0"`
	AcertoGoPercentual      *float64 `json:"acerto_go_percentual,omitempty" validate:"omitempty,gte=0"`
	TempoMedioReacaoMs      *float64 `json:"tempo_medio_reacao_ms,omitempty" validate:"omitempty,gte=0"`
	VariabilidadeRtMs       *float64 `json:"variabilidade_rt_ms,omitempty" validate:"omitempty,gte=0"`
	LatenciaMediaNogoErro   *float64 `json:"latencia_media_nogo_erro,omitempty" validate:"omitempty,gte=0"`
}
