// Package sensor converts between the two wire representations of a
// submission's sensor time-series: the compact tuple-array form sent by the
// mobile client and the expanded per-sample form used internally.
package sensor

import (
	"bytes"
	"encoding/json"
	"time"
)

// TupleArity is the fixed width of a compact sensor tuple:
// [offset_ms, accel_x, accel_y, accel_z, gyro_x, gyro_y, gyro_z].
const TupleArity = 7

// Eixos holds one three-axis reading.
type Eixos struct {
	EixoX float64 `json:"eixo_x"`
	EixoY float64 `json:"eixo_y"`
	EixoZ float64 `json:"eixo_z"`
}

// Leitura is one expanded sample. Either reading may be absent when the
// sample came in through the expanded ingestion path.
type Leitura struct {
	Timestamp    time.Time `json:"timestamp"`
	Acelerometro *Eixos    `json:"acelerometro,omitempty"`
	Giroscopio   *Eixos    `json:"giroscopio,omitempty"`
}

// Expand converts a base timestamp (Unix ms) plus compact tuples into
// expanded samples. The absolute timestamp of each sample is the base plus
// the tuple's offset. The returned end time is the timestamp of the last
// tuple in input order; tuple order is trusted, not re-sorted.
//
// Input is assumed well formed (non-empty, TupleArity-wide tuples); the
// validation layer rejects anything else before it gets here.
func Expand(timestampInicial int64, sensores [][]float64) (leituras []Leitura, dhInicio, dhFim time.Time) {
	dhInicio = time.UnixMilli(timestampInicial).UTC()

	leituras = make([]Leitura, len(sensores))
	for i, tupla := range sensores {
		leituras[i] = Leitura{
			Timestamp:    time.UnixMilli(timestampInicial + int64(tupla[0])).UTC(),
			Acelerometro: &Eixos{EixoX: tupla[1], EixoY: tupla[2], EixoZ: tupla[3]},
			Giroscopio:   &Eixos{EixoX: tupla[4], EixoY: tupla[5], EixoZ: tupla[6]},
		}
	}

	dhFim = leituras[len(leituras)-1].Timestamp
	return leituras, dhInicio, dhFim
}

// Compact is the inverse of Expand: the base timestamp is the submission
// start time and each tuple's offset is the sample timestamp minus the base.
// Round-trips are exact at millisecond precision; sub-millisecond detail is
// truncated. Absent readings compact to zeroed axes.
func Compact(dhInicio time.Time, leituras []Leitura) (timestampInicial int64, sensores [][]float64) {
	timestampInicial = dhInicio.UnixMilli()

	sensores = make([][]float64, len(leituras))
	for i, l := range leituras {
		tupla := make([]float64, TupleArity)
		tupla[0] = float64(l.Timestamp.UnixMilli() - timestampInicial)
		if l.Acelerometro != nil {
			tupla[1], tupla[2], tupla[3] = l.Acelerometro.EixoX, l.Acelerometro.EixoY, l.Acelerometro.EixoZ
		}
		if l.Giroscopio != nil {
			tupla[4], tupla[5], tupla[6] = l.Giroscopio.EixoX, l.Giroscopio.EixoY, l.Giroscopio.EixoZ
		}
		sensores[i] = tupla
	}

	return timestampInicial, sensores
}

type formatProbe struct {
	UsuarioID *float64          `json:"usuario_id"`
	Sensores  []json.RawMessage `json:"sensores"`
}

// IsCompact reports whether a raw JSON body looks like a compact submission:
// a numeric usuario_id and a non-empty sensores array whose elements are
// themselves arrays.
func IsCompact(body []byte) bool {
	var probe formatProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	if probe.UsuarioID == nil || len(probe.Sensores) == 0 {
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(probe.Sensores[0]), []byte("["))
}
