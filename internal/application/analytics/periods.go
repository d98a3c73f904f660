package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Marcadores de variación desbordada: un ratio contra una base cercana a cero
// dispararía la escala de los charts, así que el front recibe un marcador en
// vez del número.
const (
	OverflowUp   = "+/"
	OverflowDown = "-/"
)

var hundred = decimal.NewFromInt(100)

// Pct es una variación porcentual ya formateada: número con dos decimales o
// marcador de desborde. Serializa a JSON como número o como string.
type Pct struct {
	clamped string
	value   decimal.Decimal
}

// MarshalJSON emite el marcador como string o el valor como número (2 decimales).
func (p Pct) MarshalJSON() ([]byte, error) {
	if p.clamped != "" {
		return json.Marshal(p.clamped)
	}
	return []byte(p.value.StringFixed(2)), nil
}

// String representación legible (tests y export PDF).
func (p Pct) String() string {
	if p.clamped != "" {
		return p.clamped
	}
	return p.value.StringFixed(2)
}

// IsClamped indica si el valor quedó reemplazado por un marcador.
func (p Pct) IsClamped() bool { return p.clamped != "" }

// FormatPct aplica la regla de recorte a un porcentaje ya calculado:
// estrictamente mayor que +100 -> "+/", estrictamente menor que -100 -> "-/",
// el resto se conserva.
func FormatPct(x decimal.Decimal) Pct {
	if x.GreaterThan(hundred) {
		return Pct{clamped: OverflowUp}
	}
	if x.LessThan(hundred.Neg()) {
		return Pct{clamped: OverflowDown}
	}
	return Pct{value: x}
}

// PctChange calcula la variación porcentual de prev a curr y la formatea.
// Base cero: curr positivo -> "+/", curr negativo -> "-/", ambos cero -> 0.
func PctChange(curr, prev decimal.Decimal) Pct {
	if prev.IsZero() {
		switch {
		case curr.IsPositive():
			return Pct{clamped: OverflowUp}
		case curr.IsNegative():
			return Pct{clamped: OverflowDown}
		default:
			return Pct{value: decimal.Zero}
		}
	}
	pct := curr.Sub(prev).Div(prev).Mul(hundred).Round(2)
	return FormatPct(pct)
}

// PeriodLabel etiqueta la ventana [start, end] (fechas inclusivas). Orden de
// resolución, gana la primera regla que aplique:
//  1. 365 o 366 días -> "1 Year(s) Sales"
//  2. meses completos (día 1 a último día de un mes posterior) -> "K Month(s) Sales"
//  3. múltiplo de 7 días -> "W Week(s) Sales"
//  4. resto -> "N Day(s) Sales"
//
// Es función total de (start, end): misma entrada, misma etiqueta.
func PeriodLabel(start, end time.Time) string {
	start = truncateDay(start)
	end = truncateDay(end)
	n := int(end.Sub(start).Hours()/24) + 1
	if n <= 0 {
		return "0 Day(s) Sales"
	}

	if n == 365 || n == 366 {
		return "1 Year(s) Sales"
	}

	if start.Day() == 1 && end.Day() == lastDayOfMonth(end) && laterMonth(start, end) {
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
		return fmt.Sprintf("%d Month(s) Sales", months)
	}

	if n%7 == 0 {
		return fmt.Sprintf("%d Week(s) Sales", n/7)
	}

	return fmt.Sprintf("%d Day(s) Sales", n)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// laterMonth indica si end cae en un mes estrictamente posterior al de start.
func laterMonth(start, end time.Time) bool {
	return end.Year() > start.Year() || (end.Year() == start.Year() && end.Month() > start.Month())
}
