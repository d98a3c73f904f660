package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-dash/internal/domain"
)

// storePrefix prefijo numérico que algunos POS anteponen al nombre de tienda,
// p. ej. "0001: Downtown".
var storePrefix = regexp.MustCompile(`^\d+:\s*`)

// NormalizeHeader lleva una cabecera de spreadsheet a su forma de columna:
// trim y espacios internos a guiones bajos ("Net Price" -> "Net_Price").
func NormalizeHeader(h string) string {
	return strings.ReplaceAll(strings.TrimSpace(h), " ", "_")
}

// CleanStore quita el prefijo numérico del POS del nombre de tienda.
func CleanStore(s string) string {
	return storePrefix.ReplaceAllString(strings.TrimSpace(s), "")
}

// cleanCell aplica la política de NaN para celdas de texto: "NaN" -> "".
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

// parseDecimal interpreta una celda numérica. Vacío, "NaN", "$" y separadores
// de miles no rompen la ingesta: celda ilegible vale cero.
func parseDecimal(s string) decimal.Decimal {
	s = cleanCell(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// parseInt interpreta una celda entera con la misma política que parseDecimal.
func parseInt(s string) int {
	return int(parseDecimal(s).IntPart())
}

// parseInt64 idem para identificadores largos (order id, item selection id).
func parseInt64(s string) int64 {
	return parseDecimal(s).IntPart()
}

// dateLayouts formatos de fecha que aparecen en los exports de los POS.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"1/2/06",
	"2-Jan-06",
}

// parseDate interpreta una celda de fecha probando los layouts conocidos.
// Una fecha ilegible sí es error: es parte de la clave de deduplicación.
func parseDate(s string) (time.Time, error) {
	s = cleanCell(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: fecha vacía", domain.ErrInvalidInput)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: fecha ilegible '%s'", domain.ErrInvalidInput, s)
}
