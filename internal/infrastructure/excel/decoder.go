// Package excel convierte un stream de bytes xlsx en una secuencia tipada de
// filas más el manifiesto de cabeceras. No conoce dashboards ni tablas: la
// capa de ingesta decide qué hoja pedir y cómo mapear las celdas.
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/resto-dash/internal/domain"
)

// Workbook es el resultado de decodificar la hoja primaria de una subida.
type Workbook struct {
	Sheet   string
	Headers []string   // cabeceras con trim, orden original
	Rows    [][]string // celdas crudas, cada fila rellenada al largo de Headers
}

// Decode abre el contenido y lee la hoja primaria: primarySheet si no es vacío
// (debe existir), o la primera hoja del libro. Devuelve ErrInvalidInput si la
// hoja esperada no existe o no tiene filas de datos.
func Decode(content []byte, primarySheet string) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: el archivo no es un xlsx válido", domain.ErrInvalidInput)
	}
	defer f.Close()

	sheet := primarySheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrInvalidInput)
		}
		sheet = list[0]
	} else if !hasSheet(f, sheet) {
		return nil, fmt.Errorf("%w: se esperaba la hoja '%s' y no existe en el libro", domain.ErrInvalidInput, sheet)
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: la hoja '%s' está vacía (se esperaban cabeceras y datos)", domain.ErrInvalidInput, sheet)
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]string, 0, len(raw)-1)
	for _, r := range raw[1:] {
		if emptyRow(r) {
			continue
		}
		// excelize recorta celdas vacías al final; rellenar al largo de headers
		row := make([]string, len(headers))
		copy(row, r)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: la hoja '%s' no tiene filas de datos", domain.ErrInvalidInput, sheet)
	}

	return &Workbook{Sheet: sheet, Headers: headers, Rows: rows}, nil
}

// Column devuelve el índice de la cabecera (comparación con trim) o -1.
func (w *Workbook) Column(name string) int {
	for i, h := range w.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
