package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/infrastructure/excel"
)

// buildXLSX construye un libro en memoria con una hoja y sus filas.
func buildXLSX(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestDecode_PrimeraHojaConCabecerasYDatos(t *testing.T) {
	content := buildXLSX(t, "Sheet1", [][]any{
		{" Net Price ", "Qty", "Menu Item"},
		{12.5, 2, "Burger"},
		{3.0, 1, "Fries"},
	})

	wb, err := excel.Decode(content, "")
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", wb.Sheet)
	assert.Equal(t, []string{"Net Price", "Qty", "Menu Item"}, wb.Headers,
		"las cabeceras deben venir con trim")
	require.Len(t, wb.Rows, 2)
	assert.Equal(t, "Burger", wb.Rows[0][2])
}

func TestDecode_HojaDatabaseRequerida(t *testing.T) {
	content := buildXLSX(t, "Database", [][]any{
		{"Store", "Tw Sales"},
		{"0001: Downtown", 1000},
	})

	wb, err := excel.Decode(content, "Database")
	require.NoError(t, err)
	assert.Equal(t, "Database", wb.Sheet)
	assert.Equal(t, 0, wb.Column("Store"))
	assert.Equal(t, -1, wb.Column("Net Price"))
}

func TestDecode_HojaDatabaseAusente(t *testing.T) {
	content := buildXLSX(t, "Sheet1", [][]any{
		{"Store"},
		{"Downtown"},
	})

	_, err := excel.Decode(content, "Database")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Database", "el error debe nombrar la hoja esperada")
}

func TestDecode_HojaVaciaFalla(t *testing.T) {
	content := buildXLSX(t, "Database", [][]any{
		{"Store", "Tw Sales"}, // solo cabeceras, sin datos
	})

	_, err := excel.Decode(content, "Database")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_FilasCortasSeRellenan(t *testing.T) {
	content := buildXLSX(t, "Sheet1", [][]any{
		{"A", "B", "C"},
		{"x"}, // excelize recorta celdas vacías al final
	})

	wb, err := excel.Decode(content, "")
	require.NoError(t, err)
	require.Len(t, wb.Rows, 1)
	assert.Equal(t, []string{"x", "", ""}, wb.Rows[0])
}

func TestDecode_BytesBasuraFalla(t *testing.T) {
	_, err := excel.Decode([]byte("esto no es un xlsx"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
