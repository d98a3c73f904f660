package analytics_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-dash/internal/application/analytics"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatPct_RecorteEstricto(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100.00", "100.00"},  // exactamente 100 no se recorta
		{"100.01", "+/"},
		{"-100.00", "-100.00"},
		{"-100.01", "-/"},
		{"42.50", "42.50"},
		{"0", "0.00"},
	}
	for _, c := range cases {
		got := analytics.FormatPct(d(c.in))
		assert.Equal(t, c.want, got.String(), "entrada %s", c.in)
	}
}

func TestPctChange_BaseCero(t *testing.T) {
	assert.Equal(t, "+/", analytics.PctChange(d("500"), decimal.Zero).String(),
		"base cero con valor positivo debe marcar desborde")
	assert.Equal(t, "-/", analytics.PctChange(d("-3"), decimal.Zero).String())
	assert.Equal(t, "0.00", analytics.PctChange(decimal.Zero, decimal.Zero).String())
}

func TestPctChange_CalculoNormal(t *testing.T) {
	// (110 - 100) / 100 * 100 = 10.00
	assert.Equal(t, "10.00", analytics.PctChange(d("110"), d("100")).String())
	// (50 - 200) / 200 * 100 = -75.00
	assert.Equal(t, "-75.00", analytics.PctChange(d("50"), d("200")).String())
	// (250 - 100) / 100 * 100 = 150 -> desborde
	assert.Equal(t, "+/", analytics.PctChange(d("250"), d("100")).String())
}

func TestPct_MarshalJSON(t *testing.T) {
	num, err := json.Marshal(analytics.FormatPct(d("12.5")))
	require.NoError(t, err)
	assert.Equal(t, "12.50", string(num), "los números van con dos decimales, sin comillas")

	marker, err := json.Marshal(analytics.PctChange(d("5"), decimal.Zero))
	require.NoError(t, err)
	assert.Equal(t, `"+/"`, string(marker), "los marcadores van como string")
}

func TestPeriodLabel(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       string
	}{
		{"año normal", "2023-01-01", "2023-12-31", "1 Year(s) Sales"},
		{"año bisiesto", "2024-01-01", "2024-12-31", "1 Year(s) Sales"},
		{"un trimestre de meses completos", "2024-01-01", "2024-03-31", "3 Month(s) Sales"},
		{"mes completo único no aplica regla de meses", "2024-02-01", "2024-02-29", "29 Day(s) Sales"},
		{"una semana", "2024-06-03", "2024-06-09", "1 Week(s) Sales"},
		{"dos semanas", "2024-06-03", "2024-06-16", "2 Week(s) Sales"},
		{"diez días sueltos", "2024-06-01", "2024-06-10", "10 Day(s) Sales"},
		{"un solo día", "2024-06-05", "2024-06-05", "1 Day(s) Sales"},
		{"meses gana sobre semanas", "2024-03-01", "2024-04-30", "2 Month(s) Sales"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, analytics.PeriodLabel(day(c.start), day(c.end)))
		})
	}
}

func TestPeriodLabel_Determinista(t *testing.T) {
	first := analytics.PeriodLabel(day("2024-01-01"), day("2024-03-31"))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, analytics.PeriodLabel(day("2024-01-01"), day("2024-03-31")))
	}
}
