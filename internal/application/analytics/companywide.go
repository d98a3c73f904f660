// Package analytics contiene el motor de agregación del dashboard
// company-wide: funciones puras sobre las filas financieras persistidas.
//
// Determinismo: para la misma entrada (filas + parámetros) la salida JSON es
// byte-idéntica; structs con orden fijo de campos y filas ordenadas por
// período ascendente.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// FilterAll valor comodín de los filtros: sin restricción.
const FilterAll = "All"

// FilterMultiple el front manda "Multiple Locations" cuando hay varias tiendas
// seleccionadas; se trata igual que "All".
const FilterMultiple = "Multiple Locations"

// Params parámetros de filtrado. Cadena vacía o "All" = sin filtro; el scope
// de tenant es implícito (las filas ya vienen de una sola company).
type Params struct {
	Store     string
	Year      int    // 0 = sin filtro
	Quarter   int    // 0 = sin filtro, 1..4
	Helper4   string
	StartDate *time.Time // ventana de fechas inclusiva sobre FinancialRow.Date
	EndDate   *time.Time
}

// Row una fila de cualquiera de las siete tablas de salida.
type Row struct {
	Period   string          `json:"period"`
	ThisWeek decimal.Decimal `json:"This_Week"`
	LastWeek decimal.Decimal `json:"Last_Week"`
	LastYear decimal.Decimal `json:"Last_Year"`
	WoW      Pct             `json:"%Δ_WoW"`
	YoY      Pct             `json:"%Δ_YoY"`
}

// Report las siete tablas de salida en schema fijo, más los tres ejes de
// filtrado que consume el front.
type Report struct {
	Sales         []Row    `json:"Sales"`
	Orders        []Row    `json:"Orders"`
	AverageTicket []Row    `json:"Average_Ticket"`
	COGS          []Row    `json:"COGS"`
	RegularPay    []Row    `json:"Regular_Pay"`
	LaborHours    []Row    `json:"Labor_Hours"`
	SPMH          []Row    `json:"SPMH"`
	Years         []int    `json:"years"`
	Helper4Labels []string `json:"helper_4"`
	Stores        []string `json:"stores"`
}

// metric selecciona el triplete Tw/Lw/Ly de una fila financiera.
type metric struct {
	tw func(*entity.FinancialRow) decimal.Decimal
	lw func(*entity.FinancialRow) decimal.Decimal
	ly func(*entity.FinancialRow) decimal.Decimal
}

var metrics = []metric{
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwSales }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwSales }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LySales }},
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwOrders }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwOrders }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LyOrders }},
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwAvgTicket }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwAvgTicket }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LyAvgTicket }},
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwCOGS }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwCOGS }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LyCOGS }},
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwRegPay }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwRegPay }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LyRegPay }},
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwLbHours }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwLbHours }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LyLbHours }},
	{tw: func(r *entity.FinancialRow) decimal.Decimal { return r.TwSPMH }, lw: func(r *entity.FinancialRow) decimal.Decimal { return r.LwSPMH }, ly: func(r *entity.FinancialRow) decimal.Decimal { return r.LySPMH }},
}

// BuildCompanyWide ejecuta el motor sobre el conjunto de filas del tenant.
//
// Agrupación: con ventana de fechas, una sola fila por tabla etiquetada por
// PeriodLabel; sin ventana, una fila por etiqueta Helper_4 (período ascendente).
// Los ejes (years, helper_4, stores) se calculan sobre el conjunto completo,
// antes de aplicar filtros, para que el front pueda repoblar sus selectores.
func BuildCompanyWide(rows []entity.FinancialRow, p Params) *Report {
	report := &Report{
		Years:         distinctYears(rows),
		Helper4Labels: distinctHelper4(rows),
		Stores:        distinctStores(rows),
	}

	filtered := filterRows(rows, p)
	groups := groupRows(filtered, p)

	tables := make([][]Row, len(metrics))
	for mi, m := range metrics {
		table := make([]Row, 0, len(groups))
		for _, g := range groups {
			var tw, lw, ly decimal.Decimal
			for _, r := range g.rows {
				tw = tw.Add(m.tw(r))
				lw = lw.Add(m.lw(r))
				ly = ly.Add(m.ly(r))
			}
			table = append(table, Row{
				Period:   g.label,
				ThisWeek: tw,
				LastWeek: lw,
				LastYear: ly,
				WoW:      PctChange(tw, lw),
				YoY:      PctChange(tw, ly),
			})
		}
		tables[mi] = table
	}

	report.Sales = tables[0]
	report.Orders = tables[1]
	report.AverageTicket = tables[2]
	report.COGS = tables[3]
	report.RegularPay = tables[4]
	report.LaborHours = tables[5]
	report.SPMH = tables[6]
	return report
}

func filterRows(rows []entity.FinancialRow, p Params) []*entity.FinancialRow {
	storeFilter := p.Store != "" && p.Store != FilterAll && p.Store != FilterMultiple
	helperFilter := p.Helper4 != "" && p.Helper4 != FilterAll

	var out []*entity.FinancialRow
	for i := range rows {
		r := &rows[i]
		if storeFilter && r.Store != p.Store {
			continue
		}
		if p.Year != 0 && r.Year != p.Year {
			continue
		}
		if p.Quarter != 0 && r.Quarter != p.Quarter {
			continue
		}
		if helperFilter && r.Helper4 != p.Helper4 {
			continue
		}
		if p.StartDate != nil && r.Date.Before(truncateDay(*p.StartDate)) {
			continue
		}
		if p.EndDate != nil && r.Date.After(truncateDay(*p.EndDate)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type group struct {
	label    string
	earliest time.Time
	rows     []*entity.FinancialRow
}

func groupRows(rows []*entity.FinancialRow, p Params) []group {
	if p.StartDate != nil && p.EndDate != nil {
		if len(rows) == 0 {
			return nil
		}
		return []group{{label: PeriodLabel(*p.StartDate, *p.EndDate), rows: rows}}
	}

	byLabel := make(map[string]*group)
	var order []*group
	for _, r := range rows {
		g, ok := byLabel[r.Helper4]
		if !ok {
			g = &group{label: r.Helper4, earliest: r.Date}
			byLabel[r.Helper4] = g
			order = append(order, g)
		}
		if r.Date.Before(g.earliest) {
			g.earliest = r.Date
		}
		g.rows = append(g.rows, r)
	}

	// Período ascendente: fecha más temprana del grupo, empate por etiqueta.
	sort.SliceStable(order, func(i, j int) bool {
		if !order[i].earliest.Equal(order[j].earliest) {
			return order[i].earliest.Before(order[j].earliest)
		}
		return order[i].label < order[j].label
	})

	out := make([]group, len(order))
	for i, g := range order {
		out[i] = *g
	}
	return out
}

func distinctYears(rows []entity.FinancialRow) []int {
	seen := make(map[int]bool)
	var out []int
	for i := range rows {
		if y := rows[i].Year; y != 0 && !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Ints(out)
	return out
}

func distinctHelper4(rows []entity.FinancialRow) []string {
	return distinctStrings(rows, func(r *entity.FinancialRow) string { return r.Helper4 })
}

func distinctStores(rows []entity.FinancialRow) []string {
	return distinctStrings(rows, func(r *entity.FinancialRow) string { return r.Store })
}

func distinctStrings(rows []entity.FinancialRow, get func(*entity.FinancialRow) string) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range rows {
		if v := get(&rows[i]); v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
