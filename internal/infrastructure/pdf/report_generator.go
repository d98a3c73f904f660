// Package pdf implementa la exportación del reporte company-wide a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Fecha de generación                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada métrica (Sales, Orders, ...):                     │
//	│    TÍTULO de la tabla                                       │
//	│    Period | This Week | Last Week | Last Year | WoW | YoY   │
//	│    ... filas ...                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/resto-dash/internal/application/analytics"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReport(
	_ context.Context,
	company *entity.Company,
	report *analytics.Report,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Company-Wide", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	sections := []struct {
		title string
		rows  []analytics.Row
	}{
		{"Sales", report.Sales},
		{"Orders", report.Orders},
		{"Average Ticket", report.AverageTicket},
		{"COGS", report.COGS},
		{"Regular Pay", report.RegularPay},
		{"Labor Hours", report.LaborHours},
		{"SPMH", report.SPMH},
	}
	for _, s := range sections {
		m.AddRows(sectionTitleRow(s.title))
		m.AddRows(tableHeaderRow())
		for _, r := range s.rows {
			m.AddRows(tableDataRow(r))
		}
		m.AddRows(line.NewRow(2))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq) y fecha de generación (der).
func headerRow(company *entity.Company, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dashboard Company-Wide", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(6).Add(
		col.New(3).Add(text.New("Period", header)),
		col.New(2).Add(text.New("This Week", headerRight)),
		col.New(2).Add(text.New("Last Week", headerRight)),
		col.New(2).Add(text.New("Last Year", headerRight)),
		col.New(1).Add(text.New("%WoW", headerRight)),
		col.New(2).Add(text.New("%YoY", headerRight)),
	)
}

func tableDataRow(r analytics.Row) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(3).Add(text.New(r.Period, cell)),
		col.New(2).Add(text.New(r.ThisWeek.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.LastWeek.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.LastYear.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(r.WoW.String(), cellRight)),
		col.New(2).Add(text.New(r.YoY.String(), cellRight)),
	)
}
