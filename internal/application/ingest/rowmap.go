package ingest

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/infrastructure/excel"
)

// cell devuelve la celda de la columna idx o "" si la columna no existe.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

// mapSalesMix convierte el workbook de mezcla de ventas en filas de entidad.
// Columna centinela: "Net Price".
func mapSalesMix(wb *excel.Workbook, companyID int64) ([]entity.SalesMixRow, error) {
	if wb.Column("Net Price") < 0 {
		return nil, fmt.Errorf("%w: el archivo no parece de sales-mix (falta la columna 'Net Price')", domain.ErrInvalidInput)
	}

	col := func(name string) int { return wb.Column(name) }
	var (
		cLocation  = col("Location")
		cOrderID   = col("Order Id")
		cItemSel   = col("Item Selection Id")
		cSentDate  = col("Sent Date")
		cMenu      = col("Menu")
		cMenuItem  = col("Menu Item")
		cSalesCat  = col("Sales Category")
		cCategory  = col("Category")
		cNetPrice  = col("Net Price")
		cQty       = col("Qty")
		cYear      = col("Year")
		cQuarter   = col("Quarter")
		cMonth     = col("Month")
		cWeek      = col("Week")
		cDayOfWeek = col("Day of Week")
		cHelper1   = col("Helper 1")
		cHelper4   = col("Helper 4")
	)

	rows := make([]entity.SalesMixRow, 0, len(wb.Rows))
	for i, raw := range wb.Rows {
		sentDate, err := parseDate(cell(raw, cSentDate))
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", i+2, err)
		}
		rows = append(rows, entity.SalesMixRow{
			CompanyID:       companyID,
			Location:        CleanStore(cell(raw, cLocation)),
			OrderID:         parseInt64(cell(raw, cOrderID)),
			ItemSelectionID: parseInt64(cell(raw, cItemSel)),
			SentDate:        sentDate,
			Menu:            cell(raw, cMenu),
			MenuItem:        cell(raw, cMenuItem),
			SalesCategory:   cell(raw, cSalesCat),
			Category:        cell(raw, cCategory),
			NetPrice:        parseDecimal(cell(raw, cNetPrice)),
			Qty:             parseDecimal(cell(raw, cQty)),
			Year:            parseInt(cell(raw, cYear)),
			Quarter:         parseInt(cell(raw, cQuarter)),
			Month:           parseInt(cell(raw, cMonth)),
			Week:            parseInt(cell(raw, cWeek)),
			DayOfWeek:       cell(raw, cDayOfWeek),
			Helper1:         cell(raw, cHelper1),
			Helper4:         cell(raw, cHelper4),
		})
	}
	return rows, nil
}

// mapFinancial convierte la hoja Database del dashboard company-wide.
// Columna centinela: "Store".
func mapFinancial(wb *excel.Workbook, companyID int64) ([]entity.FinancialRow, error) {
	if wb.Column("Store") < 0 {
		return nil, fmt.Errorf("%w: el archivo no parece de company-wide (falta la columna 'Store')", domain.ErrInvalidInput)
	}

	col := func(name string) int { return wb.Column(name) }
	var (
		cStore   = col("Store")
		cDate    = col("Date")
		cYear    = col("Year")
		cQuarter = col("Quarter")
		cHelper4 = col("Helper 4")
	)
	metricCols := [21]int{
		col("Tw Sales"), col("Lw Sales"), col("Ly Sales"),
		col("Tw Orders"), col("Lw Orders"), col("Ly Orders"),
		col("Tw Avg Tckt"), col("Lw Avg Tckt"), col("Ly Avg Tckt"),
		col("Tw COGS"), col("Lw COGS"), col("Ly COGS"),
		col("Tw Reg Pay"), col("Lw Reg Pay"), col("Ly Reg Pay"),
		col("Tw Lb Hrs"), col("Lw Lb Hrs"), col("Ly Lb Hrs"),
		col("Tw SPMH"), col("Lw SPMH"), col("Ly SPMH"),
	}

	rows := make([]entity.FinancialRow, 0, len(wb.Rows))
	for i, raw := range wb.Rows {
		date, err := parseDate(cell(raw, cDate))
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", i+2, err)
		}
		r := entity.FinancialRow{
			CompanyID: companyID,
			Store:     CleanStore(cell(raw, cStore)),
			Date:      date,
			Year:      parseInt(cell(raw, cYear)),
			Quarter:   parseInt(cell(raw, cQuarter)),
			Helper4:   cell(raw, cHelper4),
		}
		for j := range metricCols {
			*financialMetric(&r, j) = parseDecimal(cell(raw, metricCols[j]))
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// financialMetric devuelve el puntero a la métrica j en el orden de metricCols.
func financialMetric(r *entity.FinancialRow, j int) *decimal.Decimal {
	ptrs := [21]*decimal.Decimal{
		&r.TwSales, &r.LwSales, &r.LySales,
		&r.TwOrders, &r.LwOrders, &r.LyOrders,
		&r.TwAvgTicket, &r.LwAvgTicket, &r.LyAvgTicket,
		&r.TwCOGS, &r.LwCOGS, &r.LyCOGS,
		&r.TwRegPay, &r.LwRegPay, &r.LyRegPay,
		&r.TwLbHours, &r.LwLbHours, &r.LyLbHours,
		&r.TwSPMH, &r.LwSPMH, &r.LySPMH,
	}
	return ptrs[j]
}

// mapBudget convierte la hoja Database del dashboard de presupuesto.
// Columnas centinela: "Store" y "Year".
func mapBudget(wb *excel.Workbook, companyID int64) ([]entity.BudgetRow, error) {
	if wb.Column("Store") < 0 || wb.Column("Year") < 0 {
		return nil, fmt.Errorf("%w: el archivo no parece de budget (faltan las columnas 'Store'/'Year')", domain.ErrInvalidInput)
	}

	col := func(name string) int { return wb.Column(name) }
	var (
		cStore    = col("Store")
		cYear     = col("Year")
		cQuarter  = col("Quarter")
		cMonth    = col("Month")
		cWeek     = col("Week")
		cHelper4  = col("Helper 4")
		cNetSales = col("Net Sales")
		cBudget   = col("Budget")
		cCOGS     = col("Cost of Goods")
		cLabor    = col("Labor Cost")
	)

	rows := make([]entity.BudgetRow, 0, len(wb.Rows))
	for _, raw := range wb.Rows {
		rows = append(rows, entity.BudgetRow{
			CompanyID:   companyID,
			Store:       CleanStore(cell(raw, cStore)),
			Year:        parseInt(cell(raw, cYear)),
			Quarter:     parseInt(cell(raw, cQuarter)),
			Month:       parseInt(cell(raw, cMonth)),
			Week:        parseInt(cell(raw, cWeek)),
			Helper4:     cell(raw, cHelper4),
			NetSales:    parseDecimal(cell(raw, cNetSales)),
			BudgetSales: parseDecimal(cell(raw, cBudget)),
			CostOfGoods: parseDecimal(cell(raw, cCOGS)),
			LaborCost:   parseDecimal(cell(raw, cLabor)),
		})
	}
	return rows, nil
}
