package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMixRow fila del dashboard de mezcla de ventas (una línea de ticket).
// Clave de deduplicación: (CompanyID, OrderID, ItemSelectionID, SentDate);
// al reingerir, la fila entrante sobrescribe.
type SalesMixRow struct {
	CompanyID       int64
	Location        string
	OrderID         int64
	ItemSelectionID int64
	SentDate        time.Time
	Menu            string
	MenuItem        string
	SalesCategory   string
	Category        string
	NetPrice        decimal.Decimal
	Qty             decimal.Decimal
	Year            int
	Quarter         int
	Month           int
	Week            int
	DayOfWeek       string
	Helper1         string
	Helper4         string
}

// FinancialRow fila semanal del dashboard company-wide. Prefijos de métricas:
// Tw = esta semana, Lw = semana pasada, Ly = mismo período del año anterior.
type FinancialRow struct {
	CompanyID int64
	Store     string
	Date      time.Time
	Year      int
	Quarter   int
	Helper4   string // etiqueta de período opaca del spreadsheet origen
	FileName  string // nombre lógico de la subida de origen (clave del master file)

	TwSales decimal.Decimal
	LwSales decimal.Decimal
	LySales decimal.Decimal

	TwOrders decimal.Decimal
	LwOrders decimal.Decimal
	LyOrders decimal.Decimal

	TwAvgTicket decimal.Decimal
	LwAvgTicket decimal.Decimal
	LyAvgTicket decimal.Decimal

	TwCOGS decimal.Decimal
	LwCOGS decimal.Decimal
	LyCOGS decimal.Decimal

	TwRegPay decimal.Decimal
	LwRegPay decimal.Decimal
	LyRegPay decimal.Decimal

	TwLbHours decimal.Decimal
	LwLbHours decimal.Decimal
	LyLbHours decimal.Decimal

	TwSPMH decimal.Decimal
	LwSPMH decimal.Decimal
	LySPMH decimal.Decimal
}

// BudgetRow fila del dashboard de presupuesto.
type BudgetRow struct {
	CompanyID   int64
	Store       string
	Year        int
	Quarter     int
	Month       int
	Week        int
	Helper4     string
	NetSales    decimal.Decimal
	BudgetSales decimal.Decimal
	CostOfGoods decimal.Decimal
	LaborCost   decimal.Decimal
}
