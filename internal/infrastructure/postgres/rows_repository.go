package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

var _ repository.SalesMixRepository = (*SalesMixRepo)(nil)
var _ repository.FinancialRepository = (*FinancialRepo)(nil)
var _ repository.BudgetRepository = (*BudgetRepo)(nil)

// SalesMixRepo filas de mezcla de ventas sobre PostgreSQL.
type SalesMixRepo struct {
	q Querier
}

// NewSalesMixRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesMixRepository(q Querier) *SalesMixRepo {
	return &SalesMixRepo{q: q}
}

// BulkUpsert inserta las filas; en conflicto con la clave de deduplicación
// (company_id, order_id, item_selection_id, sent_date) la fila entrante gana.
func (r *SalesMixRepo) BulkUpsert(ctx context.Context, rows []entity.SalesMixRow) (int, error) {
	const query = `
		INSERT INTO sales_mix (
			company_id, location, order_id, item_selection_id, sent_date,
			menu, menu_item, sales_category, category, net_price, qty,
			year, quarter, month, week, day_of_week, helper_1, helper_4
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (company_id, order_id, item_selection_id, sent_date) DO UPDATE SET
			location = EXCLUDED.location,
			menu = EXCLUDED.menu,
			menu_item = EXCLUDED.menu_item,
			sales_category = EXCLUDED.sales_category,
			category = EXCLUDED.category,
			net_price = EXCLUDED.net_price,
			qty = EXCLUDED.qty,
			year = EXCLUDED.year,
			quarter = EXCLUDED.quarter,
			month = EXCLUDED.month,
			week = EXCLUDED.week,
			day_of_week = EXCLUDED.day_of_week,
			helper_1 = EXCLUDED.helper_1,
			helper_4 = EXCLUDED.helper_4`
	for i := range rows {
		row := &rows[i]
		_, err := r.q.Exec(ctx, query,
			row.CompanyID, row.Location, row.OrderID, row.ItemSelectionID, row.SentDate,
			row.Menu, row.MenuItem, row.SalesCategory, row.Category, row.NetPrice, row.Qty,
			row.Year, row.Quarter, row.Month, row.Week, row.DayOfWeek, row.Helper1, row.Helper4,
		)
		if err != nil {
			return i, fmt.Errorf("upsert sales_mix fila %d: %w", i, err)
		}
	}
	return len(rows), nil
}

// ListByCompany devuelve todas las filas del tenant.
func (r *SalesMixRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.SalesMixRow, error) {
	const query = `
		SELECT company_id, location, order_id, item_selection_id, sent_date,
		       menu, menu_item, sales_category, category, net_price, qty,
		       year, quarter, month, week, day_of_week, helper_1, helper_4
		FROM sales_mix WHERE company_id = $1
		ORDER BY sent_date ASC, order_id ASC, item_selection_id ASC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sales_mix: %w", err)
	}
	defer rows.Close()
	var list []entity.SalesMixRow
	for rows.Next() {
		var row entity.SalesMixRow
		if err := rows.Scan(
			&row.CompanyID, &row.Location, &row.OrderID, &row.ItemSelectionID, &row.SentDate,
			&row.Menu, &row.MenuItem, &row.SalesCategory, &row.Category, &row.NetPrice, &row.Qty,
			&row.Year, &row.Quarter, &row.Month, &row.Week, &row.DayOfWeek, &row.Helper1, &row.Helper4,
		); err != nil {
			return nil, fmt.Errorf("scan sales_mix: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// FinancialRepo filas semanales del dashboard company-wide sobre PostgreSQL.
type FinancialRepo struct {
	q Querier
}

// NewFinancialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinancialRepository(q Querier) *FinancialRepo {
	return &FinancialRepo{q: q}
}

// BulkUpsert inserta las filas; clave (company_id, store, date), la entrante gana.
func (r *FinancialRepo) BulkUpsert(ctx context.Context, rows []entity.FinancialRow) (int, error) {
	const query = `
		INSERT INTO financials_company_wide (
			company_id, store, date, year, quarter, helper_4, file_name,
			tw_sales, lw_sales, ly_sales,
			tw_orders, lw_orders, ly_orders,
			tw_avg_ticket, lw_avg_ticket, ly_avg_ticket,
			tw_cogs, lw_cogs, ly_cogs,
			tw_reg_pay, lw_reg_pay, ly_reg_pay,
			tw_lb_hours, lw_lb_hours, ly_lb_hours,
			tw_spmh, lw_spmh, ly_spmh
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		          $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (company_id, store, date) DO UPDATE SET
			year = EXCLUDED.year,
			quarter = EXCLUDED.quarter,
			helper_4 = EXCLUDED.helper_4,
			file_name = EXCLUDED.file_name,
			tw_sales = EXCLUDED.tw_sales, lw_sales = EXCLUDED.lw_sales, ly_sales = EXCLUDED.ly_sales,
			tw_orders = EXCLUDED.tw_orders, lw_orders = EXCLUDED.lw_orders, ly_orders = EXCLUDED.ly_orders,
			tw_avg_ticket = EXCLUDED.tw_avg_ticket, lw_avg_ticket = EXCLUDED.lw_avg_ticket, ly_avg_ticket = EXCLUDED.ly_avg_ticket,
			tw_cogs = EXCLUDED.tw_cogs, lw_cogs = EXCLUDED.lw_cogs, ly_cogs = EXCLUDED.ly_cogs,
			tw_reg_pay = EXCLUDED.tw_reg_pay, lw_reg_pay = EXCLUDED.lw_reg_pay, ly_reg_pay = EXCLUDED.ly_reg_pay,
			tw_lb_hours = EXCLUDED.tw_lb_hours, lw_lb_hours = EXCLUDED.lw_lb_hours, ly_lb_hours = EXCLUDED.ly_lb_hours,
			tw_spmh = EXCLUDED.tw_spmh, lw_spmh = EXCLUDED.lw_spmh, ly_spmh = EXCLUDED.ly_spmh`
	for i := range rows {
		row := &rows[i]
		_, err := r.q.Exec(ctx, query,
			row.CompanyID, row.Store, row.Date, row.Year, row.Quarter, row.Helper4, row.FileName,
			row.TwSales, row.LwSales, row.LySales,
			row.TwOrders, row.LwOrders, row.LyOrders,
			row.TwAvgTicket, row.LwAvgTicket, row.LyAvgTicket,
			row.TwCOGS, row.LwCOGS, row.LyCOGS,
			row.TwRegPay, row.LwRegPay, row.LyRegPay,
			row.TwLbHours, row.LwLbHours, row.LyLbHours,
			row.TwSPMH, row.LwSPMH, row.LySPMH,
		)
		if err != nil {
			return i, fmt.Errorf("upsert financials fila %d: %w", i, err)
		}
	}
	return len(rows), nil
}

const financialSelect = `
	SELECT company_id, store, date, year, quarter, helper_4, file_name,
	       tw_sales, lw_sales, ly_sales,
	       tw_orders, lw_orders, ly_orders,
	       tw_avg_ticket, lw_avg_ticket, ly_avg_ticket,
	       tw_cogs, lw_cogs, ly_cogs,
	       tw_reg_pay, lw_reg_pay, ly_reg_pay,
	       tw_lb_hours, lw_lb_hours, ly_lb_hours,
	       tw_spmh, lw_spmh, ly_spmh
	FROM financials_company_wide`

// ListByCompany devuelve todas las filas del tenant, orden estable para que el
// motor de agregación produzca salida determinista.
func (r *FinancialRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.FinancialRow, error) {
	rows, err := r.q.Query(ctx, financialSelect+` WHERE company_id = $1 ORDER BY date ASC, store ASC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list financials: %w", err)
	}
	return scanFinancialRows(rows)
}

// ListByFile acota las filas a la subida identificada por su nombre lógico.
func (r *FinancialRepo) ListByFile(ctx context.Context, companyID int64, fileName string) ([]entity.FinancialRow, error) {
	rows, err := r.q.Query(ctx,
		financialSelect+` WHERE company_id = $1 AND file_name = $2 ORDER BY date ASC, store ASC`,
		companyID, fileName)
	if err != nil {
		return nil, fmt.Errorf("list financials por archivo: %w", err)
	}
	return scanFinancialRows(rows)
}

func scanFinancialRows(rows pgx.Rows) ([]entity.FinancialRow, error) {
	defer rows.Close()
	var list []entity.FinancialRow
	for rows.Next() {
		var row entity.FinancialRow
		if err := rows.Scan(
			&row.CompanyID, &row.Store, &row.Date, &row.Year, &row.Quarter, &row.Helper4, &row.FileName,
			&row.TwSales, &row.LwSales, &row.LySales,
			&row.TwOrders, &row.LwOrders, &row.LyOrders,
			&row.TwAvgTicket, &row.LwAvgTicket, &row.LyAvgTicket,
			&row.TwCOGS, &row.LwCOGS, &row.LyCOGS,
			&row.TwRegPay, &row.LwRegPay, &row.LyRegPay,
			&row.TwLbHours, &row.LwLbHours, &row.LyLbHours,
			&row.TwSPMH, &row.LwSPMH, &row.LySPMH,
		); err != nil {
			return nil, fmt.Errorf("scan financials: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// BudgetRepo filas de presupuesto sobre PostgreSQL.
type BudgetRepo struct {
	q Querier
}

// NewBudgetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBudgetRepository(q Querier) *BudgetRepo {
	return &BudgetRepo{q: q}
}

// BulkUpsert inserta las filas; clave (company_id, store, year, week), la entrante gana.
func (r *BudgetRepo) BulkUpsert(ctx context.Context, rows []entity.BudgetRow) (int, error) {
	const query = `
		INSERT INTO budget (
			company_id, store, year, quarter, month, week, helper_4,
			net_sales, budget_sales, cost_of_goods, labor_cost
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (company_id, store, year, week) DO UPDATE SET
			quarter = EXCLUDED.quarter,
			month = EXCLUDED.month,
			helper_4 = EXCLUDED.helper_4,
			net_sales = EXCLUDED.net_sales,
			budget_sales = EXCLUDED.budget_sales,
			cost_of_goods = EXCLUDED.cost_of_goods,
			labor_cost = EXCLUDED.labor_cost`
	for i := range rows {
		row := &rows[i]
		_, err := r.q.Exec(ctx, query,
			row.CompanyID, row.Store, row.Year, row.Quarter, row.Month, row.Week, row.Helper4,
			row.NetSales, row.BudgetSales, row.CostOfGoods, row.LaborCost,
		)
		if err != nil {
			return i, fmt.Errorf("upsert budget fila %d: %w", i, err)
		}
	}
	return len(rows), nil
}

// ListByCompany devuelve todas las filas de presupuesto del tenant.
func (r *BudgetRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.BudgetRow, error) {
	const query = `
		SELECT company_id, store, year, quarter, month, week, helper_4,
		       net_sales, budget_sales, cost_of_goods, labor_cost
		FROM budget WHERE company_id = $1
		ORDER BY year ASC, week ASC, store ASC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list budget: %w", err)
	}
	defer rows.Close()
	var list []entity.BudgetRow
	for rows.Next() {
		var row entity.BudgetRow
		if err := rows.Scan(
			&row.CompanyID, &row.Store, &row.Year, &row.Quarter, &row.Month, &row.Week, &row.Helper4,
			&row.NetSales, &row.BudgetSales, &row.CostOfGoods, &row.LaborCost,
		); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
