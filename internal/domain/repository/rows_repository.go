package repository

import (
	"context"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// SalesMixRepository filas de mezcla de ventas. BulkUpsert deduplica por
// (company_id, order_id, item_selection_id, sent_date); la fila entrante gana.
type SalesMixRepository interface {
	BulkUpsert(ctx context.Context, rows []entity.SalesMixRow) (int, error)
	ListByCompany(ctx context.Context, companyID int64) ([]entity.SalesMixRow, error)
}

// FinancialRepository filas semanales del dashboard company-wide.
// ListByCompany y ListByFile son las fuentes del motor de agregación.
type FinancialRepository interface {
	BulkUpsert(ctx context.Context, rows []entity.FinancialRow) (int, error)
	ListByCompany(ctx context.Context, companyID int64) ([]entity.FinancialRow, error)
	// ListByFile acota las filas a una subida concreta por su nombre lógico.
	ListByFile(ctx context.Context, companyID int64, fileName string) ([]entity.FinancialRow, error)
}

// BudgetRepository filas de presupuesto.
type BudgetRepository interface {
	BulkUpsert(ctx context.Context, rows []entity.BudgetRow) (int, error)
	ListByCompany(ctx context.Context, companyID int64) ([]entity.BudgetRow, error)
}
