package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/resto-dash/internal/application/ingest"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// Ensure TxRunner implementa los contratos transaccionales de la aplicación.
var _ ingest.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunIngest inicia una transacción con los repos que escribe la ingesta y hace
// Commit o Rollback. El archivo en disco queda fuera de la transacción a
// propósito: si algo falla después de guardarlo, se conserva para forense.
func (r *TxRunner) RunIngest(ctx context.Context, fn func(
	salesRepo repository.SalesMixRepository,
	finRepo repository.FinancialRepository,
	budgetRepo repository.BudgetRepository,
	masterRepo repository.MasterFileRepository,
	logRepo repository.LogRepository,
	uploadRepo repository.UploadedFileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	salesRepo := NewSalesMixRepository(tx)
	finRepo := NewFinancialRepository(tx)
	budgetRepo := NewBudgetRepository(tx)
	masterRepo := NewMasterFileRepository(tx)
	logRepo := NewLogRepository(tx)
	uploadRepo := NewUploadedFileRepository(tx)

	if err := fn(salesRepo, finRepo, budgetRepo, masterRepo, logRepo, uploadRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTenant inicia una transacción con los repos de locations y su relación
// company_locations (alta de local en un solo commit).
func (r *TxRunner) RunTenant(ctx context.Context, fn func(
	locationRepo repository.LocationRepository,
	clRepo repository.CompanyLocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLocationRepository(tx), NewCompanyLocationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
