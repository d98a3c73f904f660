package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Migrate aplica el schema embebido (CREATE TABLE IF NOT EXISTS, idempotente).
// Se ejecuta una vez al arrancar el proceso.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
