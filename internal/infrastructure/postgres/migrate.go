package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/gabodev/marketplace-api/internal/infrastructure/postgres/migrations"
	"github.com/gabodev/marketplace-api/pkg/config"
)

// Migrate aplica las migraciones embebidas (creación idempotente de tablas)
// sobre una conexión database/sql independiente del pool. Abre, migra y cierra:
// forma parte del bootstrap, no del camino de peticiones.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexión de migración: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
