package database

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// PostgresClient wraps the sqlx handle for the group catalog database.
type PostgresClient struct {
	db *sqlx.DB
}

// NewPostgresClient opens a connection pool against Postgres via the pgx
// stdlib driver and verifies it with a ping.
func NewPostgresClient(cfg models.DatabaseConfig) (*PostgresClient, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &PostgresClient{db: db}, nil
}

// GetDB exposes the underlying sqlx handle to repositories.
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Close shuts down the pool.
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
