// Package db opens the PostgreSQL connection pool used by the article store.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"article-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// PoolConfig extracts the pool settings from the database section.
func PoolConfig(cfg config.DatabaseConfig) ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}
}

// Configure applies the pool settings to db.
func Configure(db *sql.DB, cc ConnectionConfig) {
	db.SetMaxOpenConns(cc.MaxOpenConns)
	db.SetMaxIdleConns(cc.MaxIdleConns)
	db.SetConnMaxLifetime(cc.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cc.ConnMaxIdleTime)
}

// Open creates the pool through the pgx stdlib driver and verifies it with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	cc := PoolConfig(cfg)
	Configure(db, cc)
	logger.Info("database connection pool configured",
		slog.Int("max_open_conns", cc.MaxOpenConns),
		slog.Int("max_idle_conns", cc.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cc.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cc.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connection established successfully")
	return db, nil
}
