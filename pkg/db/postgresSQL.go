package db

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var embeddedSchema string

type PoolOptions struct {
	URL             string
	MaxConns        int
	MinConns        int
	MaxConnIdleTime time.Duration
}

// Connect opens a pool and pings it.
func Connect(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	config, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = int32(opts.MaxConns)
	}
	if opts.MinConns > 0 {
		config.MinConns = int32(opts.MinConns)
	}
	if opts.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = opts.MaxConnIdleTime
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return pool, nil
}

// ApplySchema executes the schema file at schemaPath, or the embedded schema
// when schemaPath is empty.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool, schemaPath string) error {
	sql, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

func loadSchema(schemaPath string) (string, error) {
	sql := embeddedSchema
	if schemaPath != "" {
		bytes, err := os.ReadFile(schemaPath)
		if err != nil {
			return "", fmt.Errorf("read schema file: %w", err)
		}
		sql = string(bytes)
	}

	sql = strings.TrimSpace(sql)
	if sql == "" {
		return "", fmt.Errorf("schema file is empty: %s", schemaPath)
	}
	return sql, nil
}
