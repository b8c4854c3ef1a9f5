package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DbDao shares one pgx pool between gorm and health checks.
type DbDao struct {
	*gorm.DB
	pool *pgxpool.Pool
}

func NewDbDao(pool *pgxpool.Pool) (*DbDao, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	conn, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm on pgx pool: %w", err)
	}
	return &DbDao{DB: conn, pool: pool}, nil
}

func GetDbConn(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (d *DbDao) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *DbDao) Close() {
	if sqlDB, err := d.DB.DB(); err == nil {
		sqlDB.Close()
	}
	d.pool.Close()
}
