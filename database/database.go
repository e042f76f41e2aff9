package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fintra-backend/config"
	"fintra-backend/models"
)

// Open connects to Postgres and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Holding{},
		&models.Trade{},
		&models.WatchlistItem{},
		&models.JournalEntry{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate models: %w", err)
	}
	return db, nil
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

const holdingsBatchSize = 100

// ReplaceHoldings swaps a user's entire portfolio snapshot in one
// transaction: every prior row is deleted and the new snapshot inserted.
// Portfolio persistence is whole-collection replace, never incremental.
func ReplaceHoldings(db *gorm.DB, userID uint, rows []models.Holding) error {
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Holding{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear portfolio: %w", err)
	}
	if len(rows) > 0 {
		if err := tx.CreateInBatches(rows, holdingsBatchSize).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert portfolio snapshot: %w", err)
		}
	}
	return tx.Commit().Error
}

// MissingTableHint reports whether err is Postgres undefined_table
// (SQLSTATE 42P01). It is the one storage detail surfaced to clients, since
// the usual cause is a fresh database that never ran migrations.
func MissingTableHint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
		return fmt.Sprintf("%s: run the database migrations first", pgErr.Message), true
	}
	return "", false
}
