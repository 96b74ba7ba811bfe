package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"card-rewards-api/internal/config"
	"card-rewards-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the card and transaction tables from the models
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Card{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the connection is alive
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the lookup indexes AutoMigrate does not derive from the models.
// Failures are logged and skipped.
func (db *DB) CreateIndexes(logger *slog.Logger) int {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_cards_user_id ON cards(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_cards_expiry_date ON cards(expiry_date) WHERE expiry_date IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id_date ON transactions(user_id, date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_card_id ON transactions(card_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_merchant_lower ON transactions(LOWER(merchant))",
	}

	failed := 0
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			logger.Warn("failed to create index", "query", query, "error", err)
			failed++
		}
	}
	return failed
}

// GormLogLevel picks the gorm log level for an environment
func GormLogLevel(cfg *config.Config) logger.LogLevel {
	if cfg.IsDevelopment() {
		return logger.Info
	}
	return logger.Warn
}

// Initialize connects to postgres and brings the schema up to date, through
// the SQL migrations when AUTO_MIGRATE is set and gorm AutoMigrate otherwise.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database, GormLogLevel(cfg))
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		runner := NewMigrationRunner(sqlDB, log, WithSeeds(cfg.Database.SeedDemoData))
		if err := runner.Apply(ctx); err != nil {
			log.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db.CreateIndexes(log)
	log.Info("database initialized", "sql_migrations", migrated)

	return db, nil
}
