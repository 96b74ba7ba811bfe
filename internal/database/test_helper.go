package database

import (
	"fmt"
	"testing"
	"time"

	"card-rewards-api/internal/config"
	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"transactions",
	"cards",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestCard inserts a points card for the user with the given bonus categories
func CreateTestCard(t *testing.T, db *DB, userID uuid.UUID, name string, rate string, categories ...string) *models.Card {
	t.Helper()

	card := &models.Card{
		UserID:     userID,
		BankName:   "Test Bank",
		CardName:   name,
		LastFour:   "4242",
		RewardType: models.RewardTypePoints,
		RewardRate: decimal.RequireFromString(rate),
		Categories: models.StringList(categories),
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	return card
}

// CreateTestTransaction inserts a transaction without touching the card balance
func CreateTestTransaction(t *testing.T, db *DB, card *models.Card, merchant, category, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   card.UserID,
		CardID:   card.ID,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Merchant: merchant,
		Date:     date,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
