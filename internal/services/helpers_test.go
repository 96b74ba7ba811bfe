package services

import (
	"io"
	"log/slog"
	"time"

	"card-rewards-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardRewardsLogger() RewardsLoggerInterface {
	return NewRewardsLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fakeCard(userID uuid.UUID, rate string, categories ...string) models.Card {
	return models.Card{
		ID:         uuid.New(),
		UserID:     userID,
		BankName:   gofakeit.Company(),
		CardName:   gofakeit.Word() + " Card",
		LastFour:   gofakeit.Numerify("####"),
		RewardType: models.RewardTypePoints,
		RewardRate: decimal.RequireFromString(rate),
		Categories: models.StringList(categories),
		CreatedAt:  time.Now().UTC(),
	}
}

func fakeTransaction(card models.Card, merchant, category, amount string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:       uuid.New(),
		UserID:   card.UserID,
		CardID:   card.ID,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Merchant: merchant,
		Date:     date,
	}
}
