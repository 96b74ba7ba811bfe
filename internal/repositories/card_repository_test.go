package repositories

import (
	"context"
	"testing"
	"time"

	"card-rewards-api/internal/database"
	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CardRepositorySuite defines the test suite for CardRepository
type CardRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   CardRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *CardRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCardRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *CardRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CardRepositorySuite))
}

func (s *CardRepositorySuite) newCard(name string, categories ...string) *models.Card {
	return &models.Card{
		UserID:     s.userID,
		BankName:   "HDFC",
		CardName:   name,
		RewardType: models.RewardTypePoints,
		RewardRate: decimal.RequireFromString("2"),
		Categories: models.StringList(categories),
	}
}

func (s *CardRepositorySuite) TestCreate() {
	card := s.newCard("Regalia", models.CategoryTravel, models.CategoryDining)

	err := s.repo.Create(s.ctx, card)
	s.NoError(err)
	s.NotEqual(uuid.Nil, card.ID)
	s.NotZero(card.CreatedAt)

	found, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.Require().NoError(err)
	s.Equal(models.StringList{models.CategoryTravel, models.CategoryDining}, found.Categories)
	s.True(found.RewardRate.Equal(decimal.NewFromInt(2)))
}

func (s *CardRepositorySuite) TestCreate_InvalidCard() {
	card := s.newCard("Regalia")
	card.RewardRate = decimal.Zero

	err := s.repo.Create(s.ctx, card)
	s.ErrorIs(err, models.ErrInvalidRewardRate)
}

func (s *CardRepositorySuite) TestGetByID_ScopedToUser() {
	card := s.newCard("Regalia")
	s.Require().NoError(s.repo.Create(s.ctx, card))

	_, err := s.repo.GetByID(s.ctx, uuid.New(), card.ID)
	s.ErrorIs(err, ErrCardNotFound)

	_, err = s.repo.GetByID(s.ctx, s.userID, uuid.New())
	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardRepositorySuite) TestListByUser_OldestFirst() {
	first := s.newCard("First")
	first.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := s.newCard("Second")
	second.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	other := s.newCard("Other")
	other.UserID = uuid.New()

	s.Require().NoError(s.repo.Create(s.ctx, second))
	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Create(s.ctx, other))

	cards, err := s.repo.ListByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Equal("First", cards[0].CardName)
	s.Equal("Second", cards[1].CardName)
}

func (s *CardRepositorySuite) TestListByUser_Empty() {
	cards, err := s.repo.ListByUser(s.ctx, s.userID)
	s.NoError(err)
	s.NotNil(cards)
	s.Empty(cards)
}

func (s *CardRepositorySuite) TestUpdate() {
	card := s.newCard("Regalia", models.CategoryTravel)
	s.Require().NoError(s.repo.Create(s.ctx, card))

	expiry := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	card.CardName = "Regalia Gold"
	card.Categories = models.StringList{}
	card.PointsBalance = 0
	card.ExpiryDate = &expiry

	s.Require().NoError(s.repo.Update(s.ctx, card, []string{"card_name", "categories", "expiry_date"}))

	found, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.Require().NoError(err)
	s.Equal("Regalia Gold", found.CardName)
	s.Empty(found.Categories)
	s.Require().NotNil(found.ExpiryDate)
	s.True(expiry.Equal(*found.ExpiryDate))
}

func (s *CardRepositorySuite) TestUpdate_OtherUser() {
	card := s.newCard("Regalia")
	s.Require().NoError(s.repo.Create(s.ctx, card))

	card.UserID = uuid.New()
	card.CardName = "Hijacked"

	err := s.repo.Update(s.ctx, card, []string{"card_name"})
	s.ErrorIs(err, ErrCardNotFound)

	found, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.Require().NoError(err)
	s.Equal("Regalia", found.CardName)
}

func (s *CardRepositorySuite) TestUpdate_KeepsPointsCreditedSinceRead() {
	card := s.newCard("Regalia", models.CategoryTravel)
	s.Require().NoError(s.repo.Create(s.ctx, card))
	transactions := NewTransactionRepository(s.db.DB)

	stale, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.Require().NoError(err)

	s.Require().NoError(transactions.CreateWithPoints(s.ctx, &models.Transaction{
		UserID:       s.userID,
		CardID:       card.ID,
		Amount:       decimal.RequireFromString("50"),
		Category:     models.CategoryTravel,
		Merchant:     "MakeMyTrip",
		PointsEarned: 100,
		Date:         time.Now().UTC(),
	}))

	stale.BankName = "HDFC Bank"
	s.Require().NoError(s.repo.Update(s.ctx, stale, []string{"bank_name"}))

	found, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.Require().NoError(err)
	s.Equal("HDFC Bank", found.BankName)
	s.Equal(int64(100), found.PointsBalance)
}

func (s *CardRepositorySuite) TestUpdate_ExplicitPointsBalance() {
	card := s.newCard("Regalia")
	card.PointsBalance = 250
	s.Require().NoError(s.repo.Create(s.ctx, card))

	card.PointsBalance = 900
	s.Require().NoError(s.repo.Update(s.ctx, card, []string{"points_balance"}))

	found, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.Require().NoError(err)
	s.Equal(int64(900), found.PointsBalance)
}

func (s *CardRepositorySuite) TestUpdate_RejectsColumns() {
	card := s.newCard("Regalia")
	s.Require().NoError(s.repo.Create(s.ctx, card))

	s.ErrorIs(s.repo.Update(s.ctx, card, nil), ErrNoCardColumns)
	s.ErrorIs(s.repo.Update(s.ctx, card, []string{"user_id"}), ErrUnknownCardColumns)
}

func (s *CardRepositorySuite) TestDelete_KeepsTransactions() {
	card := s.newCard("Regalia")
	s.Require().NoError(s.repo.Create(s.ctx, card))
	database.CreateTestTransaction(s.T(), s.db, card, "Netflix", models.CategoryEntertainment, "499", time.Now())
	database.CreateTestTransaction(s.T(), s.db, card, "Netflix", models.CategoryEntertainment, "499", time.Now().AddDate(0, -1, 0))

	s.Require().NoError(s.repo.Delete(s.ctx, s.userID, card.ID))

	_, err := s.repo.GetByID(s.ctx, s.userID, card.ID)
	s.ErrorIs(err, ErrCardNotFound)

	var count int64
	s.NoError(s.db.Model(&models.Transaction{}).Where("card_id = ?", card.ID).Count(&count).Error)
	s.Equal(int64(2), count)
}

func (s *CardRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, s.userID, uuid.New())
	s.ErrorIs(err, ErrCardNotFound)
}
