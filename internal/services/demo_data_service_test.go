package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DemoDataServiceSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	cardService        *service_mocks.MockCardServiceInterface
	transactionService *service_mocks.MockTransactionServiceInterface
	service            *demoDataService
	userID             uuid.UUID
	today              time.Time
}

func (s *DemoDataServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cardService = service_mocks.NewMockCardServiceInterface(s.ctrl)
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.userID = uuid.New()
	s.today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	s.service = NewDemoDataService(s.cardService, s.transactionService).(*demoDataService)
	s.service.rng = rand.New(rand.NewSource(42))
	s.service.now = func() time.Time { return s.today.Add(13 * time.Hour) }
}

func (s *DemoDataServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDemoDataServiceSuite(t *testing.T) {
	suite.Run(t, new(DemoDataServiceSuite))
}

func (s *DemoDataServiceSuite) TestGenerate_BillsRepeatMonthlyAtFixedPrice() {
	cards := []models.Card{fakeCard(s.userID, "1"), fakeCard(s.userID, "2")}
	start := s.today.AddDate(0, -3, 0)

	purchases := s.service.generate(cards, start, s.today)

	for _, bill := range demoBills {
		var charges []dto.CreateTransactionRequest
		for _, p := range purchases {
			if p.Merchant == bill.Name {
				charges = append(charges, p)
			}
		}
		s.Require().GreaterOrEqual(len(charges), 3, bill.Name)
		for _, c := range charges {
			s.True(c.Amount.Equal(charges[0].Amount), "%s price drifted", bill.Name)
			s.Equal(charges[0].CardID, c.CardID)
			s.Equal(bill.MCCCode, c.MCCCode)
		}
	}
}

func (s *DemoDataServiceSuite) TestGenerate_OrderedAndInRange() {
	cards := []models.Card{fakeCard(s.userID, "1")}
	start := s.today.AddDate(0, -1, 0)

	purchases := s.service.generate(cards, start, s.today)
	s.Require().NotEmpty(purchases)

	first := start.Format(dto.DateLayout)
	last := s.today.Format(dto.DateLayout)
	for i, p := range purchases {
		s.GreaterOrEqual(p.Date, first)
		s.LessOrEqual(p.Date, last)
		s.True(p.Amount.IsPositive())
		s.Empty(p.Category, "category is left to inference")
		if i > 0 {
			s.LessOrEqual(purchases[i-1].Date, p.Date)
		}
	}
}

func (s *DemoDataServiceSuite) TestSeedTransactions_RecordsEveryPurchase() {
	card := fakeCard(s.userID, "2", models.CategoryDining)
	s.cardService.EXPECT().ListCards(gomock.Any(), s.userID).Return([]models.Card{card}, nil)

	calls := 0
	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.CreateTransactionRequest, _ string) (*models.Transaction, bool, error) {
			calls++
			s.Equal(card.ID.String(), req.CardID)
			return &models.Transaction{ID: uuid.New(), PointsEarned: 10}, false, nil
		}).
		AnyTimes()

	summary, err := s.service.SeedTransactions(context.Background(), s.userID, 2)

	s.Require().NoError(err)
	s.Equal(calls, summary.Created)
	s.Equal(int64(10*calls), summary.PointsEarned)
	s.Equal(s.today, summary.To)
	s.Equal(s.today.AddDate(0, -2, 0), summary.From)
	s.GreaterOrEqual(summary.Created, 2*len(demoBills))
}

func (s *DemoDataServiceSuite) TestSeedTransactions_InvalidMonths() {
	for _, months := range []int{-1, maxDemoMonths + 1} {
		_, err := s.service.SeedTransactions(context.Background(), s.userID, months)
		s.ErrorIs(err, ErrInvalidInput)
	}
}

func (s *DemoDataServiceSuite) TestSeedTransactions_NoCards() {
	s.cardService.EXPECT().ListCards(gomock.Any(), s.userID).Return(nil, nil)

	_, err := s.service.SeedTransactions(context.Background(), s.userID, 0)
	s.ErrorIs(err, ErrNoCards)
}

func (s *DemoDataServiceSuite) TestSeedTransactions_StopsOnFailure() {
	card := fakeCard(s.userID, "1")
	s.cardService.EXPECT().ListCards(gomock.Any(), s.userID).Return([]models.Card{card}, nil)
	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), "").
		Return(nil, false, ErrUpstreamUnavailable)

	_, err := s.service.SeedTransactions(context.Background(), s.userID, 1)

	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.False(errors.Is(err, ErrInvalidInput))
}
