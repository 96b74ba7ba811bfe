package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/repositories"
	"card-rewards-api/internal/repositories/repository_mocks"
	"card-rewards-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CardServiceSuite defines the test suite for CardServiceInterface
type CardServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	cardRepo *repository_mocks.MockCardRepositoryInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	breaker  CircuitBreakerInterface
	service  *cardService
	ctx      context.Context
	userID   uuid.UUID
}

func (s *CardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cardRepo = repository_mocks.NewMockCardRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, Cooldown: time.Minute})
	s.service = NewCardService(s.cardRepo, s.breaker, newDiscardRewardsLogger(), s.metrics).(*cardService)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *CardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CardServiceSuite))
}

func (s *CardServiceSuite) expectUpstreamFailure() {
	s.metrics.EXPECT().IncrementCounter("upstream_failure", map[string]string{"source": sourceCards})
	s.metrics.EXPECT().RecordGauge("circuit_breaker_state", gomock.Any(), map[string]string{"service": "rewards-store"})
}

func (s *CardServiceSuite) validCreateRequest() *dto.CreateCardRequest {
	return &dto.CreateCardRequest{
		BankName:   "HDFC Bank",
		CardName:   "Regalia",
		LastFour:   gofakeit.Numerify("####"),
		RewardType: "POINTS",
		RewardRate: decimal.NewFromFloat(2.5),
		Categories: []string{"Food & Dining", "dining", "travel"},
		ExpiryDate: "2027-03-31",
	}
}

func (s *CardServiceSuite) TestCreateCard_NormalizesInput() {
	cardID := uuid.New()
	s.cardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, card *models.Card) error {
			card.ID = cardID
			return nil
		})
	s.metrics.EXPECT().IncrementCounter("card_created", nil)

	card, err := s.service.CreateCard(s.ctx, s.userID, s.validCreateRequest())

	s.Require().NoError(err)
	s.Equal(cardID, card.ID)
	s.Equal(s.userID, card.UserID)
	s.Equal(models.RewardTypePoints, card.RewardType)
	s.Equal(models.StringList{models.CategoryDining, models.CategoryTravel}, card.Categories)
	s.Require().NotNil(card.ExpiryDate)
	s.Equal("2027-03-31", card.ExpiryDate.Format(dto.DateLayout))
}

func (s *CardServiceSuite) TestCreateCard_UnknownCategory() {
	req := s.validCreateRequest()
	req.Categories = []string{"Pets"}

	_, err := s.service.CreateCard(s.ctx, s.userID, req)

	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CardServiceSuite) TestCreateCard_InvalidExpiryDate() {
	req := s.validCreateRequest()
	req.ExpiryDate = "31/03/2027"

	_, err := s.service.CreateCard(s.ctx, s.userID, req)

	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CardServiceSuite) TestCreateCard_InvalidRewardType() {
	req := s.validCreateRequest()
	req.RewardType = "vouchers"

	_, err := s.service.CreateCard(s.ctx, s.userID, req)

	s.ErrorIs(err, ErrInvalidInput)
	s.ErrorIs(err, models.ErrInvalidRewardType)
}

func (s *CardServiceSuite) TestCreateCard_StoreFailure() {
	s.cardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	s.expectUpstreamFailure()

	_, err := s.service.CreateCard(s.ctx, s.userID, s.validCreateRequest())

	s.ErrorIs(err, ErrUpstreamUnavailable)
}

func (s *CardServiceSuite) TestGetCard_NotFound() {
	cardID := uuid.New()
	s.cardRepo.EXPECT().GetByID(gomock.Any(), s.userID, cardID).Return(nil, repositories.ErrCardNotFound)

	_, err := s.service.GetCard(s.ctx, s.userID, cardID)

	s.ErrorIs(err, ErrCardNotFound)
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CardServiceSuite) TestListCards_Success() {
	cards := []models.Card{fakeCard(s.userID, "1.0"), fakeCard(s.userID, "2.0")}
	s.cardRepo.EXPECT().ListByUser(gomock.Any(), s.userID).Return(cards, nil)

	result, err := s.service.ListCards(s.ctx, s.userID)

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *CardServiceSuite) TestListCards_BreakerOpensAfterRepeatedFailures() {
	s.cardRepo.EXPECT().ListByUser(gomock.Any(), s.userID).Return(nil, errors.New("timeout")).Times(2)
	s.expectUpstreamFailure()
	s.expectUpstreamFailure()

	for i := 0; i < 2; i++ {
		_, err := s.service.ListCards(s.ctx, s.userID)
		s.ErrorIs(err, ErrUpstreamUnavailable)
	}

	_, err := s.service.ListCards(s.ctx, s.userID)
	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Equal(StateOpen, s.breaker.GetState())
}

func (s *CardServiceSuite) TestUpdateCard_PartialUpdate() {
	existing := fakeCard(s.userID, "1.0", models.CategoryFuel)
	newName := "Regalia Gold"
	balance := int64(5000)

	s.cardRepo.EXPECT().GetByID(gomock.Any(), s.userID, existing.ID).Return(&existing, nil)
	s.cardRepo.EXPECT().Update(gomock.Any(), gomock.Any(), []string{"card_name", "points_balance"}).DoAndReturn(
		func(_ context.Context, card *models.Card, _ []string) error {
			s.Equal(newName, card.CardName)
			s.Equal(balance, card.PointsBalance)
			s.Equal(models.StringList{models.CategoryFuel}, card.Categories)
			return nil
		})
	s.metrics.EXPECT().IncrementCounter("card_updated", nil)

	card, err := s.service.UpdateCard(s.ctx, s.userID, existing.ID, &dto.UpdateCardRequest{
		CardName:      &newName,
		PointsBalance: &balance,
	})

	s.Require().NoError(err)
	s.Equal(newName, card.CardName)
}

func (s *CardServiceSuite) TestUpdateCard_ClearsExpiryDate() {
	existing := fakeCard(s.userID, "1.0")
	expiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	existing.ExpiryDate = &expiry
	empty := ""

	s.cardRepo.EXPECT().GetByID(gomock.Any(), s.userID, existing.ID).Return(&existing, nil)
	s.cardRepo.EXPECT().Update(gomock.Any(), gomock.Any(), []string{"expiry_date"}).Return(nil)
	s.metrics.EXPECT().IncrementCounter("card_updated", nil)

	card, err := s.service.UpdateCard(s.ctx, s.userID, existing.ID, &dto.UpdateCardRequest{ExpiryDate: &empty})

	s.Require().NoError(err)
	s.Nil(card.ExpiryDate)
}

func (s *CardServiceSuite) TestUpdateCard_NoChanges() {
	existing := fakeCard(s.userID, "1.0")
	s.cardRepo.EXPECT().GetByID(gomock.Any(), s.userID, existing.ID).Return(&existing, nil)

	card, err := s.service.UpdateCard(s.ctx, s.userID, existing.ID, &dto.UpdateCardRequest{})

	s.Require().NoError(err)
	s.Equal(existing.ID, card.ID)
}

func (s *CardServiceSuite) TestUpdateCard_NotFound() {
	cardID := uuid.New()
	name := "New"
	s.cardRepo.EXPECT().GetByID(gomock.Any(), s.userID, cardID).Return(nil, repositories.ErrCardNotFound)

	_, err := s.service.UpdateCard(s.ctx, s.userID, cardID, &dto.UpdateCardRequest{CardName: &name})

	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardServiceSuite) TestDeleteCard() {
	cardID := uuid.New()
	s.cardRepo.EXPECT().Delete(gomock.Any(), s.userID, cardID).Return(nil)
	s.metrics.EXPECT().IncrementCounter("card_deleted", nil)

	s.NoError(s.service.DeleteCard(s.ctx, s.userID, cardID))
}

func (s *CardServiceSuite) TestDeleteCard_NotFound() {
	cardID := uuid.New()
	s.cardRepo.EXPECT().Delete(gomock.Any(), s.userID, cardID).Return(repositories.ErrCardNotFound)

	s.ErrorIs(s.service.DeleteCard(s.ctx, s.userID, cardID), ErrCardNotFound)
}
