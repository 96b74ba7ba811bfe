package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultDemoMonths = 3
	maxDemoMonths     = 12
	maxDailyPurchases = 2
	billDayRange      = 28
)

// demoMerchant is a merchant the generator buys from, with a rupee price range
type demoMerchant struct {
	Name     string
	MCCCode  string
	MinPrice int64
	MaxPrice int64
}

// demoBills are charged once a month, on the same card and day, at a fixed price
var demoBills = []demoMerchant{
	{"Netflix", "4899", 199, 649},
	{"Spotify", "5815", 119, 179},
	{"Airtel Postpaid", "4814", 399, 999},
	{"Tata Power", "4900", 900, 3500},
	{"ACT Fibernet", "4899", 700, 1500},
}

var demoMerchants = []demoMerchant{
	{"Swiggy", "5814", 150, 900},
	{"Zomato", "5814", 150, 900},
	{"Starbucks", "5814", 250, 700},
	{"Barbeque Nation", "5812", 900, 3500},
	{"BigBasket", "5411", 400, 4000},
	{"DMart", "5411", 300, 3500},
	{"Blinkit", "5411", 100, 1200},
	{"Indian Oil", "5542", 500, 3000},
	{"HP Petrol Pump", "5542", 500, 3000},
	{"Amazon", "5942", 300, 6000},
	{"Flipkart", "5732", 300, 8000},
	{"Myntra", "5651", 600, 4000},
	{"Croma", "5732", 1500, 25000},
	{"PVR Cinemas", "7832", 300, 1200},
	{"BookMyShow", "7922", 200, 1500},
	{"MakeMyTrip", "4722", 2500, 18000},
	{"IndiGo", "3000", 3500, 15000},
	{"Uber", "4121", 120, 800},
	{"Apollo Pharmacy", "5912", 150, 1500},
}

// demoDataService fills a development account with realistic purchases.
// Everything goes through the transaction service so category inference
// and points crediting run exactly as for client requests.
type demoDataService struct {
	cardService        CardServiceInterface
	transactionService TransactionServiceInterface

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewDemoDataService creates a new demo data generator
func NewDemoDataService(cardService CardServiceInterface, transactionService TransactionServiceInterface) DemoDataServiceInterface {
	return &demoDataService{
		cardService:        cardService,
		transactionService: transactionService,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		now:                time.Now,
	}
}

func (s *demoDataService) SeedTransactions(ctx context.Context, userID uuid.UUID, months int) (*models.SeedSummary, error) {
	if months == 0 {
		months = defaultDemoMonths
	}
	if months < 0 || months > maxDemoMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", ErrInvalidInput, maxDemoMonths)
	}

	cards, err := s.cardService.ListCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, -months, 0)

	summary := &models.SeedSummary{From: start, To: end}
	for _, req := range s.generate(cards, start, end) {
		tx, _, err := s.transactionService.CreateTransaction(ctx, userID, &req, "")
		if err != nil {
			return nil, fmt.Errorf("failed to seed purchase at %s: %w", req.Merchant, err)
		}
		summary.Created++
		summary.PointsEarned += tx.PointsEarned
	}

	return summary, nil
}

// generate builds purchase requests between start and end inclusive, oldest first
func (s *demoDataService) generate(cards []models.Card, start, end time.Time) []dto.CreateTransactionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purchases []dto.CreateTransactionRequest

	for _, bill := range demoBills {
		card := cards[s.rng.Intn(len(cards))]
		amount := s.price(bill)
		day := 1 + s.rng.Intn(billDayRange)

		for due := time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, time.UTC); !due.After(end); due = due.AddDate(0, 1, 0) {
			if due.Before(start) {
				continue
			}
			purchases = append(purchases, purchase(card, bill, amount, due))
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for n := s.rng.Intn(maxDailyPurchases + 1); n > 0; n-- {
			merchant := demoMerchants[s.rng.Intn(len(demoMerchants))]
			card := cards[s.rng.Intn(len(cards))]
			purchases = append(purchases, purchase(card, merchant, s.price(merchant), day))
		}
	}

	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Date < purchases[j].Date
	})
	return purchases
}

func (s *demoDataService) price(m demoMerchant) decimal.Decimal {
	return decimal.NewFromInt(m.MinPrice + s.rng.Int63n(m.MaxPrice-m.MinPrice+1))
}

func purchase(card models.Card, m demoMerchant, amount decimal.Decimal, date time.Time) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		CardID:   card.ID.String(),
		Amount:   amount,
		Merchant: m.Name,
		MCCCode:  m.MCCCode,
		Date:     date.Format(dto.DateLayout),
	}
}
