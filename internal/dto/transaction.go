package dto

import (
	"time"

	"card-rewards-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the request payload for logging a purchase.
// Category may be omitted, in which case it is inferred from the merchant.
type CreateTransactionRequest struct {
	CardID   string          `json:"card_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" validate:"positive_amount,money"`
	Category string          `json:"category" validate:"omitempty,category"`
	Merchant string          `json:"merchant" validate:"required,notblank,max=255"`
	MCCCode  string          `json:"mcc_code" validate:"omitempty,numeric,len=4"`
	Date     string          `json:"date"`
}

// TransactionResponse is the API view of a transaction
type TransactionResponse struct {
	ID           uuid.UUID       `json:"id"`
	CardID       uuid.UUID       `json:"card_id"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Merchant     string          `json:"merchant"`
	PointsEarned int64           `json:"points_earned"`
	Date         time.Time       `json:"date"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a Transaction model to its response DTO
func ToTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		CardID:       tx.CardID,
		Amount:       tx.Amount,
		Category:     tx.Category,
		Merchant:     tx.Merchant,
		PointsEarned: tx.PointsEarned,
		Date:         tx.Date,
	}
}

// ToTransactionResponses converts a slice of transactions
func ToTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, ToTransactionResponse(&txs[i]))
	}
	return out
}
