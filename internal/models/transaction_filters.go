package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	UserID    uuid.UUID
	CardID    *uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}
