package models

import (
	"time"
)

const (
	TransactionPending   = "Pending"
	TransactionCompleted = "Completed"
	TransactionCancelled = "Cancelled"
)

type Transaction struct {
	ID              int       `json:"transaction_id"`
	AdID            int       `json:"ad_id"`
	BuyerID         int       `json:"buyer_id"`
	SellerID        int       `json:"seller_id"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transaction_date"`
}

type TransactionUpdate struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}

func ValidTransactionStatus(s string) bool {
	return s == TransactionPending || s == TransactionCompleted || s == TransactionCancelled
}
