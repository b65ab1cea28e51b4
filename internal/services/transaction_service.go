package services

import (
	"context"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

// TransactionService records sale transactions as passive rows. Creating a
// transaction does not flip the referenced ad's is_sold flag, and status
// transitions are client-driven with no ordering enforced.
type TransactionService struct {
	TransactionRepo *repositories.TransactionRepository
}

func (s *TransactionService) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	return s.TransactionRepo.CreateTransaction(ctx, tx)
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, id int) (models.Transaction, error) {
	return s.TransactionRepo.GetTransactionByID(ctx, id)
}

func (s *TransactionService) GetTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	return s.TransactionRepo.GetTransactions(ctx, limit, offset)
}

func (s *TransactionService) GetTransactionsByBuyer(ctx context.Context, buyerID, limit, offset int) ([]models.Transaction, error) {
	return s.TransactionRepo.GetTransactionsByBuyer(ctx, buyerID, limit, offset)
}

func (s *TransactionService) GetTransactionsBySeller(ctx context.Context, sellerID, limit, offset int) ([]models.Transaction, error) {
	return s.TransactionRepo.GetTransactionsBySeller(ctx, sellerID, limit, offset)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id int, upd models.TransactionUpdate) (models.Transaction, error) {
	return s.TransactionRepo.UpdateTransaction(ctx, id, upd)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int) error {
	return s.TransactionRepo.DeleteTransaction(ctx, id)
}
