package repositories_test

import (
	"context"
	"errors"
	"testing"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

func TestTransactionRepository_DefaultStatus(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.TransactionRepository{DB: db}
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com")
	buyer := seedUser(t, db, "Buyer", "buyer@example.com")
	c := seedCategory(t, db, "Electronics", nil)
	ad := seedAd(t, db, seller.ID, c.ID, "Bike")

	tx, err := repo.CreateTransaction(ctx, models.Transaction{
		AdID:     ad.ID,
		BuyerID:  buyer.ID,
		SellerID: seller.ID,
		Amount:   25000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Status != models.TransactionPending {
		t.Fatalf("expected default Pending status, got %q", tx.Status)
	}
	if tx.TransactionDate.IsZero() {
		t.Fatal("expected transaction_date to be set")
	}
}

func TestTransactionRepository_BuyerSellerLists(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.TransactionRepository{DB: db}
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com")
	buyer := seedUser(t, db, "Buyer", "buyer@example.com")
	c := seedCategory(t, db, "Electronics", nil)
	ad1 := seedAd(t, db, seller.ID, c.ID, "Sofa")
	ad2 := seedAd(t, db, buyer.ID, c.ID, "Table")

	// buyer buys ad1, seller buys ad2 back
	for _, tc := range []models.Transaction{
		{AdID: ad1.ID, BuyerID: buyer.ID, SellerID: seller.ID, Amount: 10000},
		{AdID: ad2.ID, BuyerID: seller.ID, SellerID: buyer.ID, Amount: 5000},
	} {
		if _, err := repo.CreateTransaction(ctx, tc); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	asBuyer, err := repo.GetTransactionsByBuyer(ctx, buyer.ID, 100, 0)
	if err != nil {
		t.Fatalf("by buyer: %v", err)
	}
	if len(asBuyer) != 1 || asBuyer[0].AdID != ad1.ID {
		t.Fatalf("unexpected buyer transactions: %+v", asBuyer)
	}

	asSeller, err := repo.GetTransactionsBySeller(ctx, buyer.ID, 100, 0)
	if err != nil {
		t.Fatalf("by seller: %v", err)
	}
	if len(asSeller) != 1 || asSeller[0].AdID != ad2.ID {
		t.Fatalf("unexpected seller transactions: %+v", asSeller)
	}
}

func TestTransactionRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.TransactionRepository{DB: db}
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com")
	buyer := seedUser(t, db, "Buyer", "buyer@example.com")
	c := seedCategory(t, db, "Electronics", nil)
	ad := seedAd(t, db, seller.ID, c.ID, "Desk")

	tx, err := repo.CreateTransaction(ctx, models.Transaction{
		AdID: ad.ID, BuyerID: buyer.ID, SellerID: seller.ID, Amount: 8000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := models.TransactionCompleted
	updated, err := repo.UpdateTransaction(ctx, tx.ID, models.TransactionUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.TransactionCompleted {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if updated.Amount != 8000 {
		t.Fatalf("amount changed unexpectedly: %v", updated.Amount)
	}
}

func TestTransactionRepository_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.TransactionRepository{DB: db}

	err := repo.DeleteTransaction(context.Background(), 4242)
	if !errors.Is(err, models.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
