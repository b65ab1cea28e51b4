package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"bazaarBack/internal/models"
)

type TransactionRepository struct {
	DB *sql.DB
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if tx.Status == "" {
		tx.Status = models.TransactionPending
	}
	tx.TransactionDate = time.Now()
	query := `INSERT INTO transactions (ad_id, buyer_id, seller_id, amount, status, transaction_date)
	          VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, tx.AdID, tx.BuyerID, tx.SellerID, tx.Amount, tx.Status, tx.TransactionDate)
	if err != nil {
		return models.Transaction{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Transaction{}, err
	}
	tx.ID = int(id)
	return tx, nil
}

func (r *TransactionRepository) GetTransactionByID(ctx context.Context, id int) (models.Transaction, error) {
	var tx models.Transaction
	query := `SELECT transaction_id, ad_id, buyer_id, seller_id, amount, status, transaction_date
	          FROM transactions WHERE transaction_id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&tx.ID, &tx.AdID, &tx.BuyerID, &tx.SellerID, &tx.Amount, &tx.Status, &tx.TransactionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, models.ErrTransactionNotFound
	}
	return tx, err
}

func (r *TransactionRepository) GetTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	query := `SELECT transaction_id, ad_id, buyer_id, seller_id, amount, status, transaction_date
	          FROM transactions ORDER BY transaction_id ASC LIMIT ? OFFSET ?`
	return r.queryTransactions(ctx, query, limit, offset)
}

func (r *TransactionRepository) GetTransactionsByBuyer(ctx context.Context, buyerID, limit, offset int) ([]models.Transaction, error) {
	query := `SELECT transaction_id, ad_id, buyer_id, seller_id, amount, status, transaction_date
	          FROM transactions WHERE buyer_id = ? ORDER BY transaction_id ASC LIMIT ? OFFSET ?`
	return r.queryTransactions(ctx, query, buyerID, limit, offset)
}

func (r *TransactionRepository) GetTransactionsBySeller(ctx context.Context, sellerID, limit, offset int) ([]models.Transaction, error) {
	query := `SELECT transaction_id, ad_id, buyer_id, seller_id, amount, status, transaction_date
	          FROM transactions WHERE seller_id = ? ORDER BY transaction_id ASC LIMIT ? OFFSET ?`
	return r.queryTransactions(ctx, query, sellerID, limit, offset)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.AdID, &tx.BuyerID, &tx.SellerID, &tx.Amount, &tx.Status, &tx.TransactionDate); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, id int, upd models.TransactionUpdate) (models.Transaction, error) {
	var sets []string
	var args []any
	if upd.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
	}
	if len(sets) > 0 {
		args = append(args, id)
		query := `UPDATE transactions SET ` + strings.Join(sets, ", ") + ` WHERE transaction_id = ?`
		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			return models.Transaction{}, err
		}
	}
	return r.GetTransactionByID(ctx, id)
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTransactionNotFound
	}
	return nil
}
