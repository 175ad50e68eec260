package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
)

// ListTransactions returns every stored transaction.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return listCollection[model.Transaction](ctx, s, KeyTransactions)
}

// CreateTransaction validates and appends a transaction. Transactions are
// immutable once written; there is no update operation.
func (s *Store) CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	if err := validateTransaction(&t); err != nil {
		return model.Transaction{}, err
	}

	txns, err := s.ListTransactions(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	t.ID = newID()
	t.CreatedAt = time.Now()
	if t.ReceiptNumber == "" {
		t.ReceiptNumber = newReceiptNumber()
	}

	txns = append(txns, t)
	if err := saveCollection(ctx, s, KeyTransactions, txns); err != nil {
		return model.Transaction{}, err
	}

	slog.Info("created transaction",
		"id", t.ID, "type", t.Type, "category", t.Category, "amount", t.Amount)
	return t, nil
}

// DeleteTransaction removes a transaction. A loan whose status was flipped
// to paid by this transaction keeps that status.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateString(id, "transaction ID"); err != nil {
		return err
	}

	txns, err := s.ListTransactions(ctx)
	if err != nil {
		return err
	}

	remaining := txns[:0]
	for _, t := range txns {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(txns) {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	return saveCollection(ctx, s, KeyTransactions, remaining)
}

// ImportTransactions merges the given transactions into the collection by
// ID, last write wins.
func (s *Store) ImportTransactions(ctx context.Context, incoming []model.Transaction) error {
	existing, err := s.ListTransactions(ctx)
	if err != nil {
		return err
	}

	merged := make([]model.Transaction, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing))
	for _, t := range existing {
		index[t.ID] = len(merged)
		merged = append(merged, t)
	}

	for _, t := range incoming {
		if err := validateTransaction(&t); err != nil {
			return err
		}
		if t.ID == "" {
			t.ID = newID()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now()
		}
		if t.ReceiptNumber == "" {
			t.ReceiptNumber = newReceiptNumber()
		}
		if pos, ok := index[t.ID]; ok {
			merged[pos] = t
		} else {
			index[t.ID] = len(merged)
			merged = append(merged, t)
		}
	}

	if err := saveCollection(ctx, s, KeyTransactions, merged); err != nil {
		return err
	}
	slog.Info("imported transactions", "incoming", len(incoming), "total", len(merged))
	return nil
}
