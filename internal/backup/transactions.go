package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"orghub/internal/common"
	"orghub/internal/model"
	"orghub/internal/storage"
)

// transactionRow is the tolerant wire shape for one transaction. Dates are
// carried as text so day-first exports parse, and legacy category names are
// remapped on import.
type transactionRow struct {
	ID            string          `json:"id,omitempty"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	MemberID      string          `json:"memberId,omitempty"`
	LoanID        string          `json:"loanId,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptNumber string          `json:"receiptNumber,omitempty"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransactionsEnvelope is the versioned transaction backup document.
type TransactionsEnvelope struct {
	ExportedAt   time.Time        `json:"exportedAt"`
	Type         string           `json:"type"`
	Transactions []transactionRow `json:"transactions"`
	Version      int              `json:"version"`
	Count        int              `json:"count"`
}

// ExportTransactions renders the transaction collection as a versioned
// envelope.
func ExportTransactions(txns []model.Transaction) (string, error) {
	rows := make([]transactionRow, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, transactionRow{
			ID:            t.ID,
			Type:          string(t.Type),
			Category:      string(t.Category),
			Amount:        t.Amount,
			MemberID:      t.MemberID,
			LoanID:        t.LoanID,
			PaymentMethod: string(t.Method),
			ReceiptNumber: t.ReceiptNumber,
			Description:   t.Description,
			Date:          t.Date.Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(TransactionsEnvelope{
		Type:         TransactionsType,
		Version:      SchemaVersion,
		ExportedAt:   time.Now(),
		Count:        len(rows),
		Transactions: rows,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction backup: %w", err)
	}
	return string(data), nil
}

// remapCategory folds legacy category names into the canonical disjoint
// sets. Version 1 exports shared "other" between income and expense and
// used "bank_interest" for interest income.
func remapCategory(raw string, txnType model.TransactionType) model.TransactionCategory {
	switch raw {
	case "other":
		if txnType == model.TypeExpense {
			return model.CategoryOtherExpense
		}
		return model.CategoryOtherIncome
	case "bank_interest":
		return model.CategoryInterestIncome
	}
	return model.TransactionCategory(raw)
}

func normalizeTransactionRow(row transactionRow) (model.Transaction, error) {
	txnType := model.TransactionType(row.Type)
	date, ok := parseFlexibleDate(row.Date)
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: unparseable transaction date %q", common.ErrInvalidInput, row.Date)
	}

	return model.Transaction{
		ID:            row.ID,
		Type:          txnType,
		Category:      remapCategory(row.Category, txnType),
		Amount:        row.Amount,
		MemberID:      row.MemberID,
		LoanID:        row.LoanID,
		Method:        model.PaymentMethod(row.PaymentMethod),
		ReceiptNumber: row.ReceiptNumber,
		Description:   row.Description,
		Date:          date,
	}, nil
}

// ImportTransactions parses a transaction backup envelope, normalizes every
// row and merges the result into the store by ID. It returns the number of
// rows imported.
func ImportTransactions(ctx context.Context, store *storage.Store, blob string) (int, error) {
	var envelope TransactionsEnvelope
	if err := json.Unmarshal([]byte(blob), &envelope); err != nil {
		return 0, fmt.Errorf("%w: transaction backup is not valid JSON: %v", common.ErrInvalidInput, err)
	}
	if envelope.Type != TransactionsType {
		return 0, fmt.Errorf("%w: unexpected backup type %q", common.ErrInvalidInput, envelope.Type)
	}
	if envelope.Version < 1 || envelope.Version > SchemaVersion {
		return 0, fmt.Errorf("%w: unsupported transaction backup version %d", common.ErrInvalidInput, envelope.Version)
	}

	txns := make([]model.Transaction, 0, len(envelope.Transactions))
	for i, row := range envelope.Transactions {
		txn, err := normalizeTransactionRow(row)
		if err != nil {
			return 0, fmt.Errorf("transaction at index %d: %w", i, err)
		}
		txns = append(txns, txn)
	}

	if err := store.ImportTransactions(ctx, txns); err != nil {
		return 0, err
	}
	return len(txns), nil
}
