package backup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orghub/internal/common"
	"orghub/internal/model"
)

func TestExportTransactionsEnvelope(t *testing.T) {
	txns := []model.Transaction{{
		ID:       "T1",
		Type:     model.TypeIncome,
		Category: model.CategoryMonthlyFee,
		Method:   model.MethodCash,
		Amount:   decimal.NewFromInt(5000),
		Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}}

	blob, err := ExportTransactions(txns)
	require.NoError(t, err)

	var envelope TransactionsEnvelope
	require.NoError(t, json.Unmarshal([]byte(blob), &envelope))
	assert.Equal(t, TransactionsType, envelope.Type)
	assert.Equal(t, SchemaVersion, envelope.Version)
	assert.Equal(t, 1, envelope.Count)
	require.Len(t, envelope.Transactions, 1)
	assert.Equal(t, "2025-03-15T00:00:00Z", envelope.Transactions[0].Date)
}

func TestImportTransactionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	original, err := store.CreateTransaction(ctx, model.Transaction{
		Type:     model.TypeExpense,
		Category: model.CategoryWelfareHealth,
		Method:   model.MethodBank,
		Amount:   decimal.RequireFromString("1234.56"),
		Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	blob, err := ExportTransactions([]model.Transaction{original})
	require.NoError(t, err)

	fresh := createTestStore(t)
	count, err := ImportTransactions(ctx, fresh, blob)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	imported, err := fresh.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, original.ID, imported[0].ID)
	assert.Equal(t, original.Category, imported[0].Category)
	assert.True(t, original.Amount.Equal(imported[0].Amount))
	assert.True(t, original.Date.Equal(imported[0].Date))
}

func TestImportTransactionsLegacyCategories(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	blob := `{
		"type": "orghub.transactions",
		"version": 1,
		"transactions": [
			{"type": "income", "category": "other", "paymentMethod": "cash", "amount": 100, "date": "15/03/2025"},
			{"type": "expense", "category": "other", "paymentMethod": "cash", "amount": 200, "date": "15/03/2025"},
			{"type": "income", "category": "bank_interest", "paymentMethod": "bank", "amount": 300, "date": "15/03/2025"}
		]
	}`

	count, err := ImportTransactions(ctx, store, blob)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, model.CategoryOtherIncome, txns[0].Category)
	assert.Equal(t, model.CategoryOtherExpense, txns[1].Category)
	assert.Equal(t, model.CategoryInterestIncome, txns[2].Category)

	// Day-first date text parsed into a real date.
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, time.March, txns[0].Date.Month())
	assert.Equal(t, 15, txns[0].Date.Day())
}

func TestImportTransactionsRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	t.Run("wrong type tag", func(t *testing.T) {
		blob := `{"type": "orghub.members", "version": 2, "transactions": []}`
		_, err := ImportTransactions(ctx, store, blob)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})

	t.Run("unparseable date aborts the batch", func(t *testing.T) {
		blob := `{
			"type": "orghub.transactions",
			"version": 2,
			"transactions": [
				{"type": "income", "category": "donation", "paymentMethod": "cash", "amount": 100, "date": "someday"}
			]
		}`
		_, err := ImportTransactions(ctx, store, blob)
		assert.ErrorIs(t, err, common.ErrInvalidInput)

		txns, listErr := store.ListTransactions(ctx)
		require.NoError(t, listErr)
		assert.Empty(t, txns)
	})
}
