package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"orghub/internal/model"
)

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// testTransaction builds a valid cash income transaction.
func testTransaction(amount int64) model.Transaction {
	return model.Transaction{
		Type:     model.TypeIncome,
		Category: model.CategoryMonthlyFee,
		Amount:   decimal.NewFromInt(amount),
		Method:   model.MethodCash,
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}
