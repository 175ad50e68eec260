package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"orghub/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsElapsed(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2025, 3, 15), date(2025, 3, 15), 0},
		{"same month later day", date(2025, 3, 1), date(2025, 3, 31), 0},
		{"month boundary ignores days", date(2025, 1, 31), date(2025, 2, 1), 1},
		{"full year", date(2024, 6, 10), date(2025, 6, 10), 12},
		{"across year end", date(2024, 11, 5), date(2025, 2, 5), 3},
		{"future issue date clamps to zero", date(2025, 9, 1), date(2025, 3, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsElapsed(tt.from, tt.to))
		})
	}
}

func TestLoanOutstanding(t *testing.T) {
	loan := model.Loan{
		ID:          "L1",
		Principal:   decimal.NewFromInt(100000),
		MonthlyRate: decimal.NewFromInt(2),
		IssueDate:   date(2025, 1, 10),
		Status:      model.LoanActive,
	}

	repay := func(amount int64) model.Transaction {
		return model.Transaction{
			Type:     model.TypeIncome,
			Category: model.CategoryLoanRepayment,
			LoanID:   "L1",
			Method:   model.MethodCash,
			Amount:   decimal.NewFromInt(amount),
		}
	}

	t.Run("zero months elapsed equals principal", func(t *testing.T) {
		got := LoanOutstanding(loan, nil, date(2025, 1, 25))
		assert.True(t, loan.Principal.Equal(got), "got %s", got)
	})

	t.Run("accrues simple interest per month", func(t *testing.T) {
		// 100000 + 100000*2%*3 = 106000
		got := LoanOutstanding(loan, nil, date(2025, 4, 10))
		assert.True(t, decimal.NewFromInt(106000).Equal(got), "got %s", got)
	})

	t.Run("repayments reduce the balance", func(t *testing.T) {
		txns := []model.Transaction{repay(50000), repay(6000)}
		got := LoanOutstanding(loan, txns, date(2025, 4, 10))
		assert.True(t, decimal.NewFromInt(50000).Equal(got), "got %s", got)
	})

	t.Run("overpayment floors at zero", func(t *testing.T) {
		txns := []model.Transaction{repay(999999)}
		got := LoanOutstanding(loan, txns, date(2025, 4, 10))
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("ignores unrelated transactions", func(t *testing.T) {
		txns := []model.Transaction{
			{Type: model.TypeIncome, Category: model.CategoryLoanRepayment, LoanID: "L2", Amount: decimal.NewFromInt(5000)},
			{Type: model.TypeIncome, Category: model.CategoryMonthlyFee, LoanID: "L1", Amount: decimal.NewFromInt(5000)},
		}
		got := LoanOutstanding(loan, txns, date(2025, 1, 25))
		assert.True(t, loan.Principal.Equal(got), "got %s", got)
	})
}

func TestLoanDisbursed(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeExpense, Category: model.CategoryLoanIssued, LoanID: "L1", Amount: decimal.NewFromInt(100000)},
		{Type: model.TypeExpense, Category: model.CategoryLoanIssued, LoanID: "L2", Amount: decimal.NewFromInt(50000)},
		{Type: model.TypeIncome, Category: model.CategoryLoanRepayment, LoanID: "L1", Amount: decimal.NewFromInt(20000)},
	}
	assert.True(t, decimal.NewFromInt(100000).Equal(LoanDisbursed("L1", txns)))
	assert.True(t, LoanDisbursed("L3", txns).IsZero())
}

func TestLoanInterestDue(t *testing.T) {
	loan := model.Loan{
		ID:          "L1",
		Principal:   decimal.NewFromInt(100000),
		MonthlyRate: decimal.NewFromInt(2),
		IssueDate:   date(2025, 1, 10),
		Status:      model.LoanActive,
	}

	// Interest due is charged on the outstanding balance, not the principal,
	// so accrued interest compounds into the next charge.
	// Outstanding after 3 months = 106000; due = 106000 * 2% = 2120.
	got := LoanInterestDue(loan, nil, date(2025, 4, 10))
	assert.True(t, decimal.NewFromInt(2120).Equal(got), "got %s", got)

	// A fully repaid loan owes nothing.
	txns := []model.Transaction{{
		Type:     model.TypeIncome,
		Category: model.CategoryLoanRepayment,
		LoanID:   "L1",
		Amount:   decimal.NewFromInt(106000),
	}}
	got = LoanInterestDue(loan, txns, date(2025, 4, 10))
	assert.True(t, got.IsZero(), "got %s", got)
}
