package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money entering, leaving, or moving between
// the organization's cash and bank pools.
type TransactionType string

// Transaction types.
const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// TransactionCategory labels what a transaction was for. Income, expense and
// transfer categories are disjoint sets.
type TransactionCategory string

// Income categories.
const (
	CategoryMonthlyFee     TransactionCategory = "monthly_fee"
	CategoryDonation       TransactionCategory = "donation"
	CategoryLoanRepayment  TransactionCategory = "loan_repayment"
	CategoryInterestIncome TransactionCategory = "interest_income"
	CategoryOtherIncome    TransactionCategory = "other_income"
)

// Expense categories.
const (
	CategoryWelfareHealth    TransactionCategory = "welfare_health"
	CategoryWelfareEducation TransactionCategory = "welfare_education"
	CategoryWelfareFuneral   TransactionCategory = "welfare_funeral"
	CategoryLoanIssued       TransactionCategory = "loan_issued"
	CategoryOtherExpense     TransactionCategory = "other_expense"
)

// Transfer categories.
const (
	CategoryBankDeposit    TransactionCategory = "bank_deposit"
	CategoryBankWithdrawal TransactionCategory = "bank_withdrawal"
)

// CategoryLabels maps categories to display names.
var CategoryLabels = map[TransactionCategory]string{
	CategoryMonthlyFee:       "Monthly Fee",
	CategoryDonation:         "Donation",
	CategoryLoanRepayment:    "Loan Repayment",
	CategoryInterestIncome:   "Interest Income",
	CategoryOtherIncome:      "Other Income",
	CategoryWelfareHealth:    "Welfare - Health",
	CategoryWelfareEducation: "Welfare - Education",
	CategoryWelfareFuneral:   "Welfare - Funeral",
	CategoryLoanIssued:       "Loan Issued",
	CategoryOtherExpense:     "Other Expense",
	CategoryBankDeposit:      "Bank Deposit",
	CategoryBankWithdrawal:   "Bank Withdrawal",
}

// CategoriesFor returns the valid categories for a transaction type.
func CategoriesFor(t TransactionType) []TransactionCategory {
	switch t {
	case TypeIncome:
		return []TransactionCategory{
			CategoryMonthlyFee, CategoryDonation, CategoryLoanRepayment,
			CategoryInterestIncome, CategoryOtherIncome,
		}
	case TypeExpense:
		return []TransactionCategory{
			CategoryWelfareHealth, CategoryWelfareEducation, CategoryWelfareFuneral,
			CategoryLoanIssued, CategoryOtherExpense,
		}
	case TypeTransfer:
		return []TransactionCategory{CategoryBankDeposit, CategoryBankWithdrawal}
	}
	return nil
}

// ValidCategory reports whether a category belongs to the given type's set.
func ValidCategory(t TransactionType, c TransactionCategory) bool {
	for _, candidate := range CategoriesFor(t) {
		if candidate == c {
			return true
		}
	}
	return false
}

// PaymentMethod is the pool a transaction touches.
type PaymentMethod string

// Payment methods.
const (
	MethodCash PaymentMethod = "cash"
	MethodBank PaymentMethod = "bank"
)

// Transaction is a single financial record. Transactions are immutable once
// created; the store supports delete but not update.
type Transaction struct {
	Date          time.Time           `json:"date"`
	CreatedAt     time.Time           `json:"createdAt"`
	ID            string              `json:"id"`
	Type          TransactionType     `json:"type"`
	Category      TransactionCategory `json:"category"`
	MemberID      string              `json:"memberId,omitempty"`
	LoanID        string              `json:"loanId,omitempty"`
	Method        PaymentMethod       `json:"paymentMethod"`
	ReceiptNumber string              `json:"receiptNumber"`
	Description   string              `json:"description,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
}

// IsLoanRepayment reports whether the transaction repays the given loan.
func (t Transaction) IsLoanRepayment(loanID string) bool {
	return t.LoanID == loanID && t.Type == TypeIncome && t.Category == CategoryLoanRepayment
}
