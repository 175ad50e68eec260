package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySetsAreDisjoint(t *testing.T) {
	seen := make(map[TransactionCategory]TransactionType)
	for _, txnType := range []TransactionType{TypeIncome, TypeExpense, TypeTransfer} {
		for _, category := range CategoriesFor(txnType) {
			if other, ok := seen[category]; ok {
				t.Errorf("category %q appears in both %q and %q", category, other, txnType)
			}
			seen[category] = txnType
		}
	}
	assert.Len(t, seen, 12)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(TypeIncome, CategoryMonthlyFee))
	assert.True(t, ValidCategory(TypeExpense, CategoryLoanIssued))
	assert.True(t, ValidCategory(TypeTransfer, CategoryBankDeposit))

	assert.False(t, ValidCategory(TypeIncome, CategoryOtherExpense))
	assert.False(t, ValidCategory(TypeExpense, CategoryLoanRepayment))
	assert.False(t, ValidCategory(TypeTransfer, CategoryDonation))
	assert.False(t, ValidCategory(TransactionType("bogus"), CategoryDonation))
}

func TestIsLoanRepayment(t *testing.T) {
	repayment := Transaction{Type: TypeIncome, Category: CategoryLoanRepayment, LoanID: "L1"}
	assert.True(t, repayment.IsLoanRepayment("L1"))
	assert.False(t, repayment.IsLoanRepayment("L2"))

	disbursement := Transaction{Type: TypeExpense, Category: CategoryLoanIssued, LoanID: "L1"}
	assert.False(t, disbursement.IsLoanRepayment("L1"))
}
