package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"orghub/internal/model"
)

var hundred = decimal.NewFromInt(100)

// MonthsElapsed counts whole calendar months between two dates using
// year*12+month arithmetic. Days within a month never accrue; a loan issued
// on the 31st and read on the 1st of the next month has one month elapsed.
func MonthsElapsed(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0
	}
	return months
}

// LoanRepaid sums the repayment transactions linked to a loan.
func LoanRepaid(loanID string, txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.IsLoanRepayment(loanID) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// LoanDisbursed sums the loan_issued expense transactions linked to a loan.
// Zero when the disbursement was never recorded as a transaction.
func LoanDisbursed(loanID string, txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.LoanID == loanID && t.Type == model.TypeExpense && t.Category == model.CategoryLoanIssued {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// LoanOutstanding is the principal plus simple interest accrued over the
// whole months elapsed since issue, minus repayments, floored at zero.
// Interest here is linear in months and charged on the original principal.
func LoanOutstanding(loan model.Loan, txns []model.Transaction, asOf time.Time) decimal.Decimal {
	months := decimal.NewFromInt(int64(MonthsElapsed(loan.IssueDate, asOf)))
	interest := loan.Principal.Mul(loan.MonthlyRate).Div(hundred).Mul(months)
	outstanding := loan.Principal.Add(interest).Sub(LoanRepaid(loan.ID, txns))
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

// LoanInterestDue is one month's interest charged on the current outstanding
// balance rather than the original principal, so unpaid interest itself
// accrues interest. This intentionally differs from the simple accrual in
// LoanOutstanding.
func LoanInterestDue(loan model.Loan, txns []model.Transaction, asOf time.Time) decimal.Decimal {
	return LoanOutstanding(loan, txns, asOf).Mul(loan.MonthlyRate).Div(hundred)
}
