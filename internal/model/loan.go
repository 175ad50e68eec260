package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the repayment state of a loan. The only transition is
// active -> paid, applied when a recorded repayment clears the outstanding
// balance. Deleting that repayment afterwards does not revert the status.
type LoanStatus string

// Loan statuses.
const (
	LoanActive LoanStatus = "active"
	LoanPaid   LoanStatus = "paid"
)

// Loan is money lent to a member. Outstanding balance and interest due are
// never stored; they are derived from the principal, the monthly rate, the
// whole months elapsed since issue, and the linked repayment transactions.
type Loan struct {
	IssueDate   time.Time       `json:"issueDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	ID          string          `json:"id"`
	MemberID    string          `json:"memberId"`
	Status      LoanStatus      `json:"status"`
	Description string          `json:"description,omitempty"`
	Principal   decimal.Decimal `json:"principalAmount"`
	MonthlyRate decimal.Decimal `json:"interestRate"`
}
