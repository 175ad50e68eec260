package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"orghub/internal/common"
	"orghub/internal/ledger"
	"orghub/internal/model"
)

// Derived financial queries. Nothing here is cached: the collections are
// small and every call recomputes from the current cache through the ledger
// package, so there is exactly one formula per figure.

// CashBalance is the current cash-pool balance.
func (p *Provider) CashBalance() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ledger.CashBalance(p.settings, p.txns)
}

// BankBalance is the current bank-pool balance.
func (p *Provider) BankBalance() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ledger.BankBalance(p.settings, p.txns)
}

// TotalBalance is cash plus bank.
func (p *Provider) TotalBalance() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ledger.TotalBalance(p.settings, p.txns)
}

// LoanOutstanding returns the loan's derived outstanding balance as of now,
// or zero when the loan does not exist.
func (p *Provider) LoanOutstanding(loanID string) decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, l := range p.loans {
		if l.ID == loanID {
			return ledger.LoanOutstanding(l, p.txns, time.Now())
		}
	}
	return decimal.Zero
}

// LoanRepaid sums the recorded repayments for a loan.
func (p *Provider) LoanRepaid(loanID string) decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ledger.LoanRepaid(loanID, p.txns)
}

// LoanDisbursed sums the recorded disbursements for a loan.
func (p *Provider) LoanDisbursed(loanID string) decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ledger.LoanDisbursed(loanID, p.txns)
}

// LoanInterestDue returns one month's interest on the loan's current
// outstanding balance, or zero when the loan does not exist.
func (p *Provider) LoanInterestDue(loanID string) decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, l := range p.loans {
		if l.ID == loanID {
			return ledger.LoanInterestDue(l, p.txns, time.Now())
		}
	}
	return decimal.Zero
}

// RecordLoanRepayment creates the repayment transaction for a loan and, when
// the recomputed outstanding balance reaches zero, flips the loan's status
// to paid. The transition is one-way: deleting the repayment later leaves
// the loan paid.
func (p *Provider) RecordLoanRepayment(ctx context.Context, loanID string, amount decimal.Decimal, method model.PaymentMethod, date time.Time) (model.Transaction, error) {
	loan, ok := p.LoanByID(loanID)
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: loan %s", common.ErrNotFound, loanID)
	}

	txn, err := p.AddTransaction(ctx, model.Transaction{
		Type:        model.TypeIncome,
		Category:    model.CategoryLoanRepayment,
		Amount:      amount,
		Method:      method,
		Date:        date,
		MemberID:    loan.MemberID,
		LoanID:      loan.ID,
		Description: "Loan repayment",
	})
	if err != nil {
		return model.Transaction{}, err
	}

	p.mu.RLock()
	outstanding := ledger.LoanOutstanding(loan, p.txns, time.Now())
	p.mu.RUnlock()

	if loan.Status == model.LoanActive && !outstanding.IsPositive() {
		loan.Status = model.LoanPaid
		if _, err := p.EditLoan(ctx, loan); err != nil {
			return model.Transaction{}, fmt.Errorf("marking loan paid: %w", err)
		}
		slog.Info("loan fully repaid", "loan", loan.ID)
	}

	return txn, nil
}
