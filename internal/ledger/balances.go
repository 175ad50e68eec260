// Package ledger holds the financial formulas shared by every consumer of
// the collections. Balances and loan figures are always derived here, never
// stored and never recomputed elsewhere.
package ledger

import (
	"github.com/shopspring/decimal"

	"orghub/internal/model"
)

// CashBalance is the opening cash balance plus cash income, minus cash
// expenses, adjusted for transfers between the cash and bank pools.
func CashBalance(settings model.AccountSettings, txns []model.Transaction) decimal.Decimal {
	balance := settings.OpeningBalanceCash
	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			if t.Method == model.MethodCash {
				balance = balance.Add(t.Amount)
			}
		case model.TypeExpense:
			if t.Method == model.MethodCash {
				balance = balance.Sub(t.Amount)
			}
		case model.TypeTransfer:
			switch t.Category {
			case model.CategoryBankDeposit:
				balance = balance.Sub(t.Amount)
			case model.CategoryBankWithdrawal:
				balance = balance.Add(t.Amount)
			}
		}
	}
	return balance
}

// BankBalance is the bank-pool counterpart of CashBalance.
func BankBalance(settings model.AccountSettings, txns []model.Transaction) decimal.Decimal {
	balance := settings.OpeningBalanceBank
	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			if t.Method == model.MethodBank {
				balance = balance.Add(t.Amount)
			}
		case model.TypeExpense:
			if t.Method == model.MethodBank {
				balance = balance.Sub(t.Amount)
			}
		case model.TypeTransfer:
			switch t.Category {
			case model.CategoryBankDeposit:
				balance = balance.Add(t.Amount)
			case model.CategoryBankWithdrawal:
				balance = balance.Sub(t.Amount)
			}
		}
	}
	return balance
}

// TotalBalance is the sum of the cash and bank pools. Transfers cancel out
// of the total.
func TotalBalance(settings model.AccountSettings, txns []model.Transaction) decimal.Decimal {
	return CashBalance(settings, txns).Add(BankBalance(settings, txns))
}
