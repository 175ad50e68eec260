package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSettings is the singleton record holding opening balances.
type AccountSettings struct {
	AsOfDate           time.Time       `json:"asOfDate"`
	OrgName            string          `json:"orgName,omitempty"`
	Currency           string          `json:"currency"`
	OpeningBalanceCash decimal.Decimal `json:"openingBalanceCash"`
	OpeningBalanceBank decimal.Decimal `json:"openingBalanceBank"`
}

// DefaultAccountSettings returns the settings used before any are saved.
func DefaultAccountSettings() AccountSettings {
	return AccountSettings{
		Currency:           "MMK",
		OpeningBalanceCash: decimal.Zero,
		OpeningBalanceBank: decimal.Zero,
		AsOfDate:           time.Now(),
	}
}
