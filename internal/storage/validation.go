package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orghub/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidMember      = errors.New("invalid member")
	ErrInvalidEvent       = errors.New("invalid event")
	ErrInvalidGroup       = errors.New("invalid group")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidLoan        = errors.New("invalid loan")
	ErrInvalidSettings    = errors.New("invalid account settings")
	ErrInvalidUser        = errors.New("invalid user account")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateMember(m *model.Member) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidMember)
	}
	return nil
}

func validateEvent(e *model.OrgEvent) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidEvent)
	}
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidEvent)
	}
	return nil
}

func validateGroup(g *model.Group) error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGroup)
	}
	return nil
}

// validateTransaction enforces the invariants the UI used to check: a
// strictly positive amount, a known type, and a category drawn from that
// type's set.
func validateTransaction(t *model.Transaction) error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidTransaction, t.Amount)
	}
	switch t.Type {
	case model.TypeIncome, model.TypeExpense, model.TypeTransfer:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, t.Type)
	}
	if !model.ValidCategory(t.Type, t.Category) {
		return fmt.Errorf("%w: category %q is not valid for type %q", ErrInvalidTransaction, t.Category, t.Type)
	}
	switch t.Method {
	case model.MethodCash, model.MethodBank:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidTransaction, t.Method)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}

func validateLoan(l *model.Loan) error {
	if strings.TrimSpace(l.MemberID) == "" {
		return fmt.Errorf("%w: missing member", ErrInvalidLoan)
	}
	if !l.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidLoan, l.Principal)
	}
	if l.MonthlyRate.IsNegative() {
		return fmt.Errorf("%w: interest rate cannot be negative, got %s", ErrInvalidLoan, l.MonthlyRate)
	}
	if l.IssueDate.IsZero() {
		return fmt.Errorf("%w: missing issue date", ErrInvalidLoan)
	}
	return nil
}

func validateSettings(s *model.AccountSettings) error {
	if s.OpeningBalanceCash.IsNegative() || s.OpeningBalanceBank.IsNegative() {
		return fmt.Errorf("%w: opening balances cannot be negative", ErrInvalidSettings)
	}
	if strings.TrimSpace(s.Currency) == "" {
		return fmt.Errorf("%w: missing currency", ErrInvalidSettings)
	}
	return nil
}

func validateUser(u *model.UserAccount) error {
	if strings.TrimSpace(u.DisplayName) == "" {
		return fmt.Errorf("%w: missing display name", ErrInvalidUser)
	}
	switch u.SystemRole {
	case model.RoleAdmin, model.RoleOrgUser:
	default:
		return fmt.Errorf("%w: unknown system role %q", ErrInvalidUser, u.SystemRole)
	}
	return nil
}
