package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
)

// ListLoans returns every stored loan.
func (s *Store) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return listCollection[model.Loan](ctx, s, KeyLoans)
}

// CreateLoan appends a new loan, defaulting its status to active.
func (s *Store) CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	if err := validateLoan(&l); err != nil {
		return model.Loan{}, err
	}

	loans, err := s.ListLoans(ctx)
	if err != nil {
		return model.Loan{}, err
	}

	l.ID = newID()
	l.CreatedAt = time.Now()
	if l.Status == "" {
		l.Status = model.LoanActive
	}

	loans = append(loans, l)
	if err := saveCollection(ctx, s, KeyLoans, loans); err != nil {
		return model.Loan{}, err
	}

	slog.Info("created loan", "id", l.ID, "member", l.MemberID, "principal", l.Principal)
	return l, nil
}

// UpdateLoan replaces the stored loan with the same ID.
func (s *Store) UpdateLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	if err := validateString(l.ID, "loan ID"); err != nil {
		return model.Loan{}, err
	}
	if err := validateLoan(&l); err != nil {
		return model.Loan{}, err
	}

	loans, err := s.ListLoans(ctx)
	if err != nil {
		return model.Loan{}, err
	}

	for i := range loans {
		if loans[i].ID == l.ID {
			l.CreatedAt = loans[i].CreatedAt
			loans[i] = l
			if err := saveCollection(ctx, s, KeyLoans, loans); err != nil {
				return model.Loan{}, err
			}
			return l, nil
		}
	}
	return model.Loan{}, fmt.Errorf("%w: loan %s", common.ErrNotFound, l.ID)
}

// DeleteLoan removes a loan. Repayment transactions that reference it keep
// their dangling loan ID.
func (s *Store) DeleteLoan(ctx context.Context, id string) error {
	if err := validateString(id, "loan ID"); err != nil {
		return err
	}

	loans, err := s.ListLoans(ctx)
	if err != nil {
		return err
	}

	remaining := loans[:0]
	for _, l := range loans {
		if l.ID != id {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) == len(loans) {
		return fmt.Errorf("%w: loan %s", common.ErrNotFound, id)
	}
	return saveCollection(ctx, s, KeyLoans, remaining)
}
