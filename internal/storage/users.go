package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
)

// ListUsers returns every user account. Reading an empty collection seeds a
// default local admin so the app is never left without a way to manage
// itself.
func (s *Store) ListUsers(ctx context.Context) ([]model.UserAccount, error) {
	users, err := listCollection[model.UserAccount](ctx, s, KeyUsers)
	if err != nil {
		return nil, err
	}
	if len(users) > 0 {
		return users, nil
	}

	admin := model.UserAccount{
		ID:          newID(),
		DisplayName: "Administrator",
		SystemRole:  model.RoleAdmin,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	users = []model.UserAccount{admin}
	if err := saveCollection(ctx, s, KeyUsers, users); err != nil {
		return nil, err
	}
	slog.Info("seeded default admin account", "id", admin.ID)
	return users, nil
}

// CreateUser appends a new user account.
func (s *Store) CreateUser(ctx context.Context, u model.UserAccount) (model.UserAccount, error) {
	if err := validateUser(&u); err != nil {
		return model.UserAccount{}, err
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return model.UserAccount{}, err
	}

	u.ID = newID()
	u.CreatedAt = time.Now()
	users = append(users, u)
	if err := saveCollection(ctx, s, KeyUsers, users); err != nil {
		return model.UserAccount{}, err
	}

	slog.Info("created user account", "id", u.ID, "role", u.SystemRole)
	return u, nil
}

// UpdateUser replaces the stored user account with the same ID.
func (s *Store) UpdateUser(ctx context.Context, u model.UserAccount) (model.UserAccount, error) {
	if err := validateString(u.ID, "user ID"); err != nil {
		return model.UserAccount{}, err
	}
	if err := validateUser(&u); err != nil {
		return model.UserAccount{}, err
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return model.UserAccount{}, err
	}

	for i := range users {
		if users[i].ID == u.ID {
			u.CreatedAt = users[i].CreatedAt
			users[i] = u
			if err := saveCollection(ctx, s, KeyUsers, users); err != nil {
				return model.UserAccount{}, err
			}
			return u, nil
		}
	}
	return model.UserAccount{}, fmt.Errorf("%w: user %s", common.ErrNotFound, u.ID)
}

// DeleteUser removes a user account.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := validateString(id, "user ID"); err != nil {
		return err
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}

	remaining := users[:0]
	for _, u := range users {
		if u.ID != id {
			remaining = append(remaining, u)
		}
	}
	if len(remaining) == len(users) {
		return fmt.Errorf("%w: user %s", common.ErrNotFound, id)
	}
	return saveCollection(ctx, s, KeyUsers, remaining)
}
