package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
)

// ListMembers returns every stored member.
func (s *Store) ListMembers(ctx context.Context) ([]model.Member, error) {
	return listCollection[model.Member](ctx, s, KeyMembers)
}

// CreateMember stamps identity and creation metadata onto the given member
// and appends it to the collection. Status defaults to active, position to
// ordinary member, join date to today, and the avatar color is picked from
// the palette.
func (s *Store) CreateMember(ctx context.Context, m model.Member) (model.Member, error) {
	if err := validateMember(&m); err != nil {
		return model.Member{}, err
	}

	members, err := s.ListMembers(ctx)
	if err != nil {
		return model.Member{}, err
	}

	m.ID = newID()
	m.CreatedAt = time.Now()
	if m.Status == "" {
		m.Status = model.StatusActive
	}
	if m.Position == "" {
		m.Position = model.PositionMember
	}
	if m.JoinDate == "" {
		m.JoinDate = time.Now().Format("02/01/2006")
	}
	if m.AvatarColor == "" {
		m.AvatarColor = randomAvatarColor()
	}

	members = append(members, m)
	if err := saveCollection(ctx, s, KeyMembers, members); err != nil {
		return model.Member{}, err
	}

	slog.Info("created member", "id", m.ID, "name", m.Name)
	return m, nil
}

// UpdateMember replaces the stored member with the same ID.
func (s *Store) UpdateMember(ctx context.Context, m model.Member) (model.Member, error) {
	if err := validateString(m.ID, "member ID"); err != nil {
		return model.Member{}, err
	}
	if err := validateMember(&m); err != nil {
		return model.Member{}, err
	}

	members, err := s.ListMembers(ctx)
	if err != nil {
		return model.Member{}, err
	}

	for i := range members {
		if members[i].ID == m.ID {
			m.CreatedAt = members[i].CreatedAt
			members[i] = m
			if err := saveCollection(ctx, s, KeyMembers, members); err != nil {
				return model.Member{}, err
			}
			return m, nil
		}
	}
	return model.Member{}, fmt.Errorf("%w: member %s", common.ErrNotFound, m.ID)
}

// DeleteMember removes a member. Transactions, loans and groups referencing
// the member keep their dangling IDs; history is never cascaded.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	if err := validateString(id, "member ID"); err != nil {
		return err
	}

	members, err := s.ListMembers(ctx)
	if err != nil {
		return err
	}

	remaining := members[:0]
	for _, m := range members {
		if m.ID != id {
			remaining = append(remaining, m)
		}
	}
	if len(remaining) == len(members) {
		return fmt.Errorf("%w: member %s", common.ErrNotFound, id)
	}
	return saveCollection(ctx, s, KeyMembers, remaining)
}

// ImportMembers merges the given members into the collection by ID. An
// incoming record with a known ID overwrites the stored one, so importing
// the same batch twice is idempotent.
func (s *Store) ImportMembers(ctx context.Context, incoming []model.Member) error {
	existing, err := s.ListMembers(ctx)
	if err != nil {
		return err
	}

	merged := make([]model.Member, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing))
	for _, m := range existing {
		index[m.ID] = len(merged)
		merged = append(merged, m)
	}

	for _, m := range incoming {
		if err := validateMember(&m); err != nil {
			return err
		}
		if m.ID == "" {
			m.ID = newID()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}
		if m.AvatarColor == "" {
			m.AvatarColor = randomAvatarColor()
		}
		if pos, ok := index[m.ID]; ok {
			merged[pos] = m
		} else {
			index[m.ID] = len(merged)
			merged = append(merged, m)
		}
	}

	if err := saveCollection(ctx, s, KeyMembers, merged); err != nil {
		return err
	}
	slog.Info("imported members", "incoming", len(incoming), "total", len(merged))
	return nil
}
