package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
)

// ListGroups returns every stored group.
func (s *Store) ListGroups(ctx context.Context) ([]model.Group, error) {
	return listCollection[model.Group](ctx, s, KeyGroups)
}

// CreateGroup appends a new group to the collection.
func (s *Store) CreateGroup(ctx context.Context, g model.Group) (model.Group, error) {
	if err := validateGroup(&g); err != nil {
		return model.Group{}, err
	}

	groups, err := s.ListGroups(ctx)
	if err != nil {
		return model.Group{}, err
	}

	g.ID = newID()
	g.CreatedAt = time.Now()
	groups = append(groups, g)
	if err := saveCollection(ctx, s, KeyGroups, groups); err != nil {
		return model.Group{}, err
	}

	slog.Info("created group", "id", g.ID, "name", g.Name)
	return g, nil
}

// UpdateGroup replaces the stored group with the same ID. Member IDs are
// not checked against the member collection; deleting a member leaves a
// stale reference here.
func (s *Store) UpdateGroup(ctx context.Context, g model.Group) (model.Group, error) {
	if err := validateString(g.ID, "group ID"); err != nil {
		return model.Group{}, err
	}
	if err := validateGroup(&g); err != nil {
		return model.Group{}, err
	}

	groups, err := s.ListGroups(ctx)
	if err != nil {
		return model.Group{}, err
	}

	for i := range groups {
		if groups[i].ID == g.ID {
			g.CreatedAt = groups[i].CreatedAt
			groups[i] = g
			if err := saveCollection(ctx, s, KeyGroups, groups); err != nil {
				return model.Group{}, err
			}
			return g, nil
		}
	}
	return model.Group{}, fmt.Errorf("%w: group %s", common.ErrNotFound, g.ID)
}

// DeleteGroup removes a group.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	if err := validateString(id, "group ID"); err != nil {
		return err
	}

	groups, err := s.ListGroups(ctx)
	if err != nil {
		return err
	}

	remaining := groups[:0]
	for _, g := range groups {
		if g.ID != id {
			remaining = append(remaining, g)
		}
	}
	if len(remaining) == len(groups) {
		return fmt.Errorf("%w: group %s", common.ErrNotFound, id)
	}
	return saveCollection(ctx, s, KeyGroups, remaining)
}
