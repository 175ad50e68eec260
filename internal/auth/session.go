// Package auth wraps the persisted "current user" session and resolves it
// into an access profile. There are no credentials here: signing in is
// picking an active local user account.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"orghub/internal/access"
	"orghub/internal/common"
	"orghub/internal/model"
	"orghub/internal/provider"
	"orghub/internal/storage"
)

// Manager resolves the persisted session against the provider's user and
// member collections.
type Manager struct {
	store *storage.Store
	data  *provider.Provider
}

// New creates a session manager.
func New(store *storage.Store, data *provider.Provider) *Manager {
	return &Manager{store: store, data: data}
}

// SignIn persists a session for the given user. The user must exist and be
// active.
func (m *Manager) SignIn(ctx context.Context, userID string) (model.UserAccount, error) {
	user, ok := m.data.UserByID(userID)
	if !ok {
		return model.UserAccount{}, fmt.Errorf("%w: %s", common.ErrUnknownUser, userID)
	}
	if !user.IsActive {
		return model.UserAccount{}, fmt.Errorf("%w: %s", common.ErrInactiveUser, userID)
	}

	if err := m.store.SaveSession(ctx, storage.Session{UserID: userID}); err != nil {
		return model.UserAccount{}, err
	}
	slog.Info("signed in", "user", userID, "role", user.SystemRole)
	return user, nil
}

// SignOut clears the persisted session.
func (m *Manager) SignOut(ctx context.Context) error {
	return m.store.ClearSession(ctx)
}

// CurrentUser resolves the persisted session to a user account. A session
// pointing at a deleted or deactivated account is cleared and reported as
// no session.
func (m *Manager) CurrentUser(ctx context.Context) (model.UserAccount, bool, error) {
	session, ok, err := m.store.GetSession(ctx)
	if err != nil {
		return model.UserAccount{}, false, err
	}
	if !ok {
		return model.UserAccount{}, false, nil
	}

	user, found := m.data.UserByID(session.UserID)
	if !found || !user.IsActive {
		if err := m.store.ClearSession(ctx); err != nil {
			return model.UserAccount{}, false, err
		}
		return model.UserAccount{}, false, nil
	}
	return user, true, nil
}

// CurrentProfile builds the access profile for the signed-in user.
func (m *Manager) CurrentProfile(ctx context.Context) (access.Profile, error) {
	user, ok, err := m.CurrentUser(ctx)
	if err != nil {
		return access.Profile{}, err
	}
	if !ok {
		return access.Profile{}, common.ErrNoSession
	}
	return m.ProfileFor(user), nil
}

// ProfileFor derives the access profile from a user account and its linked
// member record. Admins short-circuit: their profile never carries org
// position or status. For org users the position falls back from the
// account override to the member's position, then to the member's status, so
// an applicant member without an explicit position still profiles as an
// applicant.
func (m *Manager) ProfileFor(user model.UserAccount) access.Profile {
	if user.SystemRole == model.RoleAdmin {
		return access.Profile{
			SystemRole: model.RoleAdmin,
			MemberID:   user.MemberID,
		}
	}

	var member model.Member
	var hasMember bool
	if user.MemberID != "" {
		member, hasMember = m.data.MemberByID(user.MemberID)
	}

	rawPosition := string(user.Position)
	if rawPosition == "" && hasMember {
		rawPosition = string(member.Position)
		if rawPosition == "" || rawPosition == string(model.PositionMember) {
			if member.Status == model.StatusApplicant {
				rawPosition = string(model.PositionApplicant)
			}
		}
	}
	position := model.NormalizeOrgPosition(rawPosition)

	status := model.StatusActive
	if hasMember {
		status = model.NormalizeMemberStatus(string(member.Status))
	} else if position == model.PositionApplicant {
		status = model.StatusApplicant
	}

	return access.Profile{
		SystemRole:   model.RoleOrgUser,
		OrgPosition:  position,
		MemberStatus: status,
		MemberID:     user.MemberID,
	}
}
