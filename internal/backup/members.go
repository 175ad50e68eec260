package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
	"orghub/internal/storage"
)

// Envelope type tags and the current schema version.
const (
	MembersType      = "orghub.members"
	TransactionsType = "orghub.transactions"
	SchemaVersion    = 2
)

// memberRow is the tolerant wire shape for one member. Legacy exports used
// split name fields, a single phone field and a color field; they are folded
// into the canonical shape on import.
type memberRow struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	PrimaryPhone   string `json:"primaryPhone,omitempty"`
	SecondaryPhone string `json:"secondaryPhone,omitempty"`
	Email          string `json:"email,omitempty"`
	DOB            string `json:"dob,omitempty"`
	Address        string `json:"address,omitempty"`
	JoinDate       string `json:"joinDate,omitempty"`
	Status         string `json:"status,omitempty"`
	Position       string `json:"orgPosition,omitempty"`
	Role           string `json:"role,omitempty"`
	Color          string `json:"color,omitempty"`
	AvatarColor    string `json:"avatarColor,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

// MembersEnvelope is the versioned member backup document.
type MembersEnvelope struct {
	ExportedAt time.Time   `json:"exportedAt"`
	Type       string      `json:"type"`
	Members    []memberRow `json:"members"`
	Version    int         `json:"version"`
	Count      int         `json:"count"`
}

// ExportMembers renders the member collection as a versioned envelope.
func ExportMembers(members []model.Member) (string, error) {
	rows := make([]memberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, memberRow{
			ID:             m.ID,
			Name:           m.Name,
			PrimaryPhone:   m.PrimaryPhone,
			SecondaryPhone: m.SecondaryPhone,
			Email:          m.Email,
			DOB:            m.DOB,
			Address:        m.Address,
			JoinDate:       m.JoinDate,
			Status:         string(m.Status),
			Position:       string(m.Position),
			AvatarColor:    m.AvatarColor,
			Avatar:         m.Avatar,
		})
	}

	data, err := json.MarshalIndent(MembersEnvelope{
		Type:       MembersType,
		Version:    SchemaVersion,
		ExportedAt: time.Now(),
		Count:      len(rows),
		Members:    rows,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode member backup: %w", err)
	}
	return string(data), nil
}

// normalizeMemberRow folds a wire row into the canonical member shape.
func normalizeMemberRow(row memberRow) model.Member {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(row.FirstName) + " " + strings.TrimSpace(row.LastName))
	}
	if name == "" {
		name = "Unknown Member"
	}

	primary, secondary := splitPhones(
		firstNonEmpty(row.PrimaryPhone, row.Phone),
		row.SecondaryPhone,
	)

	return model.Member{
		ID:             row.ID,
		Name:           name,
		PrimaryPhone:   primary,
		SecondaryPhone: secondary,
		Email:          strings.TrimSpace(row.Email),
		DOB:            normalizeDateText(row.DOB),
		Address:        strings.TrimSpace(row.Address),
		JoinDate:       normalizeDateText(row.JoinDate),
		Status:         model.NormalizeMemberStatus(row.Status),
		Position:       model.NormalizeOrgPosition(firstNonEmpty(row.Position, row.Role)),
		AvatarColor:    firstNonEmpty(row.AvatarColor, row.Color),
		Avatar:         row.Avatar,
	}
}

// ImportMembers parses a member backup envelope, normalizes every row and
// merges the result into the store by ID. It returns the number of rows
// imported.
func ImportMembers(ctx context.Context, store *storage.Store, blob string) (int, error) {
	var envelope MembersEnvelope
	if err := json.Unmarshal([]byte(blob), &envelope); err != nil {
		return 0, fmt.Errorf("%w: member backup is not valid JSON: %v", common.ErrInvalidInput, err)
	}
	if envelope.Type != MembersType {
		return 0, fmt.Errorf("%w: unexpected backup type %q", common.ErrInvalidInput, envelope.Type)
	}
	if envelope.Version < 1 || envelope.Version > SchemaVersion {
		return 0, fmt.Errorf("%w: unsupported member backup version %d", common.ErrInvalidInput, envelope.Version)
	}

	members := make([]model.Member, 0, len(envelope.Members))
	for _, row := range envelope.Members {
		members = append(members, normalizeMemberRow(row))
	}

	if err := store.ImportMembers(ctx, members); err != nil {
		return 0, err
	}
	return len(members), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
