// Package provider holds the single in-memory view of every collection.
// All mutation funnels through it: each operation writes through to the
// store and then patches the cache with the returned value, so the cache
// and store stay in lockstep without re-fetching whole collections.
package provider

import (
	"context"
	"fmt"
	"sync"

	"orghub/internal/model"
	"orghub/internal/storage"
)

// Provider caches all collections and serializes access to them.
type Provider struct {
	store *storage.Store

	mu         sync.RWMutex
	members    []model.Member
	events     []model.OrgEvent
	groups     []model.Group
	attendance []model.AttendanceRecord
	txns       []model.Transaction
	loans      []model.Loan
	users      []model.UserAccount
	settings   model.AccountSettings
	loading    bool
}

// New creates a provider over the given store. Call Refresh before reading.
func New(store *storage.Store) *Provider {
	return &Provider{
		store:    store,
		settings: model.DefaultAccountSettings(),
		loading:  true,
	}
}

// Refresh reloads every collection from the store, replacing the cache.
// Call it once at startup and again after any external mutation such as a
// restore.
func (p *Provider) Refresh(ctx context.Context) error {
	members, err := p.store.ListMembers(ctx)
	if err != nil {
		return fmt.Errorf("loading members: %w", err)
	}
	events, err := p.store.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}
	groups, err := p.store.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("loading groups: %w", err)
	}
	attendance, err := p.store.ListAttendance(ctx)
	if err != nil {
		return fmt.Errorf("loading attendance: %w", err)
	}
	txns, err := p.store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	loans, err := p.store.ListLoans(ctx)
	if err != nil {
		return fmt.Errorf("loading loans: %w", err)
	}
	users, err := p.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}
	settings, err := p.store.GetAccountSettings(ctx)
	if err != nil {
		return fmt.Errorf("loading account settings: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.members = members
	p.events = events
	p.groups = groups
	p.attendance = attendance
	p.txns = txns
	p.loans = loans
	p.users = users
	p.settings = settings
	p.loading = false
	return nil
}

// Loading reports whether the first Refresh has completed.
func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Members returns a snapshot of the member collection.
func (p *Provider) Members() []model.Member {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Member(nil), p.members...)
}

// Events returns a snapshot of the event collection.
func (p *Provider) Events() []model.OrgEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.OrgEvent(nil), p.events...)
}

// Groups returns a snapshot of the group collection.
func (p *Provider) Groups() []model.Group {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Group(nil), p.groups...)
}

// Attendance returns a snapshot of the attendance collection.
func (p *Provider) Attendance() []model.AttendanceRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.AttendanceRecord(nil), p.attendance...)
}

// Transactions returns a snapshot of the transaction collection.
func (p *Provider) Transactions() []model.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Transaction(nil), p.txns...)
}

// Loans returns a snapshot of the loan collection.
func (p *Provider) Loans() []model.Loan {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Loan(nil), p.loans...)
}

// Users returns a snapshot of the user account collection.
func (p *Provider) Users() []model.UserAccount {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.UserAccount(nil), p.users...)
}

// AccountSettings returns the cached settings singleton.
func (p *Provider) AccountSettings() model.AccountSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// MemberByID looks up a cached member.
func (p *Provider) MemberByID(id string) (model.Member, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, m := range p.members {
		if m.ID == id {
			return m, true
		}
	}
	return model.Member{}, false
}

// UserByID looks up a cached user account.
func (p *Provider) UserByID(id string) (model.UserAccount, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, u := range p.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.UserAccount{}, false
}

// LoanByID looks up a cached loan.
func (p *Provider) LoanByID(id string) (model.Loan, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, l := range p.loans {
		if l.ID == id {
			return l, true
		}
	}
	return model.Loan{}, false
}
