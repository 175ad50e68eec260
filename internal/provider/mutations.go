package provider

import (
	"context"

	"orghub/internal/model"
)

// AddMember writes the member through to the store and caches the stamped
// record.
func (p *Provider) AddMember(ctx context.Context, m model.Member) (model.Member, error) {
	created, err := p.store.CreateMember(ctx, m)
	if err != nil {
		return model.Member{}, err
	}
	p.mu.Lock()
	p.members = append(p.members, created)
	p.mu.Unlock()
	return created, nil
}

// EditMember replaces the member with the same ID in store and cache.
func (p *Provider) EditMember(ctx context.Context, m model.Member) (model.Member, error) {
	updated, err := p.store.UpdateMember(ctx, m)
	if err != nil {
		return model.Member{}, err
	}
	p.mu.Lock()
	for i := range p.members {
		if p.members[i].ID == updated.ID {
			p.members[i] = updated
			break
		}
	}
	p.mu.Unlock()
	return updated, nil
}

// RemoveMember deletes a member. Groups and transactions referencing the
// member keep their stale IDs.
func (p *Provider) RemoveMember(ctx context.Context, id string) error {
	if err := p.store.DeleteMember(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	p.members = removeByID(p.members, id, func(m model.Member) string { return m.ID })
	p.mu.Unlock()
	return nil
}

// AddEvent writes the event through to the store and caches it.
func (p *Provider) AddEvent(ctx context.Context, e model.OrgEvent) (model.OrgEvent, error) {
	created, err := p.store.CreateEvent(ctx, e)
	if err != nil {
		return model.OrgEvent{}, err
	}
	p.mu.Lock()
	p.events = append(p.events, created)
	p.mu.Unlock()
	return created, nil
}

// EditEvent replaces the event with the same ID in store and cache.
func (p *Provider) EditEvent(ctx context.Context, e model.OrgEvent) (model.OrgEvent, error) {
	updated, err := p.store.UpdateEvent(ctx, e)
	if err != nil {
		return model.OrgEvent{}, err
	}
	p.mu.Lock()
	for i := range p.events {
		if p.events[i].ID == updated.ID {
			p.events[i] = updated
			break
		}
	}
	p.mu.Unlock()
	return updated, nil
}

// RemoveEvent deletes an event and drops its attendance records from the
// cache, mirroring the store cascade.
func (p *Provider) RemoveEvent(ctx context.Context, id string) error {
	if err := p.store.DeleteEvent(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	p.events = removeByID(p.events, id, func(e model.OrgEvent) string { return e.ID })
	kept := p.attendance[:0]
	for _, r := range p.attendance {
		if r.EventID != id {
			kept = append(kept, r)
		}
	}
	p.attendance = kept
	p.mu.Unlock()
	return nil
}

// AddGroup writes the group through to the store and caches it.
func (p *Provider) AddGroup(ctx context.Context, g model.Group) (model.Group, error) {
	created, err := p.store.CreateGroup(ctx, g)
	if err != nil {
		return model.Group{}, err
	}
	p.mu.Lock()
	p.groups = append(p.groups, created)
	p.mu.Unlock()
	return created, nil
}

// EditGroup replaces the group with the same ID in store and cache.
func (p *Provider) EditGroup(ctx context.Context, g model.Group) (model.Group, error) {
	updated, err := p.store.UpdateGroup(ctx, g)
	if err != nil {
		return model.Group{}, err
	}
	p.mu.Lock()
	for i := range p.groups {
		if p.groups[i].ID == updated.ID {
			p.groups[i] = updated
			break
		}
	}
	p.mu.Unlock()
	return updated, nil
}

// RemoveGroup deletes a group.
func (p *Provider) RemoveGroup(ctx context.Context, id string) error {
	if err := p.store.DeleteGroup(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	p.groups = removeByID(p.groups, id, func(g model.Group) string { return g.ID })
	p.mu.Unlock()
	return nil
}

// AddTransaction writes the transaction through to the store and caches it.
func (p *Provider) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	created, err := p.store.CreateTransaction(ctx, t)
	if err != nil {
		return model.Transaction{}, err
	}
	p.mu.Lock()
	p.txns = append(p.txns, created)
	p.mu.Unlock()
	return created, nil
}

// RemoveTransaction deletes a transaction. A loan already marked paid by
// this transaction stays paid.
func (p *Provider) RemoveTransaction(ctx context.Context, id string) error {
	if err := p.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	p.txns = removeByID(p.txns, id, func(t model.Transaction) string { return t.ID })
	p.mu.Unlock()
	return nil
}

// AddLoan writes the loan through to the store and caches it.
func (p *Provider) AddLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	created, err := p.store.CreateLoan(ctx, l)
	if err != nil {
		return model.Loan{}, err
	}
	p.mu.Lock()
	p.loans = append(p.loans, created)
	p.mu.Unlock()
	return created, nil
}

// EditLoan replaces the loan with the same ID in store and cache.
func (p *Provider) EditLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	updated, err := p.store.UpdateLoan(ctx, l)
	if err != nil {
		return model.Loan{}, err
	}
	p.mu.Lock()
	for i := range p.loans {
		if p.loans[i].ID == updated.ID {
			p.loans[i] = updated
			break
		}
	}
	p.mu.Unlock()
	return updated, nil
}

// RemoveLoan deletes a loan.
func (p *Provider) RemoveLoan(ctx context.Context, id string) error {
	if err := p.store.DeleteLoan(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	p.loans = removeByID(p.loans, id, func(l model.Loan) string { return l.ID })
	p.mu.Unlock()
	return nil
}

// AddUser writes the user account through to the store and caches it.
func (p *Provider) AddUser(ctx context.Context, u model.UserAccount) (model.UserAccount, error) {
	created, err := p.store.CreateUser(ctx, u)
	if err != nil {
		return model.UserAccount{}, err
	}
	p.mu.Lock()
	p.users = append(p.users, created)
	p.mu.Unlock()
	return created, nil
}

// EditUser replaces the user account with the same ID in store and cache.
func (p *Provider) EditUser(ctx context.Context, u model.UserAccount) (model.UserAccount, error) {
	updated, err := p.store.UpdateUser(ctx, u)
	if err != nil {
		return model.UserAccount{}, err
	}
	p.mu.Lock()
	for i := range p.users {
		if p.users[i].ID == updated.ID {
			p.users[i] = updated
			break
		}
	}
	p.mu.Unlock()
	return updated, nil
}

// RemoveUser deletes a user account.
func (p *Provider) RemoveUser(ctx context.Context, id string) error {
	if err := p.store.DeleteUser(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	p.users = removeByID(p.users, id, func(u model.UserAccount) string { return u.ID })
	p.mu.Unlock()
	return nil
}

// UpdateAccountSettings replaces the settings singleton in store and cache.
func (p *Provider) UpdateAccountSettings(ctx context.Context, s model.AccountSettings) error {
	if err := p.store.SaveAccountSettings(ctx, s); err != nil {
		return err
	}
	p.mu.Lock()
	p.settings = s
	p.mu.Unlock()
	return nil
}

// MarkAttendance upserts the attendance record for the (event, member) pair.
func (p *Provider) MarkAttendance(ctx context.Context, eventID, memberID string, present bool) (model.AttendanceRecord, error) {
	record, err := p.store.UpsertAttendance(ctx, eventID, memberID, present)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	p.mu.Lock()
	replaced := false
	for i := range p.attendance {
		if p.attendance[i].EventID == eventID && p.attendance[i].MemberID == memberID {
			p.attendance[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		p.attendance = append(p.attendance, record)
	}
	p.mu.Unlock()
	return record, nil
}

// EventAttendance filters the cached attendance records for one event.
func (p *Provider) EventAttendance(eventID string) []model.AttendanceRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var records []model.AttendanceRecord
	for _, r := range p.attendance {
		if r.EventID == eventID {
			records = append(records, r)
		}
	}
	return records
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	kept := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			kept = append(kept, item)
		}
	}
	return kept
}
