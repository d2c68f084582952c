// Package memory is an in-process implementation of the repository
// interfaces. It backs STORE_DRIVER=memory and the test suites.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	"github.com/oksasatya/go-contact-management/internal/domain/repository"
)

// Store holds all tables behind a single mutex.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	contacts   map[int64]entity.Contact
	addresses  map[int64]entity.Address
	contactSeq int64
	addressSeq int64
}

func New() *Store {
	return &Store{
		users:     map[string]entity.User{},
		contacts:  map[int64]entity.Contact{},
		addresses: map[int64]entity.Address{},
	}
}

func (s *Store) Users() *UserRepository         { return &UserRepository{s: s} }
func (s *Store) Contacts() *ContactRepository   { return &ContactRepository{s: s} }
func (s *Store) Addresses() *AddressRepository { return &AddressRepository{s: s} }

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// UserRepository

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.Username]; ok {
		return errDuplicate("users.username")
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	cp.Token = cloneStr(u.Token)
	r.s.users[u.Username] = cp
	return nil
}

func (r *UserRepository) CountByUsername(_ context.Context, username string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if _, ok := r.s.users[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Token = cloneStr(u.Token)
	return &u, nil
}

func (r *UserRepository) GetByToken(_ context.Context, token string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Token != nil && *u.Token == token {
			u.Token = cloneStr(u.Token)
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.Username]
	if !ok {
		return repository.ErrNotFound
	}
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = time.Now()
	cp := *u
	cp.Token = cloneStr(u.Token)
	r.s.users[u.Username] = cp
	return nil
}

// ContactRepository

type ContactRepository struct{ s *Store }

func cloneContact(c entity.Contact) entity.Contact {
	c.LastName = cloneStr(c.LastName)
	c.Email = cloneStr(c.Email)
	c.Phone = cloneStr(c.Phone)
	return c
}

func (r *ContactRepository) Create(_ context.Context, c *entity.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[c.Username]; !ok {
		return errForeignKey("contacts.username")
	}
	r.s.contactSeq++
	now := time.Now()
	c.ID = r.s.contactSeq
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.contacts[c.ID] = cloneContact(*c)
	return nil
}

// lookup must be called with the lock held.
func (r *ContactRepository) lookup(id int64, username string) (entity.Contact, bool) {
	c, ok := r.s.contacts[id]
	if !ok || !c.BelongsTo(username) {
		return entity.Contact{}, false
	}
	return c, true
}

func (r *ContactRepository) GetByIDAndUsername(_ context.Context, id int64, username string) (*entity.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.lookup(id, username)
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = cloneContact(c)
	return &c, nil
}

func (r *ContactRepository) Update(_ context.Context, c *entity.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.lookup(c.ID, c.Username)
	if !ok {
		return repository.ErrNotFound
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now()
	r.s.contacts[c.ID] = cloneContact(*c)
	return nil
}

// Delete removes the contact and, like the ON DELETE CASCADE foreign key in
// Postgres, every address under it.
func (r *ContactRepository) Delete(_ context.Context, id int64, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.lookup(id, username); !ok {
		return repository.ErrNotFound
	}
	delete(r.s.contacts, id)
	for aid, a := range r.s.addresses {
		if a.ContactID == id {
			delete(r.s.addresses, aid)
		}
	}
	return nil
}

func matchContact(c entity.Contact, f repository.ContactFilter) bool {
	if !c.BelongsTo(f.Username) {
		return false
	}
	if f.Name != nil {
		needle := strings.ToLower(*f.Name)
		first := strings.Contains(strings.ToLower(c.FirstName), needle)
		last := c.LastName != nil && strings.Contains(strings.ToLower(*c.LastName), needle)
		if !first && !last {
			return false
		}
	}
	if f.Email != nil && (c.Email == nil || !strings.Contains(*c.Email, *f.Email)) {
		return false
	}
	if f.Phone != nil && (c.Phone == nil || !strings.Contains(*c.Phone, *f.Phone)) {
		return false
	}
	return true
}

// filter must be called with the lock held. Results are ordered by id.
func (r *ContactRepository) filter(f repository.ContactFilter) []entity.Contact {
	out := make([]entity.Contact, 0)
	for _, c := range r.s.contacts {
		if matchContact(c, f) {
			out = append(out, cloneContact(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ContactRepository) Search(_ context.Context, f repository.ContactFilter, offset, limit int) ([]entity.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.filter(f)
	if offset < 0 || offset >= len(all) {
		return []entity.Contact{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *ContactRepository) Count(_ context.Context, f repository.ContactFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.filter(f)), nil
}

// AddressRepository

type AddressRepository struct{ s *Store }

func cloneAddress(a entity.Address) entity.Address {
	a.Street = cloneStr(a.Street)
	a.City = cloneStr(a.City)
	a.Province = cloneStr(a.Province)
	return a
}

func (r *AddressRepository) Create(_ context.Context, a *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contacts[a.ContactID]; !ok {
		return errForeignKey("addresses.contact_id")
	}
	r.s.addressSeq++
	now := time.Now()
	a.ID = r.s.addressSeq
	a.CreatedAt, a.UpdatedAt = now, now
	r.s.addresses[a.ID] = cloneAddress(*a)
	return nil
}

// lookup must be called with the lock held.
func (r *AddressRepository) lookup(id, contactID int64) (entity.Address, bool) {
	a, ok := r.s.addresses[id]
	if !ok || a.ContactID != contactID {
		return entity.Address{}, false
	}
	return a, true
}

func (r *AddressRepository) GetByIDAndContactID(_ context.Context, id, contactID int64) (*entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.lookup(id, contactID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	a = cloneAddress(a)
	return &a, nil
}

func (r *AddressRepository) Update(_ context.Context, a *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.lookup(a.ID, a.ContactID)
	if !ok {
		return repository.ErrNotFound
	}
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = time.Now()
	r.s.addresses[a.ID] = cloneAddress(*a)
	return nil
}

func (r *AddressRepository) Delete(_ context.Context, id, contactID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.lookup(id, contactID); !ok {
		return repository.ErrNotFound
	}
	delete(r.s.addresses, id)
	return nil
}

func (r *AddressRepository) ListByContactID(_ context.Context, contactID int64) ([]entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Address{}
	for _, a := range r.s.addresses {
		if a.ContactID == contactID {
			out = append(out, cloneAddress(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.ContactRepository = (*ContactRepository)(nil)
	_ repository.AddressRepository = (*AddressRepository)(nil)
)
