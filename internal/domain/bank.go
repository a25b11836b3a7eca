package domain

import "sync"

// Bank is the process-wide user registry. Built once at startup, torn down
// with the process; no persistence behind it.
type Bank struct {
	mu    sync.RWMutex
	name  string
	users map[string]*User
}

func NewBank(name string) *Bank {
	return &Bank{
		name:  name,
		users: make(map[string]*User),
	}
}

func (b *Bank) Name() string { return b.name }

// AddUser registers a user. The existence check and the insert happen under
// one lock so two concurrent registrations cannot both claim a username.
func (b *Bank) AddUser(u *User) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[u.Username()]; exists {
		return ErrDuplicateKey
	}
	b.users[u.Username()] = u
	return nil
}

func (b *Bank) FindUser(username string) (*User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	u, ok := b.users[username]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return u, nil
}
