package mocks

import (
	"context"
	"sync"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/store"
)

// MockUserStore is an in-memory store.UserStore. Passwords are stored as given,
// prefixed with "hashed:" so tests can tell the two apart.
type MockUserStore struct {
	CreateFn func(ctx context.Context, user *domain.User) error

	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a store seeded with users. Seeded users keep their IDs.
func NewMockUserStore(users ...domain.User) *MockUserStore {
	m := &MockUserStore{users: make(map[int64]*domain.User)}
	for i := range users {
		u := users[i]
		m.users[u.ID] = &u
		if u.ID > m.nextID {
			m.nextID = u.ID
		}
	}
	return m
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Account == user.Account {
			return store.ErrAccountExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	if user.Password != "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// GetByAccount implements the UserStore interface
func (m *MockUserStore) GetByAccount(_ context.Context, account string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Account == account {
			out := *u
			return &out, nil
		}
	}
	return nil, store.ErrUserNotFound
}
