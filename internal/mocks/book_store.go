package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/store"
)

// MockBookStore is an in-memory store.BookStore that evaluates filter expressions.
type MockBookStore struct {
	// PageErr, when set, is returned by Page.
	PageErr error

	// PageCalls records the expression of every Page call.
	PageCalls []filter.Expression

	mu     sync.Mutex
	books  map[int64]domain.Book
	nextID int64
}

var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates a store seeded with books. Seeded books keep their IDs.
func NewMockBookStore(books ...domain.Book) *MockBookStore {
	m := &MockBookStore{books: make(map[int64]domain.Book)}
	for _, b := range books {
		m.books[b.ID] = b
		if b.ID > m.nextID {
			m.nextID = b.ID
		}
	}
	return m
}

// Create implements store.BookStore.
func (m *MockBookStore) Create(_ context.Context, book *domain.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	book.ID = m.nextID
	m.books[book.ID] = *book
	return nil
}

// GetByID implements store.BookStore.
func (m *MockBookStore) GetByID(_ context.Context, id int64) (*domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return &b, nil
}

// Delete implements store.BookStore.
func (m *MockBookStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(m.books, id)
	return nil
}

// Page implements store.BookStore.
func (m *MockBookStore) Page(
	_ context.Context,
	expr filter.Expression,
	offset, limit int,
) ([]domain.Book, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PageCalls = append(m.PageCalls, expr)

	if m.PageErr != nil {
		return nil, 0, m.PageErr
	}
	if err := validate(expr, filter.BookFields); err != nil {
		return nil, 0, err
	}

	var matched []domain.Book
	for _, b := range m.books {
		if matches(expr, bookField(b)) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	return window(matched, offset, limit), int64(len(matched)), nil
}

// Has reports whether a book with id is stored.
func (m *MockBookStore) Has(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.books[id]
	return ok
}
