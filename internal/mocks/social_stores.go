package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/filter"
	"github.com/zaishu/zaishu-api/internal/store"
)

// MockFeedbackStore records created feedback.
type MockFeedbackStore struct {
	CreateErr error
	Created   []domain.Feedback
}

var _ store.FeedbackStore = (*MockFeedbackStore)(nil)

// Create implements store.FeedbackStore.
func (m *MockFeedbackStore) Create(_ context.Context, fb *domain.Feedback) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	fb.ID = int64(len(m.Created) + 1)
	m.Created = append(m.Created, *fb)
	return nil
}

// MockCategoryStore serves a fixed category list.
type MockCategoryStore struct {
	Categories []domain.Category
	Err        error
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// List implements store.CategoryStore.
func (m *MockCategoryStore) List(context.Context) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]domain.Category{}, m.Categories...), nil
}

// GetByID implements store.CategoryStore.
func (m *MockCategoryStore) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, store.ErrCategoryNotFound
}

// MockFavoriteStore keeps favorites in memory and resolves books through Books.
type MockFavoriteStore struct {
	Books *MockBookStore

	mu        sync.Mutex
	favorites []domain.Favorite
}

var _ store.FavoriteStore = (*MockFavoriteStore)(nil)

// NewMockFavoriteStore creates a favorite store backed by books.
func NewMockFavoriteStore(books *MockBookStore) *MockFavoriteStore {
	return &MockFavoriteStore{Books: books}
}

// Create implements store.FavoriteStore.
func (m *MockFavoriteStore) Create(_ context.Context, fav *domain.Favorite) error {
	if !m.Books.Has(fav.BookID) {
		return store.ErrBookNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.favorites {
		if f.UserID == fav.UserID && f.BookID == fav.BookID {
			return store.ErrFavoriteExists
		}
	}
	fav.ID = int64(len(m.favorites) + 1)
	m.favorites = append(m.favorites, *fav)
	return nil
}

// Delete implements store.FavoriteStore.
func (m *MockFavoriteStore) Delete(_ context.Context, userID, bookID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.favorites {
		if f.UserID == userID && f.BookID == bookID {
			m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
			return nil
		}
	}
	return store.ErrFavoriteNotFound
}

// PageBooks implements store.FavoriteStore.
func (m *MockFavoriteStore) PageBooks(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]domain.Book, int64, error) {
	m.mu.Lock()
	favs := append([]domain.Favorite{}, m.favorites...)
	m.mu.Unlock()

	var books []domain.Book
	for _, f := range favs {
		if f.UserID != userID {
			continue
		}
		b, err := m.Books.GetByID(ctx, f.BookID)
		if err != nil || !b.VisibleTo(userID) {
			continue
		}
		books = append(books, *b)
	}
	return window(books, offset, limit), int64(len(books)), nil
}

// MockCommentStore keeps comments in memory.
type MockCommentStore struct {
	Books *MockBookStore

	mu       sync.Mutex
	comments map[int64]domain.Comment
	nextID   int64
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// NewMockCommentStore creates a comment store backed by books and seeded with comments.
func NewMockCommentStore(books *MockBookStore, comments ...domain.Comment) *MockCommentStore {
	m := &MockCommentStore{Books: books, comments: make(map[int64]domain.Comment)}
	for _, c := range comments {
		m.comments[c.ID] = c
		if c.ID > m.nextID {
			m.nextID = c.ID
		}
	}
	return m
}

// Create implements store.CommentStore.
func (m *MockCommentStore) Create(_ context.Context, c *domain.Comment) error {
	if !m.Books.Has(c.BookID) {
		return store.ErrBookNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.comments[c.ID] = *c
	return nil
}

// GetByID implements store.CommentStore.
func (m *MockCommentStore) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, store.ErrCommentNotFound
	}
	return &c, nil
}

// Delete implements store.CommentStore.
func (m *MockCommentStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.comments, id)
	return nil
}

// Page implements store.CommentStore.
func (m *MockCommentStore) Page(
	_ context.Context,
	expr filter.Expression,
	offset, limit int,
) ([]domain.Comment, int64, error) {
	if err := validate(expr, filter.CommentFields); err != nil {
		return nil, 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []domain.Comment
	for _, c := range m.comments {
		if matches(expr, commentField(c)) {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return window(matched, offset, limit), int64(len(matched)), nil
}
