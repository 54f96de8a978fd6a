package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/platform/logger"
	"github.com/zaishu/zaishu-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = "id, account, nickname, avatar, hashed_password, created_at"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPostgresUserStore(db store.DBTX, bcryptCost int) *PostgresUserStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &PostgresUserStore{db: db, bcryptCost: bcryptCost}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create.
// The plaintext password is hashed and then cleared from user.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("error", err.Error()))
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hash)
		user.Password = ""
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (account, nickname, avatar, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Account, user.Nickname, user.Avatar, user.HashedPassword, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("account already registered")
			return store.ErrAccountExists
		}
		log.Error("failed to insert user", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("user created", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// GetByAccount implements store.UserStore.GetByAccount.
func (s *PostgresUserStore) GetByAccount(ctx context.Context, account string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE account = $1", account)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Account, &u.Nickname, &u.Avatar, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	return &u, nil
}
