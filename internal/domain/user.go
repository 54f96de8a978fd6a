package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyAccount     = errors.New("account cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
)

// User is a registered reader.
type User struct {
	ID             int64     `json:"id"`
	Account        string    `json:"account"`
	Nickname       string    `json:"nickname"`
	Avatar         string    `json:"avatar"`
	Password       string    `json:"-"` // plaintext, only during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUser creates a user with a plaintext password that the store hashes before saving.
func NewUser(account, password, nickname string) (*User, error) {
	u := &User{
		Account:   strings.TrimSpace(account),
		Nickname:  strings.TrimSpace(nickname),
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if u.Nickname == "" {
		u.Nickname = u.Account
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks account and password constraints.
func (u *User) Validate() error {
	if u.Account == "" {
		return NewValidationError("account", "is required", ErrEmptyAccount)
	}
	if u.Password == "" && u.HashedPassword == "" {
		return NewValidationError("password", "is required", ErrValidation)
	}
	if u.Password != "" {
		// 72 bytes is bcrypt's input limit.
		if len(u.Password) < 8 {
			return NewValidationError("password", "is too short", ErrPasswordTooShort)
		}
		if len(u.Password) > 72 {
			return NewValidationError("password", "is too long", ErrPasswordTooLong)
		}
	}
	return nil
}
