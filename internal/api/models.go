package api

import "github.com/zaishu/zaishu-api/internal/domain"

// RegisterRequest is the payload of POST /account/register.
type RegisterRequest struct {
	Account  string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=8,max=72"`
	Nickname string `validate:"max=64"`
}

// LoginRequest is the payload of POST /account/login.
type LoginRequest struct {
	Account  string `validate:"required"`
	Password string `validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	UserID int64        `json:"userId"`
	Token  string       `json:"token"`
	User   *domain.User `json:"user"`
}

// feedbackRequest is the payload of POST /feedback. Field order decides which
// missing field is reported first.
type feedbackRequest struct {
	UserID  int64  `validate:"required,gt=0"`
	Content string `validate:"required"`
}

// bookRequest is the payload of POST /book.
type bookRequest struct {
	Name       string `validate:"required,max=255"`
	ISBN       string `validate:"required"`
	ClassifyID int64  `validate:"required,gt=0"`
	Author     string `validate:"max=255"`
	Cover      string `validate:"omitempty,url"`
	Summary    string
}
