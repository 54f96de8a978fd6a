package domain

import (
	"errors"
	"strings"
	"time"
)

// BookState is the review state of a submitted book.
type BookState int

const (
	// BookStateApproved books are visible to everyone.
	BookStateApproved BookState = 0
	// BookStateUnapproved books are visible only to their creator.
	BookStateUnapproved BookState = 1
)

// Book field names as exposed to filter expressions and JSON.
const (
	BookFieldID         = "id"
	BookFieldName       = "name"
	BookFieldISBN       = "isbn"
	BookFieldAuthor     = "author"
	BookFieldClassifyID = "classifyId"
	BookFieldCreateID   = "createId"
	BookFieldState      = "state"
)

var (
	ErrEmptyBookName = errors.New("book name cannot be empty")
	ErrInvalidISBN   = errors.New("isbn must be 10 or 13 digits")
)

// Book is a catalogue entry submitted by a user.
type Book struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ISBN       string    `json:"isbn"`
	Author     string    `json:"author"`
	Cover      string    `json:"cover"`
	Summary    string    `json:"summary"`
	ClassifyID int64     `json:"classifyId"`
	CreateID   int64     `json:"createId"`
	State      BookState `json:"state"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewBook creates an unapproved book owned by creatorID.
func NewBook(creatorID, classifyID int64, name, isbn, author string) (*Book, error) {
	b := &Book{
		Name:       strings.TrimSpace(name),
		ISBN:       strings.ReplaceAll(strings.TrimSpace(isbn), "-", ""),
		Author:     strings.TrimSpace(author),
		ClassifyID: classifyID,
		CreateID:   creatorID,
		State:      BookStateUnapproved,
		CreatedAt:  time.Now().UTC(),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the fields a book needs before it is stored.
func (b *Book) Validate() error {
	if b.CreateID <= 0 {
		return NewValidationError(BookFieldCreateID, "must be positive", ErrInvalidID)
	}
	if b.ClassifyID <= 0 {
		return NewValidationError(BookFieldClassifyID, "must be positive", ErrInvalidID)
	}
	if b.Name == "" {
		return NewValidationError(BookFieldName, "is required", ErrEmptyBookName)
	}
	if !validISBN(b.ISBN) {
		return NewValidationError(BookFieldISBN, "must be 10 or 13 digits", ErrInvalidISBN)
	}
	return nil
}

// VisibleTo reports whether callerID may see the book.
func (b *Book) VisibleTo(callerID int64) bool {
	return b.State != BookStateUnapproved || b.CreateID == callerID
}

func validISBN(isbn string) bool {
	if len(isbn) != 10 && len(isbn) != 13 {
		return false
	}
	for i, r := range isbn {
		if r >= '0' && r <= '9' {
			continue
		}
		// ISBN-10 check digit may be X.
		if len(isbn) == 10 && i == 9 && (r == 'X' || r == 'x') {
			continue
		}
		return false
	}
	return true
}
