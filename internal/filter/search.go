package filter

import (
	"strings"

	"github.com/zaishu/zaishu-api/internal/domain"
)

// BookFields is the filterable field set of domain.Book.
var BookFields = FieldSet{
	domain.BookFieldID:         "id",
	domain.BookFieldName:       "name",
	domain.BookFieldISBN:       "isbn",
	domain.BookFieldAuthor:     "author",
	domain.BookFieldClassifyID: "classify_id",
	domain.BookFieldCreateID:   "create_id",
	domain.BookFieldState:      "state",
}

// CommentFields is the filterable field set of domain.Comment.
var CommentFields = FieldSet{
	domain.CommentFieldBookID: "book_id",
	domain.CommentFieldUserID: "user_id",
}

// BuildSearchFilter builds the book search predicate. The rules are ordered and
// mutually exclusive:
//
//  1. a search key matches name OR isbn and ignores the category;
//  2. otherwise a category matches classifyId AND excludes unapproved books;
//  3. otherwise there is no filter.
//
// A blank search key counts as absent.
func BuildSearchFilter(searchKey *string, categoryID *int64) Expression {
	if searchKey != nil {
		if key := strings.TrimSpace(*searchKey); key != "" {
			return Or(
				Contains(domain.BookFieldName, key),
				Contains(domain.BookFieldISBN, key),
			)
		}
	}
	if categoryID != nil {
		return And(
			Equals(domain.BookFieldClassifyID, *categoryID),
			NotEquals(domain.BookFieldState, domain.BookStateUnapproved),
		)
	}
	return nil
}

// BuildOwnerFilter selects the books created by targetUserID as seen by callerID.
// The owner sees every state; anyone else never sees unapproved books.
func BuildOwnerFilter(targetUserID, callerID int64) Expression {
	owned := Equals(domain.BookFieldCreateID, targetUserID)
	if targetUserID == callerID {
		return owned
	}
	return And(owned, NotEquals(domain.BookFieldState, domain.BookStateUnapproved))
}
