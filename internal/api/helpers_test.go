package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/page"
)

var testLimits = page.Limits{DefaultSize: 10, MaxSize: 50}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// envelope is the decoded wire form of shared.Envelope.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// call routes one request through a chi router registering h at pattern.
// A positive caller is installed as the authenticated user.
type call struct {
	method  string
	pattern string
	target  string
	form    url.Values
	json    string
	caller  int64
}

func (c call) do(t *testing.T, h shared.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if c.caller > 0 {
				req = req.WithContext(shared.WithAuth(req.Context(), shared.AuthContext{CallerID: c.caller}))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Method(c.method, c.pattern, Handle(h))

	var req *http.Request
	switch {
	case c.form != nil:
		req = httptest.NewRequest(c.method, c.target, strings.NewReader(c.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	case c.json != "":
		req = httptest.NewRequest(c.method, c.target, strings.NewReader(c.json))
		req.Header.Set("Content-Type", "application/json")
	default:
		req = httptest.NewRequest(c.method, c.target, nil)
	}
	req = req.WithContext(context.Background())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, env envelope, code int) {
	t.Helper()
	require.NotNil(t, env.Error, "expected error envelope, got %s", rec.Body.String())
	require.Equal(t, code, env.Error.Code, env.Error.Message)
	require.Nil(t, env.Data)
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	require.Nil(t, env.Error, "unexpected error envelope")
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func book(id, owner, category int64, state domain.BookState, name string) domain.Book {
	return domain.Book{
		ID:         id,
		Name:       name,
		ISBN:       "978711100000" + string(rune('0'+id%10)),
		ClassifyID: category,
		CreateID:   owner,
		State:      state,
		CreatedAt:  testTime,
	}
}

func bookIDs(books []domain.Book) []int64 {
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}
