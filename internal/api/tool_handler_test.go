package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/platform/isbn"
	"github.com/zaishu/zaishu-api/internal/web"
)

type stubLookuper struct {
	info json.RawMessage
	err  error
	got  string
}

func (s *stubLookuper) Lookup(_ context.Context, code string) (json.RawMessage, error) {
	s.got = code
	return s.info, s.err
}

func TestToolHandler_ISBN(t *testing.T) {
	tests := []struct {
		name       string
		lookup     *stubLookuper
		wantCode   int
		wantStatus int
	}{
		{name: "pass through", lookup: &stubLookuper{info: json.RawMessage(`{"title":"Go","code":6000}`)}, wantStatus: http.StatusOK},
		{
			name:       "upstream down",
			lookup:     &stubLookuper{err: fmt.Errorf("%w: dial tcp", isbn.ErrUpstream)},
			wantCode:   shared.CodeUpstream,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewToolHandler(tc.lookup)

			rec, env := call{method: http.MethodGet, pattern: "/base/isbn/{isbn}", target: "/base/isbn/9787111000009"}.do(t, h.ISBN)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "9787111000009", tc.lookup.got)
			if tc.wantCode != 0 {
				requireErrorCode(t, rec, env, tc.wantCode)
				return
			}
			got := decodeData[map[string]json.RawMessage](t, env)
			assert.JSONEq(t, string(tc.lookup.info), string(got["info"]))
		})
	}
}

func TestToolHandler_Time(t *testing.T) {
	h := NewToolHandler(&stubLookuper{})
	h.now = func() time.Time { return testTime }

	_, env := call{method: http.MethodGet, pattern: "/base/time", target: "/base/time"}.do(t, h.Time)

	got := decodeData[struct {
		Timestamp int64  `json:"timestamp"`
		Time      string `json:"time"`
	}](t, env)
	assert.Equal(t, testTime.Unix(), got.Timestamp)
	assert.Equal(t, "2024-03-01T12:00:00Z", got.Time)
}

func TestSystemHandler(t *testing.T) {
	pages, err := web.NewRenderer()
	require.NoError(t, err)
	h := NewSystemHandler(pages)

	t.Run("hello echoes uri", func(t *testing.T) {
		_, env := call{method: http.MethodGet, pattern: "/hello", target: "/hello?x=1"}.do(t, h.Hello)
		got := decodeData[map[string]string](t, env)
		assert.Equal(t, map[string]string{"hello": "world", "uri": "/hello?x=1"}, got)
	})

	t.Run("health is plain text", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("page renders html", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Page(web.PageAbout)(rec, httptest.NewRequest(http.MethodGet, "/about", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "<html")
	})

	t.Run("unknown page is internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Page("missing")(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
