package isbn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/config"
)

func TestClientLookup(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"活着","author":["余华"]}`))
	}))
	defer srv.Close()

	c := NewClient(config.ISBNConfig{BaseURL: srv.URL + "/v2/book/isbn/", TimeoutSeconds: 2})
	body, err := c.Lookup(context.Background(), "9787506365437")

	require.NoError(t, err)
	assert.Equal(t, "/v2/book/isbn/9787506365437", gotPath)
	assert.JSONEq(t, `{"title":"活着","author":["余华"]}`, string(body))
}

func TestClientLookup_PassesThroughUpstreamErrorsAsJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"msg":"book_not_found","code":6000}`))
	}))
	defer srv.Close()

	body, err := NewClientWithHTTP(srv.URL, srv.Client()).Lookup(context.Background(), "0000000000")

	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"book_not_found","code":6000}`, string(body))
}

func TestClientLookup_Failures(t *testing.T) {
	t.Parallel()

	t.Run("non-JSON body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer srv.Close()

		_, err := NewClientWithHTTP(srv.URL, srv.Client()).Lookup(context.Background(), "9787506365437")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		c := NewClientWithHTTP(srv.URL, &http.Client{Timeout: 50 * time.Millisecond})
		_, err := c.Lookup(context.Background(), "9787506365437")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClientWithHTTP(url, &http.Client{Timeout: time.Second}).Lookup(context.Background(), "9787506365437")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("blank isbn", func(t *testing.T) {
		t.Parallel()
		_, err := NewClientWithHTTP("http://unused", http.DefaultClient).Lookup(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrEmptyISBN)
	})
}
