package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/mocks"
	"github.com/zaishu/zaishu-api/internal/service/auth"
)

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		claims      *auth.Claims
		validateErr error
		wantCode    int
		wantStatus  int
		wantCalled  bool
	}{
		{name: "missing header", header: "", wantCode: 401, wantStatus: http.StatusOK},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantCode: 402, wantStatus: http.StatusOK},
		{name: "bearer without token", header: "Bearer ", wantCode: 402, wantStatus: http.StatusOK},
		{name: "invalid token", header: "Bearer garbage", validateErr: auth.ErrInvalidToken, wantCode: 402, wantStatus: http.StatusOK},
		{name: "expired token", header: "Bearer old", validateErr: auth.ErrExpiredToken, wantCode: 403, wantStatus: http.StatusOK},
		{name: "validator failure", header: "Bearer tok", validateErr: errors.New("keystore offline"), wantCode: 500, wantStatus: http.StatusInternalServerError},
		{name: "valid token", header: "Bearer good", claims: &auth.Claims{UserID: 42}, wantStatus: http.StatusOK, wantCalled: true},
		{name: "lowercase scheme", header: "bearer good", claims: &auth.Claims{UserID: 42}, wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			jwt := &mocks.MockJWTService{Claims: tt.claims, ValidateErr: tt.validateErr}

			calls := 0
			var gotCaller int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				gotCaller, _ = GetCallerID(r)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
			})

			req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(jwt).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

			if !tt.wantCalled {
				assert.Equal(t, 0, calls, "handler must not run")
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				assert.Nil(t, env.Data)
				return
			}
			assert.Equal(t, 1, calls)
			assert.Equal(t, int64(42), gotCaller)
			assert.Nil(t, env.Error)
		})
	}
}

func TestAuthenticate_PassesTokenToValidator(t *testing.T) {
	t.Parallel()
	jwt := &mocks.MockJWTService{Claims: &auth.Claims{UserID: 1}}
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	NewAuthMiddleware(jwt).Authenticate(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"abc.def.ghi"}, jwt.ValidateCalls)
}

func TestGetCallerID_Unauthenticated(t *testing.T) {
	t.Parallel()
	_, ok := GetCallerID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}
