package api

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/mocks"
)

func TestAccountHandler_Register(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		wantErr int
	}{
		{name: "valid", form: url.Values{"account": {"carol"}, "password": {"password123"}}},
		{name: "duplicate account", form: url.Values{"account": {"alice"}, "password": {"password123"}}, wantErr: shared.CodeConflict},
		{name: "short password", form: url.Values{"account": {"carol"}, "password": {"short"}}, wantErr: shared.CodeInvalidParam},
		{name: "missing account", form: url.Values{"password": {"password123"}}, wantErr: shared.CodeInvalidParam},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserStore(domain.User{ID: 1, Account: "alice", HashedPassword: "hashed:x"})
			jwt := &mocks.MockJWTService{Token: "signed-token"}
			h := NewAccountHandler(users, jwt, &mocks.MockPasswordVerifier{})

			rec, env := call{method: http.MethodPost, pattern: "/account/register", target: "/account/register", form: tc.form}.do(t, h.Register)

			if tc.wantErr != 0 {
				requireErrorCode(t, rec, env, tc.wantErr)
				return
			}
			got := decodeData[AuthResponse](t, env)
			assert.Equal(t, "signed-token", got.Token)
			assert.Equal(t, int64(2), got.UserID)
			assert.Equal(t, "carol", got.User.Nickname)
			assert.NotContains(t, rec.Body.String(), "password123")
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	seed := domain.User{ID: 7, Account: "alice", HashedPassword: "hashed:password123"}

	tests := []struct {
		name       string
		form       url.Values
		verifierOK bool
		tokenErr   error
		wantErr    int
		wantStatus int
	}{
		{name: "valid", form: url.Values{"account": {"alice"}, "password": {"password123"}}, verifierOK: true},
		{name: "wrong password", form: url.Values{"account": {"alice"}, "password": {"nope"}}, wantErr: shared.CodeLoginFailed},
		{name: "unknown account", form: url.Values{"account": {"nobody"}, "password": {"password123"}}, verifierOK: true, wantErr: shared.CodeLoginFailed},
		{name: "missing password", form: url.Values{"account": {"alice"}}, wantErr: shared.CodeInvalidParam},
		{
			name:       "token failure is internal",
			form:       url.Values{"account": {"alice"}, "password": {"password123"}},
			verifierOK: true,
			tokenErr:   errors.New("signing failed"),
			wantErr:    shared.CodeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserStore(seed)
			jwt := &mocks.MockJWTService{Token: "signed-token", Err: tc.tokenErr}
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: tc.verifierOK}
			h := NewAccountHandler(users, jwt, verifier)

			rec, env := call{method: http.MethodPost, pattern: "/account/login", target: "/account/login", form: tc.form}.do(t, h.Login)

			wantStatus := tc.wantStatus
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			assert.Equal(t, wantStatus, rec.Code)
			if tc.wantErr != 0 {
				requireErrorCode(t, rec, env, tc.wantErr)
				return
			}
			got := decodeData[AuthResponse](t, env)
			assert.Equal(t, int64(7), got.UserID)
			assert.Equal(t, "signed-token", got.Token)
			assert.Equal(t, "hashed:password123", verifier.CompareCalledWith.HashedPassword)
		})
	}
}
