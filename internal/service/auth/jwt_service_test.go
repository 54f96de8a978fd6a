package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaishu/zaishu-api/internal/config"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()
	lifetime := 60 * time.Minute
	svc := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))

	token, err := svc.GenerateToken(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()
	svc := newHMACJWTService(testSecret, time.Hour, fixedClock(fixedTime))

	a, err := svc.GenerateToken(context.Background(), 1)
	require.NoError(t, err)
	b, err := svc.GenerateToken(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()
	lifetime := 60 * time.Minute

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))
				token, _ := svc.GenerateToken(context.Background(), 7)
				return svc, token
			},
		},
		{
			name: "within clock skew after expiry",
			setupFunc: func() (JWTService, string) {
				gen := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))
				token, _ := gen.GenerateToken(context.Background(), 7)
				return newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime.Add(lifetime+time.Minute))), token
			},
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				gen := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))
				token, _ := gen.GenerateToken(context.Background(), 7)
				return newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime.Add(lifetime+time.Hour))), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func() (JWTService, string) {
				gen := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))
				token, _ := gen.GenerateToken(context.Background(), 7)
				return newHMACJWTService(wrongSecret, lifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				return newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime)), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unsigned token",
			setupFunc: func() (JWTService, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwtCustomClaims{
					UserID: 7,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				})
				signed, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				return newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime)), signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing user id",
			setupFunc: func() (JWTService, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtCustomClaims{
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				})
				signed, _ := token.SignedString([]byte(testSecret))
				return newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime)), signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "no expiry",
			setupFunc: func() (JWTService, string) {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtCustomClaims{UserID: 7})
				signed, _ := token.SignedString([]byte(testSecret))
				return newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime)), signed
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), claims.UserID)
		})
	}
}
