package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()

	_, ok := AuthFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithAuth(context.Background(), AuthContext{CallerID: 9})
	ac, ok := AuthFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(9), ac.CallerID)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	a := GetTraceID(SetTraceID(context.Background()))
	b := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
