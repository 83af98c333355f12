package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	uid uuid.UUID
	exp time.Time
}

func (f fakeClaims) GetUserID() uuid.UUID     { return f.uid }
func (f fakeClaims) GetSessionID() *uuid.UUID { return nil }
func (f fakeClaims) IsExpired() bool          { return time.Now().After(f.exp) }

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithRequestMeta(ctx, nil)
	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "req-1", ClientIP: "10.0.0.1"})
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	meta, ok := RequestMetaFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", meta.ClientIP)
}

func TestClaims(t *testing.T) {
	ctx := context.Background()
	_, ok := UserIDFromContext(ctx)
	assert.False(t, ok)
	_, ok = ClaimsFromContext(ctx)
	assert.False(t, ok)

	uid := uuid.New()
	ctx = WithClaims(ctx, fakeClaims{uid: uid, exp: time.Now().Add(time.Hour)})
	got, ok := UserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uid, got)

	expired := WithClaims(context.Background(), fakeClaims{uid: uid, exp: time.Now().Add(-time.Minute)})
	_, ok = UserIDFromContext(expired)
	assert.False(t, ok)
	_, ok = ClaimsFromContext(expired)
	assert.True(t, ok)
}

func TestOrgID(t *testing.T) {
	_, ok := OrgIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = OrgIDFromContext(WithOrgID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	id := uuid.New()
	got, ok := OrgIDFromContext(WithOrgID(context.Background(), id))
	require.True(t, ok)
	assert.Equal(t, id, got)
}
