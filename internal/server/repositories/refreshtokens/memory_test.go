package refreshtokens

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRepository()
	r.now = func() time.Time { return now }

	require.NoError(t, r.Create(ctx, "u1", "hash-1", time.Hour))

	require.NoError(t, r.Delete(ctx, "hash-1"))
	_, err := r.Consume(ctx, "hash-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// deleting twice is fine
	assert.NoError(t, r.Delete(ctx, "hash-1"))
}

func TestMemoryRepository_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRepository()
	r.now = func() time.Time { return now }
	require.NoError(t, r.Create(ctx, "u1", "hash-1", time.Hour))

	tok, err := r.Consume(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", tok.UserID)
	assert.Equal(t, now.Add(time.Hour), tok.Expires)

	_, err = r.Consume(ctx, "hash-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
