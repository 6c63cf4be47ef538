package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireReleaseTracksActiveCount(t *testing.T) {
	g := New()
	require.NoError(t, g.Acquire(context.Background(), CategoryNetworkScanner))
	assert.Equal(t, 1, g.ActiveCount(CategoryNetworkScanner))
	g.Release(CategoryNetworkScanner)
	assert.Equal(t, 0, g.ActiveCount(CategoryNetworkScanner))
}

func TestPasswordCrackerCategoryIsExclusive(t *testing.T) {
	g := New()
	require.NoError(t, g.Acquire(context.Background(), CategoryPasswordCrack))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := g.Acquire(ctx, CategoryPasswordCrack)
	assert.Error(t, err, "a second acquire must block because the category limit is 1")
}

func TestUnknownCategoryFallsBackToDefaultLimit(t *testing.T) {
	g := New()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Acquire(context.Background(), "some_unlisted_category"))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := g.Acquire(ctx, "some_unlisted_category")
	assert.Error(t, err)
}

func TestNewWithLimitsOverridesDefault(t *testing.T) {
	g := NewWithLimits(map[string]int64{CategoryWebScanner: 1})
	require.NoError(t, g.Acquire(context.Background(), CategoryWebScanner))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, g.Acquire(ctx, CategoryWebScanner))
}
