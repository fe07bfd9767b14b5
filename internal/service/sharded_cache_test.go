package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		ttl        time.Duration
		numShards  int
		wantShards int
	}{
		{
			name:       "default shards when zero",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  0,
			wantShards: 16,
		},
		{
			name:       "default shards when negative",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  -1,
			wantShards: 16,
		},
		{
			name:       "rounds up to power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  3,
			wantShards: 4,
		},
		{
			name:       "exact power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  8,
			wantShards: 8,
		},
		{
			name:       "rounds 5 to 8",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  5,
			wantShards: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(tt.capacity, tt.ttl, tt.numShards)
			defer cache.Stop()

			assert.NotNil(t, cache)
			assert.Equal(t, tt.wantShards, cache.numShards)
			assert.Equal(t, uint32(tt.wantShards-1), cache.shardMask)
			assert.Len(t, cache.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{
			name: "picking key",
			key:  "picking:2024-07-07",
		},
		{
			name: "packing key",
			key:  "packing:2024-07-07",
		},
		{
			name: "empty date",
			key:  "picking:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(100, time.Minute, 4)
			defer cache.Stop()

			// Initially should miss
			_, found := cache.Get(tt.key)
			assert.False(t, found)

			cache.Set(tt.key, report(42))

			result, found := cache.Get(tt.key)
			assert.True(t, found)
			assert.Equal(t, 42, result.PickingItems[0].Quantity)
		})
	}
}

func TestShardedCache_Invalidate(t *testing.T) {
	tests := []struct {
		name          string
		keys          []string
		invalidateKey string
	}{
		{
			name:          "invalidate existing key",
			keys:          []string{"picking:2024-07-01", "picking:2024-07-02", "picking:2024-07-03"},
			invalidateKey: "picking:2024-07-02",
		},
		{
			name:          "invalidate non-existing key",
			keys:          []string{"picking:2024-07-01", "picking:2024-07-03"},
			invalidateKey: "picking:2024-07-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(100, time.Minute, 4)
			defer cache.Stop()

			// Set initial values
			for i, key := range tt.keys {
				cache.Set(key, report(i))
			}

			// Invalidate
			cache.Invalidate(tt.invalidateKey)

			// Check invalidated key is gone
			_, found := cache.Get(tt.invalidateKey)
			assert.False(t, found)

			// Other keys should still exist
			for _, key := range tt.keys {
				if key != tt.invalidateKey {
					_, found := cache.Get(key)
					assert.True(t, found)
				}
			}
		})
	}
}

func TestShardedCache_Clear(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Add some values
	for i := 0; i < 10; i++ {
		cache.Set(fmt.Sprintf("picking:2024-07-%02d", i+1), report(i))
	}

	// Verify they exist
	for i := 0; i < 10; i++ {
		_, found := cache.Get(fmt.Sprintf("picking:2024-07-%02d", i+1))
		assert.True(t, found)
	}

	// Clear
	cache.Clear()

	// All should be gone
	for i := 0; i < 10; i++ {
		_, found := cache.Get(fmt.Sprintf("picking:2024-07-%02d", i+1))
		assert.False(t, found)
	}
}

func TestShardedCache_Metrics(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Set some values
	for i := 0; i < 5; i++ {
		cache.Set(fmt.Sprintf("picking:2024-07-%02d", i+1), report(i))
	}

	// Generate hits
	for i := 0; i < 5; i++ {
		cache.Get(fmt.Sprintf("picking:2024-07-%02d", i+1))
	}

	// Generate misses
	for i := 0; i < 5; i++ {
		cache.Get(fmt.Sprintf("packing:2024-08-%02d", i+1))
	}

	metrics := cache.Metrics()
	assert.Equal(t, int64(5), metrics.Hits)
	assert.Equal(t, int64(5), metrics.Misses)
}

func TestShardedCache_ShardDistribution(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Add values that should be distributed across shards
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("picking:key-%d", i), report(i))
	}

	// Verify all can be retrieved
	for i := 0; i < 100; i++ {
		result, found := cache.Get(fmt.Sprintf("picking:key-%d", i))
		assert.True(t, found)
		assert.Equal(t, i, result.PickingItems[0].Quantity)
	}
}
