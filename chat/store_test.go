package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, limit int) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, limit)
}

func stores(t *testing.T, limit int) map[string]ConversationStore {
	return map[string]ConversationStore{
		"memory": NewMemoryStore(limit),
		"redis":  newRedisStore(t, limit),
	}
}

func entry(i int) Entry {
	return Entry{Role: RoleUser, Content: fmt.Sprintf("message %d", i), At: time.Unix(int64(i), 0).UTC()}
}

func TestStoreSlidingWindow(t *testing.T) {
	for name, store := range stores(t, 3) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 1; i <= 5; i++ {
				require.NoError(t, store.Add(ctx, "s1", entry(i)))
			}

			got, err := store.List(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, []Entry{entry(3), entry(4), entry(5)}, got)
		})
	}
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Add(ctx, "a", entry(1)))
			require.NoError(t, store.Add(ctx, "b", entry(2)))

			a, err := store.List(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, []Entry{entry(1)}, a)

			require.NoError(t, store.Clear(ctx, "a"))
			a, err = store.List(ctx, "a")
			require.NoError(t, err)
			assert.Empty(t, a)

			b, err := store.List(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, []Entry{entry(2)}, b)

			missing, err := store.List(ctx, "nobody")
			require.NoError(t, err)
			assert.Empty(t, missing)
		})
	}
}

func TestStoreCompactsLongContent(t *testing.T) {
	long := strings.Repeat("Flight AI101 departs at noon.\n", 300)

	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Add(ctx, "s1", Entry{Role: RoleAssistant, Content: long}))

			got, err := store.List(ctx, "s1")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Less(t, len(got[0].Content), len(long))
			assert.Contains(t, got[0].Content, "[truncated:")
			assert.True(t, strings.HasPrefix(got[0].Content, "Flight AI101 departs at noon.\n"))
		})
	}
}

func TestStoreCompactKeepsRunesWhole(t *testing.T) {
	// two ASCII bytes put the cut in the middle of a 3-byte rune
	long := "xy" + strings.Repeat("航", maxContentLen)

	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Add(ctx, "s1", Entry{Role: RoleAssistant, Content: long}))

			got, err := store.List(ctx, "s1")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.True(t, utf8.ValidString(got[0].Content))
			assert.Contains(t, got[0].Content, "[truncated:")
		})
	}
}

func TestMemoryStoreListIsCopy(t *testing.T) {
	store := NewMemoryStore(5)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, "s1", entry(1)))

	got, err := store.List(ctx, "s1")
	require.NoError(t, err)
	got[0].Content = "changed"

	again, err := store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "message 1", again[0].Content)
}

func TestMemoryStoreConcurrentAdd(t *testing.T) {
	store := NewMemoryStore(50)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Add(ctx, "s1", entry(i))
		}(i)
	}
	wg.Wait()

	got, err := store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got, 50)
}

func TestNewStoresDefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, NewMemoryStore(0).maxMessages)
	assert.Equal(t, DefaultHistoryLimit, NewRedisStore(nil, -1).limit)
}
