package lockclient

import (
	"net"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/SystemBuilders/ringlist/internal/cache"
	"github.com/SystemBuilders/ringlist/internal/lockservice"
	"github.com/SystemBuilders/ringlist/internal/routing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, size int) (*SimpleClient, *lockservice.SimpleLockService) {
	t.Helper()
	log := zerolog.Nop()
	ls := lockservice.NewSimpleLockService(log)
	srv := httptest.NewServer(routing.SetupRouting(ls, mux.NewRouter()))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	lru, err := cache.NewLRUCache(size, log)
	require.NoError(t, err)
	return NewSimpleClient(lockservice.NewSimpleConfig(host, port), lru, log), ls
}

func TestAcquireandRelease(t *testing.T) {
	t.Run("acquire test release test", func(t *testing.T) {
		sc, _ := newTestClient(t, 5)

		require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("test", "owner")))
		require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("test1", "owner")))
		require.NoError(t, sc.Release(lockservice.NewSimpleDescriptor("test", "owner")))
		require.NoError(t, sc.Release(lockservice.NewSimpleDescriptor("test1", "owner")))
	})

	t.Run("acquire test, acquire test, release test", func(t *testing.T) {
		sc, _ := newTestClient(t, 5)
		d := lockservice.NewSimpleDescriptor("test", "owner")

		require.NoError(t, sc.Acquire(d))
		assert.Equal(t, lockservice.ErrFileAcquired, sc.Acquire(d))
		require.NoError(t, sc.Release(d))
	})

	t.Run("acquire test, trying to release test as another entity should fail", func(t *testing.T) {
		sc, _ := newTestClient(t, 1)

		require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("test", "owner1")))
		assert.Equal(t, lockservice.ErrUnauthorizedAccess, sc.Release(lockservice.NewSimpleDescriptor("test", "owner2")))

		// The cache holds a single lock, so test is evicted locally
		// but stays acquired on the server.
		require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("test2", "owner1")))
		assert.Equal(t, lockservice.ErrFileAcquired, sc.Acquire(lockservice.NewSimpleDescriptor("test", "owner1")))

		require.NoError(t, sc.Release(lockservice.NewSimpleDescriptor("test", "owner1")))
		require.NoError(t, sc.Release(lockservice.NewSimpleDescriptor("test2", "owner1")))
	})
}

func TestAcquireReplacesStaleCacheEntry(t *testing.T) {
	sc, ls := newTestClient(t, 2)

	// The cache still remembers f for an owner that lost it on the server.
	require.NoError(t, sc.cache.PutElement("f", "previous"))

	require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("f", "owner")))
	cached, err := sc.cache.GetElement("f")
	require.NoError(t, err)
	assert.Equal(t, "owner", cached)
	assert.Equal(t, 1, sc.cache.Size())

	owner, ok := ls.CheckAcquired(lockservice.NewSimpleDescriptor("f", ""))
	require.True(t, ok)
	assert.Equal(t, "owner", owner)
}

func TestCheckAcquired(t *testing.T) {
	sc, _ := newTestClient(t, 2)

	_, err := sc.CheckAcquired(lockservice.NewSimpleDescriptor("f", ""))
	assert.Equal(t, lockservice.ErrCheckAcquireFailure, err)

	require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("f", "")))
	owner, err := sc.CheckAcquired(lockservice.NewSimpleDescriptor("f", ""))
	require.NoError(t, err)
	assert.Equal(t, sc.Session().ClientID().String(), owner)
}

func TestPounce(t *testing.T) {
	sc, ls := newTestClient(t, 2)
	require.NoError(t, sc.Acquire(lockservice.NewSimpleDescriptor("f", "holder")))

	slow, err := sc.Pounce(lockservice.NewSimpleDescriptor("f", "slow"), 9)
	require.NoError(t, err)
	_, err = sc.Pounce(lockservice.NewSimpleDescriptor("f", "fast"), 1)
	require.NoError(t, err)

	pouncers, err := sc.Pouncers(lockservice.NewSimpleDescriptor("f", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"fast", "slow"}, pouncers)

	require.NoError(t, sc.Withdraw(lockservice.NewSimpleDescriptor("f", ""), slow))
	assert.Equal(t, lockservice.ErrPouncerNotFound, sc.Withdraw(lockservice.NewSimpleDescriptor("f", ""), slow))

	require.NoError(t, sc.Release(lockservice.NewSimpleDescriptor("f", "holder")))
	owner, ok := ls.CheckAcquired(lockservice.NewSimpleDescriptor("f", ""))
	require.True(t, ok)
	assert.Equal(t, "fast", owner)

	pouncers, err = sc.Pouncers(lockservice.NewSimpleDescriptor("f", ""))
	require.NoError(t, err)
	assert.Empty(t, pouncers)
}

func TestUnreachableServer(t *testing.T) {
	lru, err := cache.NewLRUCache(1, zerolog.Nop())
	require.NoError(t, err)
	sc := NewSimpleClient(lockservice.NewSimpleConfig("127.0.0.1", "1"), lru, zerolog.Nop())

	assert.Error(t, sc.Acquire(lockservice.NewSimpleDescriptor("f", "o")))
	_, err = lru.GetElement("f")
	assert.Equal(t, cache.ErrElementDoesntExist, err)
}
