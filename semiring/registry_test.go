package semiring_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/semigroups/semiring"
)

// TestRegistrySharesInstances ensures one instance per canonical descriptor.
func TestRegistrySharesInstances(t *testing.T) {
	reg := semiring.NewRegistry()

	a, err := reg.Acquire("natural(3,2)")
	require.NoError(t, err)
	b, err := reg.Acquire("natural( 3, 2 )")
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 2, reg.Refs("natural(3,2)"))

	c, err := reg.Acquire("natural(3,1)")
	require.NoError(t, err)
	require.NotSame(t, a, c)
	require.Equal(t, 2, reg.Len())
}

func TestRegistryReleaseEvicts(t *testing.T) {
	reg := semiring.NewRegistry()
	sr, err := reg.Acquire("max-plus")
	require.NoError(t, err)
	_, err = reg.Acquire("max-plus")
	require.NoError(t, err)

	require.NoError(t, reg.Release(sr))
	require.Equal(t, 1, reg.Len())
	require.NoError(t, reg.Release(sr))
	require.Equal(t, 0, reg.Len())
	require.Equal(t, 0, reg.Refs("max-plus"))

	require.ErrorIs(t, reg.Release(sr), semiring.ErrNotRegistered)

	// a structurally equal but foreign instance is not the registered one
	_, err = reg.Acquire("max-plus")
	require.NoError(t, err)
	require.ErrorIs(t, reg.Release(semiring.NewMaxPlus()), semiring.ErrNotRegistered)
	require.Equal(t, 1, reg.Refs("max-plus"), "a foreign release must not drop a reference")
	require.Equal(t, 1, reg.Len())
	require.ErrorIs(t, reg.Release(nil), semiring.ErrNilSemiring)
}

func TestRegistryAcquireError(t *testing.T) {
	reg := semiring.NewRegistry()
	_, err := reg.Acquire("prime-field(6)")
	require.ErrorIs(t, err, semiring.ErrNotPrime)
	require.Equal(t, 0, reg.Len())
	require.Equal(t, 0, reg.Refs("not a descriptor"))
}

func TestRegistryLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := semiring.NewRegistry(semiring.WithLogger(zap.New(core)), semiring.WithLogger(nil))

	sr, err := reg.Acquire("boolean")
	require.NoError(t, err)
	require.NoError(t, reg.Release(sr))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "semiring created", entries[0].Message)
	require.Equal(t, "semiring evicted", entries[1].Message)
	require.Equal(t, "boolean", entries[1].ContextMap()["semiring"])
}

func TestRegistryConcurrentAcquire(t *testing.T) {
	reg := semiring.NewRegistry()
	const workers = 16

	got := make([]semiring.Semiring, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sr, err := reg.Acquire("prime-field(5)")
			if err == nil {
				got[i] = sr
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, got[0], got[i])
	}
	require.Equal(t, workers, reg.Refs("prime-field(5)"))
}
