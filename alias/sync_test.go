package alias

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSyncRegistry_Contract runs the basic operation set through the locked variant.
func TestSyncRegistry_Contract(t *testing.T) {
	t.Parallel()

	s := NewSync(WithStaleBucketPruning())
	require.True(t, s.reg.pruneStale)

	require.NoError(t, s.Alias("X", "Y"))
	require.NoError(t, s.AliasReverse("Z", "Y"))
	assert.ErrorIs(t, s.Alias("Q", "Q"), ErrInvalidOperation)

	got, err := s.Resolve("Z")
	require.NoError(t, err)
	assert.Equal(t, "X", got)

	assert.True(t, s.IsAlias("Y"))
	assert.True(t, s.HasAbstract("X"))
	assert.Equal(t, []string{"Z"}, s.AllAliases("Y"))
	assert.Equal(t, map[string]string{"Y": "X", "Z": "Y"}, s.AliasMap())

	s.RemoveAbstractAlias("Z")
	assert.False(t, s.IsAlias("Z"))

	require.NoError(t, s.RegisterAll(Entry{Abstract: "A", Alias: "B"}, Entry{Abstract: "B", Alias: "A"}))
	_, err = s.Resolve("A")
	assert.ErrorIs(t, err, ErrCircularReference)

	s.Clear()
	assert.Empty(t, s.AliasMap())
}

// TestSyncRegistry_ConcurrentUse exercises concurrent writers and readers (run with -race).
func TestSyncRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s := NewSync()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				a := fmt.Sprintf("w%d-%d", w, i)
				assert.NoError(t, s.Alias("Root", a))
				_, _ = s.Resolve(a)
				_ = s.AllAliases("Root")
				if i%5 == 0 {
					s.RemoveAbstractAlias(a)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, s.AliasMap(), workers*(perWorker-perWorker/5))
	assert.Len(t, s.AllAliases("Root"), workers*(perWorker-perWorker/5))
}
