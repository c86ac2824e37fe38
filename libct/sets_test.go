package libct

import (
	"fmt"
	"sync"
	"testing"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/stretchr/testify/assert"
)

func testCanonicSet(t *testing.T, set colortrade.CanonicSet) {
	defer set.Close()

	assert.True(t, set.TryAdd(""), "the empty key (zero vertex coloring) is a valid key")
	assert.False(t, set.TryAdd(""))

	key := colortrade.Key(colortrade.AppendKeyEntry(nil, "a", "red"))
	assert.True(t, set.TryAdd(key))
	assert.False(t, set.TryAdd(key))
	assert.Equal(t, 2, set.Len())

	// concurrent adds of overlapping keys
	var wg sync.WaitGroup
	added := make([]int, 8)
	for w := range added {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if set.TryAdd(colortrade.Key(fmt.Sprintf("k%03d", i))) {
					added[w]++
				}
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for _, n := range added {
		total += n
	}
	assert.Equal(t, 200, total, "each key is added exactly once")
	assert.Equal(t, 202, set.Len())

	set.Close()
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.TryAdd(key), "Close() empties the set")
}

func TestHashSet(t *testing.T) {
	testCanonicSet(t, NewHashSet(HashSetOpts{}))
}

func TestHashSetSmallPool(t *testing.T) {
	// keys larger than the pool get their own allocation
	set := NewHashSet(HashSetOpts{PoolSz: 4})
	defer set.Close()
	for i := 0; i < 50; i++ {
		assert.True(t, set.TryAdd(colortrade.Key(fmt.Sprintf("key-%d", i))))
	}
	for i := 0; i < 50; i++ {
		assert.False(t, set.TryAdd(colortrade.Key(fmt.Sprintf("key-%d", i))))
	}
}

func TestLSMSet(t *testing.T) {
	testCanonicSet(t, NewLSMSet())
}

func TestNewCanonicSet(t *testing.T) {
	testCanonicSet(t, NewCanonicSet(colortrade.DedupeHash))
	testCanonicSet(t, NewCanonicSet(colortrade.DedupeLSM))
}
