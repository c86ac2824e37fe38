package libct

import (
	"hash/maphash"
	"sync"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/dgraph-io/badger/v3"
)

// NewCanonicSet returns a new, empty CanonicSet of the given kind.
func NewCanonicSet(mode colortrade.DedupeMode) colortrade.CanonicSet {
	switch mode {
	case colortrade.DedupeLSM:
		return NewLSMSet()
	default:
		return NewHashSet(HashSetOpts{})
	}
}

const DefaultPoolSz = 32 * 1024

type HashSetOpts struct {
	PoolSz int // 0 denotes DefaultPoolSz (32k)
}

// hashSet is an open-probe table of key hashes; keys are copied into a pooled backing buffer.
type hashSet struct {
	mu        sync.Mutex
	seed      maphash.Seed
	hashMap   map[uint64]colortrade.Key
	bufPool   []byte
	bufPoolSz int
	count     int
	opts      HashSetOpts
}

// NewHashSet returns a memory resident CanonicSet.
func NewHashSet(opts HashSetOpts) colortrade.CanonicSet {
	if opts.PoolSz <= 0 {
		opts.PoolSz = DefaultPoolSz
	}
	return &hashSet{
		seed:    maphash.MakeSeed(),
		hashMap: make(map[uint64]colortrade.Key),
		opts:    opts,
	}
}

func (set *hashSet) TryAdd(key colortrade.Key) bool {
	hash := maphash.String(set.seed, string(key))

	set.mu.Lock()
	defer set.mu.Unlock()

	existing, found := set.hashMap[hash]
	for found {
		if existing == key {
			return false
		}
		hash++
		existing, found = set.hashMap[hash]
	}

	// If we've gotten here, it means this is a new entry.
	// Place a copy of the key in our backing buf; if we run out of space in our pool, start a new pool.
	pos := set.bufPoolSz
	itemLen := len(key)
	if pos+itemLen > cap(set.bufPool) {
		allocSz := max(set.opts.PoolSz, itemLen)
		set.bufPool = make([]byte, allocSz)
		set.bufPoolSz = 0
		pos = 0
	}
	backed := append(set.bufPool[pos:pos], key...)
	set.bufPoolSz += itemLen

	set.hashMap[hash] = colortrade.Key(backed)
	set.count++
	return true
}

func (set *hashSet) Len() int {
	set.mu.Lock()
	defer set.mu.Unlock()
	return set.count
}

func (set *hashSet) Close() {
	set.mu.Lock()
	defer set.mu.Unlock()
	set.bufPool = nil
	set.bufPoolSz = 0
	set.count = 0
	for k := range set.hashMap {
		delete(set.hashMap, k)
	}
}

// lsmSet is a CanonicSet backed by an in-memory badger db, opened on first use.
type lsmSet struct {
	mu    sync.Mutex
	db    *badger.DB
	count int
}

// NewLSMSet returns a CanonicSet held in an in-memory LSM tree.
func NewLSMSet() colortrade.CanonicSet {
	return &lsmSet{}
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) TryAdd(key colortrade.Key) bool {
	set.mu.Lock()
	defer set.mu.Unlock()

	set.autoOpen()

	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		k := append([]byte{'k'}, key...) // badger rejects empty keys
		_, err := txn.Get(k)
		if err == nil {
			return nil // already in the db
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(k, nil)
	})
	if err != nil {
		panic(err)
	}

	if added {
		set.count++
	}
	return added
}

func (set *lsmSet) Len() int {
	set.mu.Lock()
	defer set.mu.Unlock()
	return set.count
}

func (set *lsmSet) Close() {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
	set.count = 0
}
