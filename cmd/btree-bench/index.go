package main

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/bpol9/b-tree-with-delete/btree"
)

// index is the minimal surface the workloads exercise, so the in-memory
// B-tree and the Pebble baseline can be benchmarked side by side.
type index interface {
	Insert(key int64) error
	Contains(key int64) (bool, error)
	Delete(key int64) error
	Close() error
}

type btreeIndex struct {
	tree *btree.Tree[int64]
}

func newBTreeIndex(branchFactor int) (*btreeIndex, error) {
	t, err := btree.New[int64](branchFactor)
	if err != nil {
		return nil, err
	}
	return &btreeIndex{tree: t}, nil
}

func (b *btreeIndex) Insert(key int64) error {
	b.tree.Insert(key)
	return nil
}

func (b *btreeIndex) Contains(key int64) (bool, error) {
	return b.tree.Search(key), nil
}

func (b *btreeIndex) Delete(key int64) error {
	b.tree.Delete(key)
	return nil
}

func (b *btreeIndex) Close() error { return nil }

// pebbleIndex wraps Pebble (CockroachDB's LSM storage engine) behind the
// same interface, as a reference point for the latency numbers.
type pebbleIndex struct {
	db *pebble.DB
}

func openPebbleIndex(dir string) (*pebbleIndex, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("pebble: open: %w", err)
	}
	return &pebbleIndex{db: db}, nil
}

func (p *pebbleIndex) Insert(key int64) error {
	return p.db.Set(encodeKey(key), []byte("x"), pebble.NoSync)
}

func (p *pebbleIndex) Contains(key int64) (bool, error) {
	_, closer, err := p.db.Get(encodeKey(key))
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pebble: get: %w", err)
	}
	closer.Close()
	return true, nil
}

func (p *pebbleIndex) Delete(key int64) error {
	return p.db.Delete(encodeKey(key), pebble.NoSync)
}

func (p *pebbleIndex) Close() error {
	return p.db.Close()
}

// encodeKey encodes an int64 key big-endian so byte order matches key order.
func encodeKey(key int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(key))
	return buf
}
