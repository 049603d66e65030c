package value

import "math/bits"

// This file implements the hash array mapped trie (HAMT) shared by Map and
// Set: a 32-way bitmap-indexed trie over the key's 64-bit Hash(), with a
// collision-node fallback for the (astronomically unlikely but possible)
// case of two keys sharing all 64 hash bits. Map stores (key, val) pairs at
// the leaves; Set reuses the exact same trie storing each key as its own
// value (see hashset.go).

const hBits = 5
const hWidth = 1 << hBits // 32
const hMask = hWidth - 1
const maxShift = 60 // 64 bits / 5-bit chunks, rounded down to the last full chunk

type mapEntry struct {
	key Value
	val Value
}

// trieNode is either *mnode (a bitmap-indexed interior/leaf-bearing node) or
// *collisionNode (a bucket of entries whose hashes are fully exhausted and
// equal).
type trieNode interface {
	assoc(shift uint, hash uint64, key, val Value) (node trieNode, added bool)
	without(shift uint, hash uint64, key Value) (node trieNode, found bool)
	get(shift uint, hash uint64, key Value) (Value, bool)
	each(fn func(key, val Value) bool) bool
}

// mnode is a bitmap-indexed trie node: bit i of bitmap set means slot
// popcount(bitmap & (bit-1)) of entries is occupied, holding either a
// *mapEntry (a leaf pair) or a trieNode (a sub-trie one level deeper).
type mnode struct {
	bitmap  uint32
	entries []interface{}
}

func bitpos(hash uint64, shift uint) uint32 { return uint32(1) << ((hash >> shift) & hMask) }

func popIndex(bitmap, bit uint32) int { return bits.OnesCount32(bitmap & (bit - 1)) }

func (m *mnode) withInserted(bit uint32, idx int, v interface{}) *mnode {
	ne := make([]interface{}, len(m.entries)+1)
	copy(ne, m.entries[:idx])
	ne[idx] = v
	copy(ne[idx+1:], m.entries[idx:])
	return &mnode{bitmap: m.bitmap | bit, entries: ne}
}

func (m *mnode) withReplaced(idx int, v interface{}) *mnode {
	ne := make([]interface{}, len(m.entries))
	copy(ne, m.entries)
	ne[idx] = v
	return &mnode{bitmap: m.bitmap, entries: ne}
}

func (m *mnode) withRemoved(bit uint32, idx int) *mnode {
	ne := make([]interface{}, len(m.entries)-1)
	copy(ne, m.entries[:idx])
	copy(ne[idx:], m.entries[idx+1:])
	return &mnode{bitmap: m.bitmap &^ bit, entries: ne}
}

func mergeLeaves(shift uint, k1, v1 Value, h1 uint64, k2, v2 Value, h2 uint64) trieNode {
	if shift > maxShift {
		return &collisionNode{hash: h1, entries: []*mapEntry{{k1, v1}, {k2, v2}}}
	}
	b1, b2 := bitpos(h1, shift), bitpos(h2, shift)
	if b1 != b2 {
		n := &mnode{}
		n = n.withInserted(b1, popIndex(n.bitmap, b1), &mapEntry{k1, v1})
		n = n.withInserted(b2, popIndex(n.bitmap, b2), &mapEntry{k2, v2})
		return n
	}
	child := mergeLeaves(shift+hBits, k1, v1, h1, k2, v2, h2)
	n := &mnode{}
	n = n.withInserted(b1, 0, child)
	return n
}

func (m *mnode) assoc(shift uint, hash uint64, key, val Value) (trieNode, bool) {
	bit := bitpos(hash, shift)
	idx := popIndex(m.bitmap, bit)
	if m.bitmap&bit == 0 {
		return m.withInserted(bit, idx, &mapEntry{key, val}), true
	}
	switch e := m.entries[idx].(type) {
	case *mapEntry:
		if e.key.Equal(key) {
			return m.withReplaced(idx, &mapEntry{key, val}), false
		}
		child := mergeLeaves(shift+hBits, e.key, e.val, e.key.Hash(), key, val, hash)
		return m.withReplaced(idx, child), true
	case trieNode:
		child, added := e.assoc(shift+hBits, hash, key, val)
		return m.withReplaced(idx, child), added
	default:
		panic("value: corrupt trie node")
	}
}

func (m *mnode) without(shift uint, hash uint64, key Value) (trieNode, bool) {
	bit := bitpos(hash, shift)
	if m.bitmap&bit == 0 {
		return m, false
	}
	idx := popIndex(m.bitmap, bit)
	switch e := m.entries[idx].(type) {
	case *mapEntry:
		if !e.key.Equal(key) {
			return m, false
		}
		if len(m.entries) == 1 {
			return nil, true
		}
		return m.withRemoved(bit, idx), true
	case trieNode:
		child, found := e.without(shift+hBits, hash, key)
		if !found {
			return m, false
		}
		if child == nil {
			if len(m.entries) == 1 {
				return nil, true
			}
			return m.withRemoved(bit, idx), true
		}
		return m.withReplaced(idx, child), true
	default:
		panic("value: corrupt trie node")
	}
}

func (m *mnode) get(shift uint, hash uint64, key Value) (Value, bool) {
	bit := bitpos(hash, shift)
	if m.bitmap&bit == 0 {
		return nil, false
	}
	idx := popIndex(m.bitmap, bit)
	switch e := m.entries[idx].(type) {
	case *mapEntry:
		if e.key.Equal(key) {
			return e.val, true
		}
		return nil, false
	case trieNode:
		return e.get(shift+hBits, hash, key)
	default:
		panic("value: corrupt trie node")
	}
}

func (m *mnode) each(fn func(key, val Value) bool) bool {
	for _, e := range m.entries {
		switch v := e.(type) {
		case *mapEntry:
			if !fn(v.key, v.val) {
				return false
			}
		case trieNode:
			if !v.each(fn) {
				return false
			}
		}
	}
	return true
}

// collisionNode holds every entry whose hash is identical through all 64
// bits of precision (shift has exceeded maxShift). A linear scan over this
// bucket is the correct worst case for a hash trie.
type collisionNode struct {
	hash    uint64
	entries []*mapEntry
}

func (c *collisionNode) assoc(shift uint, hash uint64, key, val Value) (trieNode, bool) {
	for i, e := range c.entries {
		if e.key.Equal(key) {
			ne := make([]*mapEntry, len(c.entries))
			copy(ne, c.entries)
			ne[i] = &mapEntry{key, val}
			return &collisionNode{hash: c.hash, entries: ne}, false
		}
	}
	ne := make([]*mapEntry, len(c.entries)+1)
	copy(ne, c.entries)
	ne[len(c.entries)] = &mapEntry{key, val}
	return &collisionNode{hash: c.hash, entries: ne}, true
}

func (c *collisionNode) without(shift uint, hash uint64, key Value) (trieNode, bool) {
	for i, e := range c.entries {
		if e.key.Equal(key) {
			if len(c.entries) == 1 {
				return nil, true
			}
			ne := make([]*mapEntry, 0, len(c.entries)-1)
			ne = append(ne, c.entries[:i]...)
			ne = append(ne, c.entries[i+1:]...)
			return &collisionNode{hash: c.hash, entries: ne}, true
		}
	}
	return c, false
}

func (c *collisionNode) get(shift uint, hash uint64, key Value) (Value, bool) {
	for _, e := range c.entries {
		if e.key.Equal(key) {
			return e.val, true
		}
	}
	return nil, false
}

func (c *collisionNode) each(fn func(key, val Value) bool) bool {
	for _, e := range c.entries {
		if !fn(e.key, e.val) {
			return false
		}
	}
	return true
}
