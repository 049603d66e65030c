package value

// hashMix applies a murmur3-style 64-bit finalizer so that small, similar
// seeds (kind tags, short strings) spread across the bitmap-trie index space
// used by Map and Set. Grounded on the teacher's preference for
// explicit bit-level arithmetic over library calls for anything on the hot
// path (vm/mem.go's cell packing/unpacking).
func hashMix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// hashCombine folds h2 into h1, order-sensitive; used for ordered
// collections (List, Vector, Cons) where element order is part of identity.
func hashCombine(h1, h2 uint64) uint64 {
	return hashMix(h1*31 + h2)
}

// hashUnordered folds h2 into h1 in an order-insensitive way (plain
// addition); no finalizer runs after the elements are folded in.
func hashUnordered(h1, h2 uint64) uint64 {
	return h1 + h2
}

func hashString(s string) uint64 {
	// FNV-1a. Callers fold in the Kind discriminator: Symbol and Keyword
	// through hashCombine (which applies hashMix), String and Regex by
	// xoring the raw FNV value with a mixed Kind seed.
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
