package coll

import "github.com/roach88/clonecap"

// Coverage returns the coverage table contributed by this package. All
// rows belong to the allocation gate; rebuild clones are any-speed by
// definition.
func Coverage() []clonecap.Entry {
	return []clonecap.Entry{
		{Family: "slice", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentSlice"},
		{Family: "slice", Semantics: "mixed", Tier: "tier-generic", Gate: "allocation", Constructor: "MixedSlice"},
		{Family: "byte sequence", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentBytes"},
		{Family: "owned string", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentOwnedString"},
		{Family: "hash map", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentMap"},
		{Family: "hash set", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentSet"},
		{Family: "deque", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentDeque"},
		{Family: "ordered tree", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentBTree"},
		{Family: "ordered tree", Semantics: "mixed", Tier: "constant-or-slower", Gate: "allocation", Constructor: "MixedBTree"},
		{Family: "linked list", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentList"},
		{Family: "binary heap", Semantics: "independent", Tier: "any-speed", Gate: "allocation", Constructor: "IndependentHeap"},
	}
}
