package coll

import (
	"github.com/google/btree"

	"github.com/roach88/clonecap"
)

// Ordered sets and maps are covered through google/btree's generic B-tree.
// An ordered map is a tree of key/value items with the ordering on the key.

// IndependentBTree derives an independent capability for *btree.BTreeG[E].
// The clone is a freshly built tree - not a copy-on-write clone - holding
// independent clones of the items in ascending order. The item ordering and
// tree degree must be supplied because a fresh tree cannot be constructed
// without them. A nil tree clones to nil.
func IndependentBTree[E any](
	degree int,
	less btree.LessFunc[E],
	elem clonecap.Independent[clonecap.AnySpeed, E],
) clonecap.Independent[clonecap.AnySpeed, *btree.BTreeG[E]] {
	return func(src *btree.BTreeG[E]) *btree.BTreeG[E] {
		if src == nil {
			return nil
		}
		out := btree.NewG(degree, less)
		src.Ascend(func(item E) bool {
			out.ReplaceOrInsert(elem(item))
			return true
		})
		return out
	}
}

// MixedBTree returns the mixed capability for *btree.BTreeG[E], backed by
// the tree's lazy copy-on-write clone. The two trees share nodes until one
// is written, and items themselves are never cloned - partial sharing by
// construction, which is exactly what the mixed semantics labels. The lazy
// clone touches a bounded amount of state, so ConstantTime and slower tiers
// may be claimed.
func MixedBTree[S clonecap.ConstantOrSlower, E any]() clonecap.Mixed[S, *btree.BTreeG[E]] {
	return func(src *btree.BTreeG[E]) *btree.BTreeG[E] {
		if src == nil {
			return nil
		}
		return src.Clone()
	}
}
