package coll

import "github.com/roach88/clonecap"

// IndependentMap derives an independent capability for map[K]V. Keys and
// values are cloned independently of each other; a nil map clones to nil.
func IndependentMap[K comparable, V any](
	key clonecap.Independent[clonecap.AnySpeed, K],
	val clonecap.Independent[clonecap.AnySpeed, V],
) clonecap.Independent[clonecap.AnySpeed, map[K]V] {
	return func(src map[K]V) map[K]V {
		if src == nil {
			return nil
		}
		out := make(map[K]V, len(src))
		for k, v := range src {
			out[key(k)] = val(v)
		}
		return out
	}
}

// IndependentSet derives an independent capability for the conventional
// set representation map[E]struct{}. A nil set clones to nil.
func IndependentSet[E comparable](elem clonecap.Independent[clonecap.AnySpeed, E]) clonecap.Independent[clonecap.AnySpeed, map[E]struct{}] {
	return func(src map[E]struct{}) map[E]struct{} {
		if src == nil {
			return nil
		}
		out := make(map[E]struct{}, len(src))
		for e := range src {
			out[elem(e)] = struct{}{}
		}
		return out
	}
}
