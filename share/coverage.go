package share

import "github.com/roach88/clonecap"

// Coverage returns the coverage table contributed by this package. Handle
// rows belong to the allocation gate, guard rows to the platform gate.
func Coverage() []clonecap.Entry {
	return []clonecap.Entry{
		{Family: "strong handle", Semantics: "mirrored", Tier: "tier-generic", Gate: "allocation", Constructor: "MirroredHandle"},
		{Family: "strong handle", Semantics: "independent", Tier: "constant-or-slower", Gate: "allocation", Constructor: "IndependentHandle"},
		{Family: "weak handle", Semantics: "mirrored", Tier: "tier-generic", Gate: "allocation", Constructor: "MirroredWeak"},
		{Family: "weak handle", Semantics: "independent", Tier: "constant-or-slower", Gate: "allocation", Constructor: "IndependentWeak"},
		{Family: "borrow cell", Semantics: "independent", Tier: "constant-or-slower", Gate: "allocation", Constructor: "IndependentCell"},
		{Family: "mutex guard", Semantics: "independent", Tier: "constant-or-slower", Gate: "platform", Constructor: "IndependentGuarded"},
		{Family: "rwmutex guard", Semantics: "independent", Tier: "constant-or-slower", Gate: "platform", Constructor: "IndependentRWGuarded"},
	}
}
