package clonecap

import (
	"fmt"
	"slices"
	"strings"
)

// Entry describes one row of the coverage contract: a type family, the
// semantics it supports, the tier claimed, and the gate that compiles it
// in. The merged table across the coverage packages is the documented
// contract of the library; tests pin it against golden data so a coverage
// change is always a reviewed change.
type Entry struct {
	// Family names the covered type family, e.g. "scalar" or "hash map".
	Family string `yaml:"family"`

	// Semantics is one of "independent", "mirrored", "mixed".
	Semantics string `yaml:"semantics"`

	// Tier is the claimed tier: one of the four tier names, or
	// "tier-generic" when one body is valid at every claimed tier, or
	// "constant-or-slower" for allocating composites.
	Tier string `yaml:"tier"`

	// Gate is the feature gate: "base", "allocation", or "platform".
	Gate string `yaml:"gate"`

	// Constructor is the exported constructor or combinator name.
	Constructor string `yaml:"constructor"`
}

// Coverage returns the base-gate coverage table provided by this package.
func Coverage() []Entry {
	return []Entry{
		{Family: "scalar", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentScalar"},
		{Family: "scalar", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredScalar"},
		{Family: "scalar", Semantics: "mixed", Tier: "tier-generic", Gate: "base", Constructor: "MixedScalar"},
		{Family: "zero-sized marker", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentUnit"},
		{Family: "zero-sized marker", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredUnit"},
		{Family: "shallow copy claim", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentCopy"},
		{Family: "stateless claim", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredStateless"},
		{Family: "shallow copy claim", Semantics: "mixed", Tier: "tier-generic", Gate: "base", Constructor: "MixedShallow"},
		{Family: "pointer", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredPointer"},
		{Family: "pointer", Semantics: "mixed", Tier: "tier-generic", Gate: "base", Constructor: "MixedPointer"},
		{Family: "pointer box", Semantics: "independent", Tier: "constant-or-slower", Gate: "base", Constructor: "IndependentPointer"},
		{Family: "atomic cell", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentAtomic"},
		{Family: "atomic pointer", Semantics: "mixed", Tier: "tier-generic", Gate: "base", Constructor: "MixedAtomicPointer"},
		{Family: "atomic any-value", Semantics: "mixed", Tier: "tier-generic", Gate: "base", Constructor: "MixedAtomicValue"},
		{Family: "pair", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentPair"},
		{Family: "pair", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredPair"},
		{Family: "triple", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentTriple"},
		{Family: "triple", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredTriple"},
		{Family: "quad", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentQuad"},
		{Family: "quad", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredQuad"},
		{Family: "fixed-size array", Semantics: "independent", Tier: "constant-or-slower", Gate: "base", Constructor: "IndependentArray"},
		{Family: "fixed-size array", Semantics: "mirrored", Tier: "constant-or-slower", Gate: "base", Constructor: "MirroredArray"},
		{Family: "optional value", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentOption"},
		{Family: "optional value", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredOption"},
		{Family: "fallible value", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentResult"},
		{Family: "fallible value", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredResult"},
		{Family: "monotonic instant", Semantics: "independent", Tier: "tier-generic", Gate: "platform", Constructor: "IndependentTime"},
		{Family: "monotonic instant", Semantics: "mirrored", Tier: "tier-generic", Gate: "platform", Constructor: "MirroredTime"},
		{Family: "uuid", Semantics: "independent", Tier: "tier-generic", Gate: "base", Constructor: "IndependentUUID"},
		{Family: "uuid", Semantics: "mirrored", Tier: "tier-generic", Gate: "base", Constructor: "MirroredUUID"},
	}
}

// FormatCoverage renders a coverage table deterministically, sorted by
// gate, family, semantics, and constructor. The output is stable across
// runs and platforms, which makes it suitable for golden-file comparison.
func FormatCoverage(entries []Entry) []byte {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		if c := strings.Compare(a.Gate, b.Gate); c != 0 {
			return c
		}
		if c := strings.Compare(a.Family, b.Family); c != 0 {
			return c
		}
		if c := strings.Compare(a.Semantics, b.Semantics); c != 0 {
			return c
		}
		return strings.Compare(a.Constructor, b.Constructor)
	})

	var sb strings.Builder
	for _, e := range sorted {
		fmt.Fprintf(&sb, "%s | %s | %s | %s | %s\n", e.Gate, e.Family, e.Semantics, e.Tier, e.Constructor)
	}
	return []byte(sb.String())
}
