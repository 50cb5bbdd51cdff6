package clonetest_test

import (
	"slices"
	"testing"

	"github.com/roach88/clonecap"
	"github.com/roach88/clonecap/clonetest"
	"github.com/roach88/clonecap/coll"
	"github.com/roach88/clonecap/share"
)

func TestIsolationAcceptsIndependentSlice(t *testing.T) {
	clonetest.Isolation(t,
		coll.IndependentSlice(clonecap.IndependentScalar[clonecap.AnySpeed, int]()),
		func() []int { return []int{1, 2, 3} },
		func(s []int) { s[0] = 99 },
		func(s []int) any { return slices.Clone(s) },
	)
}

func TestIsolationAcceptsIndependentHandle(t *testing.T) {
	clonetest.Isolation(t,
		share.IndependentHandle(clonecap.IndependentScalar[clonecap.ConstantTime, int]()),
		func() share.Shared[int] { return share.NewShared(7) },
		func(s share.Shared[int]) { *s.Get() = 8 },
		func(s share.Shared[int]) any { return *s.Get() },
	)
}

func TestCouplingAcceptsMirroredHandle(t *testing.T) {
	clonetest.Coupling(t,
		share.MirroredHandle[clonecap.NearInstant, int](),
		func() share.Shared[int] { return share.NewShared(0) },
		func(s share.Shared[int]) { *s.Get()++ },
		func(s share.Shared[int]) any { return *s.Get() },
	)
}

func TestAgreementAcrossPromotion(t *testing.T) {
	fast := share.MirroredHandle[clonecap.NearInstant, int]()
	slow := clonecap.PromoteMirrored[clonecap.AnySpeed](fast)

	samples := []share.Shared[int]{share.NewShared(1), share.NewShared(2), {}}
	clonetest.MirroredAgreement(t, fast, slow, samples,
		func(s share.Shared[int]) any {
			if s.Get() == nil {
				return nil
			}
			return *s.Get()
		})
}

func TestAgreementAcrossTierGenericInstantiations(t *testing.T) {
	clonetest.Agreement(t,
		clonecap.IndependentScalar[clonecap.NearInstant, string](),
		clonecap.IndependentScalar[clonecap.AnySpeed, string](),
		[]string{"", "a", "clone"},
		func(s string) any { return s },
	)
}
