package clonecap

// Speed is the sealed set of cost tiers a clone capability may claim.
// Only NearInstant, ConstantTime, LogTime, and AnySpeed implement it, and
// the unexported method keeps external packages from adding a fifth tier.
// The tags are used purely as type arguments; callers never construct them.
type Speed interface {
	speedTier() // Sealed - only the four tier tags implement it
}

// NearInstant claims that a clone is constant-time, never blocks, and costs
// at most a bounded number of atomic operations. Acquiring a lock is not
// NearInstant; an atomic load is.
type NearInstant struct{}

func (NearInstant) speedTier() {}

// ConstantTime claims that a clone is O(1) but may block, typically because
// it acquires a lock or allocates.
type ConstantTime struct{}

func (ConstantTime) speedTier() {}

// LogTime claims that a clone runs in logarithmic time or faster.
type LogTime struct{}

func (LogTime) speedTier() {}

// AnySpeed places no constraint on the cost of a clone.
type AnySpeed struct{}

func (AnySpeed) speedTier() {}

// ConstantOrSlower matches every tier a ConstantTime implementation also
// satisfies. It is the target set when promoting from NearInstant, and the
// claimable set for capabilities that must allocate or lock.
type ConstantOrSlower interface {
	Speed
	ConstantTime | LogTime | AnySpeed
}

// LogOrSlower matches every tier a LogTime implementation also satisfies.
// It is the target set when promoting from ConstantTime.
type LogOrSlower interface {
	Speed
	LogTime | AnySpeed
}

// TierName reports the name of a tier tag. It exists for diagnostics and
// the coverage table; the tier order itself is never consulted at runtime.
func TierName[S Speed]() string {
	var tag S
	switch any(tag).(type) {
	case NearInstant:
		return "near-instant"
	case ConstantTime:
		return "constant-time"
	case LogTime:
		return "log-time"
	case AnySpeed:
		return "any-speed"
	default:
		// Unreachable: Speed is sealed.
		return "unknown"
	}
}
