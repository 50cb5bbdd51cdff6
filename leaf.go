package clonecap

import (
	"time"

	"github.com/google/uuid"
)

// Coverage for leaf value types that are not scalars by underlying type but
// behave like them: immutable records whose copy is a fixed-size value copy.
// time.Duration needs no entry here - its underlying type is int64, so the
// scalar constructors cover it. Thread-identity types have no Go analog;
// goroutine identity is deliberately unexposed by the runtime.

// IndependentTime returns an independent capability for time.Time,
// including monotonic-clock readings. The value copy shares only the
// immutable *Location, which cannot be mutated through the Time interface.
func IndependentTime[S Speed]() Independent[S, time.Time] {
	return func(t time.Time) time.Time { return t }
}

// MirroredTime returns a mirrored capability for time.Time; with no mutable
// state the mirrored contract holds vacuously.
func MirroredTime[S Speed]() Mirrored[S, time.Time] {
	return func(t time.Time) time.Time { return t }
}

// IndependentUUID returns an independent capability for uuid.UUID, a
// sixteen-byte immutable value.
func IndependentUUID[S Speed]() Independent[S, uuid.UUID] {
	return func(id uuid.UUID) uuid.UUID { return id }
}

// MirroredUUID returns a mirrored capability for uuid.UUID.
func MirroredUUID[S Speed]() Mirrored[S, uuid.UUID] {
	return func(id uuid.UUID) uuid.UUID { return id }
}
