package clonecap_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/clonecap"
)

func TestIndependentTimeKeepsMonotonicReading(t *testing.T) {
	now := time.Now()
	dup := clonecap.IndependentTime[clonecap.NearInstant]()(now)

	assert.True(t, dup.Equal(now))
	// The monotonic reading survives the copy, so elapsed-time math stays
	// meaningful on the clone.
	assert.GreaterOrEqual(t, time.Since(dup), time.Duration(0))
}

func TestUUIDCoverage(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, id, clonecap.IndependentUUID[clonecap.NearInstant]()(id))
	assert.Equal(t, id, clonecap.MirroredUUID[clonecap.AnySpeed]()(id))
}
