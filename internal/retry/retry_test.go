package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedJitter(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

func TestShouldRetry_Bound(t *testing.T) {
	p := NewPolicy(3, time.Second)

	assert.True(t, p.ShouldRetry(0))
	assert.True(t, p.ShouldRetry(1))
	assert.True(t, p.ShouldRetry(2))
	assert.False(t, p.ShouldRetry(3))
	assert.False(t, p.ShouldRetry(10))
}

func TestDelay_ExponentialNonDecreasing(t *testing.T) {
	p := NewPolicy(3, 2*time.Second)
	p.jitter = fixedJitter(0)

	prev := time.Duration(0)
	for attempt := 0; attempt < 4; attempt++ {
		d := p.Delay(attempt)
		assert.GreaterOrEqual(t, d, prev, "задержка не должна убывать")
		prev = d
	}

	assert.Equal(t, 2*time.Second, p.Delay(0))
	assert.Equal(t, 4*time.Second, p.Delay(1))
	assert.Equal(t, 8*time.Second, p.Delay(2))
}

func TestDelay_JitterAdded(t *testing.T) {
	p := NewPolicy(3, time.Second)
	p.jitter = fixedJitter(100 * time.Millisecond)

	assert.Equal(t, time.Second+100*time.Millisecond, p.Delay(0))
}

func TestNewPolicy_Defaults(t *testing.T) {
	p := NewPolicy(-1, 0)

	assert.Equal(t, DefaultMaxRetries, p.MaxRetries)
	assert.Equal(t, DefaultBaseDelay, p.BaseDelay)
}
