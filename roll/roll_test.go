package roll

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRoller(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

func TestBetweenStaysInClosedInterval(t *testing.T) {
	roller := newTestRoller(1)

	for i := 0; i < 1000; i++ {
		got := roller.Between(3, 8)
		assert.GreaterOrEqual(t, got, 3)
		assert.LessOrEqual(t, got, 8)
	}
}

func TestBetweenReachesBothBounds(t *testing.T) {
	roller := newTestRoller(1)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[roller.Between(1, 3)] = true
	}
	assert.True(t, seen[1])
	assert.True(t, seen[3])
}

func TestBetweenDegenerateRange(t *testing.T) {
	roller := newTestRoller(1)

	assert.Equal(t, 5, roller.Between(5, 5))
	assert.Equal(t, 5, roller.Between(5, 2))
}

func TestUniformStaysInInterval(t *testing.T) {
	roller := newTestRoller(7)

	for i := 0; i < 1000; i++ {
		got := roller.Uniform(0.8, 5)
		assert.GreaterOrEqual(t, got, 0.8)
		assert.LessOrEqual(t, got, 5.0)
	}
}

func TestUniformDegenerateRange(t *testing.T) {
	roller := newTestRoller(7)

	assert.Equal(t, 2.5, roller.Uniform(2.5, 2.5))
	assert.Equal(t, 2.5, roller.Uniform(2.5, 1.0))
}

func TestPick(t *testing.T) {
	roller := newTestRoller(42)
	items := []string{"alpha", "beta", "gamma"}

	for i := 0; i < 100; i++ {
		assert.Contains(t, items, roller.Pick(items))
	}

	assert.Equal(t, "", roller.Pick(nil))
	assert.Equal(t, "", roller.Pick([]string{}))
}

func TestSameSeedSameSequence(t *testing.T) {
	a := newTestRoller(99)
	b := newTestRoller(99)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Between(1, 100), b.Between(1, 100))
	}
}
