package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dispatch/sim"
)

func TestNewPoolStartsFull(t *testing.T) {
	pool, err := NewPool(50)
	require.NoError(t, err)

	assert.Equal(t, 50.0, pool.Capacity())
	assert.Equal(t, 50.0, pool.Current())
	assert.Equal(t, 100.0, pool.Percent())
	assert.False(t, pool.IsEmpty())
}

func TestNewPoolRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewPool(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidCapacity))

	_, err = NewPool(-10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidCapacity))
}

func TestConsumeChecksBeforeMutating(t *testing.T) {
	pool, err := NewPool(10)
	require.NoError(t, err)

	require.True(t, pool.Consume(4))
	assert.Equal(t, 6.0, pool.Current())

	// Insufficient level refuses and leaves the pool untouched
	require.False(t, pool.Consume(7))
	assert.Equal(t, 6.0, pool.Current())

	// Exact remainder is allowed
	require.True(t, pool.Consume(6))
	assert.True(t, pool.IsEmpty())
}

func TestConsumeIgnoresNegativeAmounts(t *testing.T) {
	pool, err := NewPool(10)
	require.NoError(t, err)

	assert.False(t, pool.Consume(-1))
	assert.Equal(t, 10.0, pool.Current())
}

func TestDrainClampsAtZero(t *testing.T) {
	pool, err := NewPool(10)
	require.NoError(t, err)

	assert.Equal(t, 4.0, pool.Drain(4))
	assert.Equal(t, 6.0, pool.Current())

	// Draining past the level removes only what remains
	assert.Equal(t, 6.0, pool.Drain(100))
	assert.True(t, pool.IsEmpty())

	assert.Equal(t, 0.0, pool.Drain(5))
	assert.Equal(t, 0.0, pool.Drain(-5))
}

func TestRestoreClampsAtCapacity(t *testing.T) {
	pool, err := NewPool(10)
	require.NoError(t, err)
	pool.Drain(8)

	pool.Restore(5)
	assert.Equal(t, 7.0, pool.Current())

	pool.Restore(100)
	assert.Equal(t, 10.0, pool.Current())

	pool.Drain(3)
	pool.Restore(-5)
	assert.Equal(t, 7.0, pool.Current())
}

func TestRefill(t *testing.T) {
	pool, err := NewPool(25)
	require.NoError(t, err)

	pool.Drain(25)
	require.True(t, pool.IsEmpty())

	pool.Refill()
	assert.Equal(t, 25.0, pool.Current())
}
