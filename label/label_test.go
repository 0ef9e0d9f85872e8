package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/function"
	"github.com/ocharge/chargepath/label"
)

func flat(minX, maxX, value float64) function.Piecewise {
	return function.NewPiecewise(function.NewLimited(minX, maxX, function.Constant{C: value}))
}

func TestContainerOfferRejectsDominatedCandidate(t *testing.T) {
	c := label.NewContainer(1, function.DefaultXEpsilon, function.DefaultYEpsilon)

	require.True(t, c.Offer(0, label.Entry{Cost: flat(0, 10, 5), Key: 0}))
	// Strictly worse on both axes: dominated, must be rejected.
	require.False(t, c.Offer(0, label.Entry{Cost: flat(0, 10, 50), Key: 0}))

	require.Len(t, c.Unsettled(0), 1)
}

func TestContainerOfferClipsDominatedExisting(t *testing.T) {
	c := label.NewContainer(1, function.DefaultXEpsilon, function.DefaultYEpsilon)

	require.True(t, c.Offer(0, label.Entry{Cost: flat(0, 10, 50), Key: 0}))
	require.True(t, c.Offer(0, label.Entry{Cost: flat(0, 10, 5), Key: 0}))

	// The first, now-dominated candidate should have been dropped.
	assert.Len(t, c.Unsettled(0), 1)
}

func TestContainerPopExtractsLowestKeyOnly(t *testing.T) {
	c := label.NewContainer(1, function.DefaultXEpsilon, function.DefaultYEpsilon)
	// Two mutually undominated candidates: cheaper-but-slower vs pricier-but-faster.
	require.True(t, c.Offer(0, label.Entry{Cost: flat(2, 10, 5), Key: 50}))
	require.True(t, c.Offer(0, label.Entry{Cost: flat(0, 5, 9), Key: 10}))

	e, idx, ok := c.Pop(0)
	require.True(t, ok)
	assert.Equal(t, int32(10), e.Key)
	assert.Equal(t, 0, idx)

	assert.Len(t, c.Unsettled(0), 1)
	assert.Len(t, c.SettledOf(0), 1)

	key, ok := c.MinKey(0)
	require.True(t, ok)
	assert.Equal(t, int32(50), key)
}

func TestContainerDominatedByEnvelopeOfSettled(t *testing.T) {
	c := label.NewContainer(1, function.DefaultXEpsilon, function.DefaultYEpsilon)
	c.Offer(0, label.Entry{Cost: flat(0, 10, 5), Key: 0})
	c.Pop(0)

	assert.True(t, c.Dominated(0, flat(0, 10, 50)))
	assert.False(t, c.Dominated(0, flat(0, 10, 1)))
}

func TestQueueOrdersByKeyAndSupportsDecreaseIncrease(t *testing.T) {
	q := label.NewQueue()
	q.Push(1, 100)
	q.Push(2, 50)
	q.Push(3, 75)

	q.Push(2, 200) // increase-key
	q.Push(3, 10)  // decrease-key

	node, key, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(3), node)
	assert.Equal(t, int32(10), key)

	node, key, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(1), node)
	assert.Equal(t, int32(100), key)

	node, _, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(2), node)

	_, _, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueRemove(t *testing.T) {
	q := label.NewQueue()
	q.Push(5, 1)
	q.Push(6, 2)
	q.Remove(5)

	assert.False(t, q.Contains(5))
	node, _, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(6), node)
}
