package evallog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_Deterministic(t *testing.T) {
	a, err := Synthesize(50, 42, 0.2)
	require.NoError(t, err)
	b, err := Synthesize(50, 42, 0.2)
	require.NoError(t, err)
	assert.Equal(t, a.Records(), b.Records())

	c, err := Synthesize(50, 43, 0.2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Records(), c.Records(), "different seeds should differ")
}

func TestSynthesize_Shape(t *testing.T) {
	log, err := Synthesize(25, 1, 0.1)
	require.NoError(t, err)
	require.Equal(t, 25, log.Len())

	for i, r := range log.Records() {
		assert.Equal(t, i, r.Epoch)
		assert.Greater(t, r.Error(), 0.0, "objective is strictly positive")
		assert.Less(t, r.Error(), 100.0)
		assert.Equal(t, r.ValLoss, r.Error(), "recorded loss equals the error value")
	}
}

func TestSynthesize_ZeroNoise(t *testing.T) {
	// With no noise the multiplicative term is exactly 1
	a, err := Synthesize(10, 5, 0)
	require.NoError(t, err)
	for _, r := range a.Records() {
		assert.Greater(t, r.Error(), 0.5/synthBudgetEpochs)
	}
}

func TestSynthesize_InvalidArgs(t *testing.T) {
	_, err := Synthesize(0, 1, 0.1)
	assert.Error(t, err)
	_, err = Synthesize(-5, 1, 0.1)
	assert.Error(t, err)
	_, err = Synthesize(10, 1, -0.1)
	assert.Error(t, err)
}
