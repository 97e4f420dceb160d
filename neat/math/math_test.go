package math

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	assert.Equal(t, 1.0, Clip(5, -1, 1))
	assert.Equal(t, -1.0, Clip(-5, -1, 1))
	assert.Equal(t, 0.5, Clip(0.5, -1, 1))
}

func TestRandSign(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		seen[RandSign(rng)] = true
	}
	assert.True(t, seen[1.0])
	assert.True(t, seen[-1.0])
}

func TestActivateSigmoidBounded(t *testing.T) {
	for _, z := range []float64{-1000, -1, 0, 1, 1000} {
		v := Activate(SigmoidActivation, z)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestActivateStep(t *testing.T) {
	assert.Equal(t, 1.0, Activate(StepActivation, 1))
	assert.Equal(t, 0.0, Activate(StepActivation, 0))
	assert.Equal(t, 0.0, Activate(StepActivation, -1))
}

func TestActivateLinear(t *testing.T) {
	assert.Equal(t, 4.0, Activate(LinearActivation, 2))
}

func TestActivationTypeFromName(t *testing.T) {
	tp, err := ActivationTypeFromName("relu")
	assert.NoError(t, err)
	assert.Equal(t, ReluActivation, tp)

	_, err = ActivationTypeFromName("bogus")
	assert.Error(t, err)
}

func TestAggregateSum(t *testing.T) {
	assert.Equal(t, 6.0, Aggregate(SumAggregation, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, Aggregate(SumAggregation, nil))
}
