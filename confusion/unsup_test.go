package confusion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/biaskit/confusion"
	"github.com/mkravets/biaskit/matrix"
)

// TestWeightedMatrices_Validation covers the extended input contract:
// marginal length and sign checks on top of the shared label rules.
func TestWeightedMatrices_Validation(t *testing.T) {
	_, err := confusion.WeightedMatrices(0, nil, nil, nil, nil)
	assert.ErrorIs(t, err, confusion.ErrBadClassCount)

	_, err = confusion.WeightedMatrices(2, []int{0, 1}, []int{0, 1}, []float64{0.5}, nil)
	assert.ErrorIs(t, err, confusion.ErrLengthMismatch, "short marginal sequence must error")

	_, err = confusion.WeightedMatrices(2, []int{0, 1}, []int{0, 1}, []float64{0.5, -0.1}, nil)
	assert.ErrorIs(t, err, confusion.ErrNegativeMarginal)

	_, err = confusion.WeightedMatrices(2, []int{0, 5}, []int{0, 1}, []float64{0.5, 0.5}, nil)
	assert.ErrorIs(t, err, confusion.ErrLabelOutOfRange)
}

// TestWeightedMatrices_HandComputed walks a three-example case end to end.
//
// Examples (target, bias, marginal): (0,0,0.5), (1,0,0.25), (0,0,0.5).
// Cell [0][0]: weighted 1.0 over 2 hits -> mean 0.5 -> surprise 2.
// Cell [0][1]: weighted 0.25 over 1 hit -> mean 0.25 -> surprise 4.
// Bias row 1 never occurs -> masked -> surprise 0.
func TestWeightedMatrices_HandComputed(t *testing.T) {
	targets := []int{0, 1, 0}
	biases := []int{0, 0, 0}
	marginals := []float64{0.5, 0.25, 0.5}

	res, err := confusion.WeightedMatrices(2, targets, biases, marginals, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, at(t, res.Surprise, 0, 0), 1e-15)
	assert.InDelta(t, 4.0, at(t, res.Surprise, 0, 1), 1e-15)
	assert.Equal(t, 0.0, at(t, res.Surprise, 1, 0))
	assert.Equal(t, 0.0, at(t, res.Surprise, 1, 1))

	// Row 0 normalizes 2:4 into 1/3:2/3; the masked row stays zero.
	assert.InDelta(t, 1.0/3.0, at(t, res.Normalized, 0, 0), 1e-15)
	assert.InDelta(t, 2.0/3.0, at(t, res.Normalized, 0, 1), 1e-15)
	assert.Equal(t, 0.0, at(t, res.Normalized, 1, 1))
}

// TestWeightedMatrices_ZeroMaskInvariant verifies that a cell with zero
// total occurrence has surprise exactly 0 no matter what the marginals
// elsewhere look like, and that an entire absent bias row is zeroed.
func TestWeightedMatrices_ZeroMaskInvariant(t *testing.T) {
	// Bias sequence contains only 0; row 1 must be fully masked.
	targets := []int{0, 1, 1, 0}
	biases := []int{0, 0, 0, 0}
	marginals := []float64{0.9, 0.1, 0.8, 0.7}

	res, err := confusion.WeightedMatrices(2, targets, biases, marginals, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, at(t, res.Surprise, 1, 0), "masked cell must be exactly 0")
	assert.Equal(t, 0.0, at(t, res.Surprise, 1, 1), "masked cell must be exactly 0")

	// The populated row is finite and positive.
	assert.Greater(t, at(t, res.Surprise, 0, 0), 0.0)
	assert.Greater(t, at(t, res.Surprise, 0, 1), 0.0)
}

// TestWeightedMatrices_ZeroMarginalCell: a cell that was hit but only
// with marginal 0 carries zero weighted mass and is treated as masked,
// the same as a never-hit cell.
func TestWeightedMatrices_ZeroMarginalCell(t *testing.T) {
	targets := []int{0, 1}
	biases := []int{0, 0}
	marginals := []float64{0.5, 0} // cell [0][1] hit once with zero confidence

	res, err := confusion.WeightedMatrices(2, targets, biases, marginals, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, at(t, res.Surprise, 0, 1), "zero-mass cell must be masked")
	assert.InDelta(t, 2.0, at(t, res.Surprise, 0, 0), 1e-15)
}

// TestWeightedMatrices_SurpriseInverts verifies the core design choice:
// higher mean confidence yields strictly lower surprise.
func TestWeightedMatrices_SurpriseInverts(t *testing.T) {
	// Cell [0][0] mean 0.9, cell [0][1] mean 0.3.
	targets := []int{0, 1}
	biases := []int{0, 0}
	marginals := []float64{0.9, 0.3}

	res, err := confusion.WeightedMatrices(2, targets, biases, marginals, nil)
	require.NoError(t, err)

	confident := at(t, res.Surprise, 0, 0)
	rare := at(t, res.Surprise, 0, 1)
	assert.Less(t, confident, rare, "confident pairing must get lower surprise")

	// After normalization the rare pairing dominates the row.
	assert.Greater(t, at(t, res.Normalized, 0, 1), at(t, res.Normalized, 0, 0))
}

// TestWeightedMatrices_RowSumsAndZeroPolicy checks the probability
// property on populated rows and both degenerate-row policies.
func TestWeightedMatrices_RowSumsAndZeroPolicy(t *testing.T) {
	targets := []int{0, 1, 0}
	biases := []int{0, 0, 0}
	marginals := []float64{0.4, 0.6, 0.2}

	res, err := confusion.WeightedMatrices(2, targets, biases, marginals, nil)
	require.NoError(t, err)
	sum, err := res.Normalized.RowSum(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum, 1e-12)
	sum, err = res.Normalized.RowSum(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum, "masked row stays zero under the default policy")

	opts := confusion.DefaultOptions()
	opts.ZeroRows = matrix.ZeroRowsNaN
	res, err = confusion.WeightedMatrices(2, targets, biases, marginals, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(at(t, res.Normalized, 1, 0)), "parity mode divides the zero row through")
}

// TestWeightedMatrices_Idempotent verifies bit-identical repeated runs.
func TestWeightedMatrices_Idempotent(t *testing.T) {
	targets := []int{0, 1, 2, 1}
	biases := []int{2, 0, 2, 1}
	marginals := []float64{0.1, 0.9, 0.5, 0.5}

	first, err := confusion.WeightedMatrices(3, targets, biases, marginals, nil)
	require.NoError(t, err)
	second, err := confusion.WeightedMatrices(3, targets, biases, marginals, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, at(t, first.Surprise, i, j), at(t, second.Surprise, i, j))
			assert.Equal(t, at(t, first.Normalized, i, j), at(t, second.Normalized, i, j))
		}
	}
}
