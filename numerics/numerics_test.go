package numerics_test

import (
	"math"
	"testing"

	"github.com/bcdannyboy/optionrisk/numerics"
	"github.com/stretchr/testify/assert"
)

func TestNormCDFSymmetry(t *testing.T) {
	assert.InDelta(t, 0.5, numerics.NormCDF(0), 1e-12)
	for _, z := range []float64{0.1, 0.5, 1.0, 2.5} {
		assert.InDelta(t, 1.0, numerics.NormCDF(z)+numerics.NormCDF(-z), 1e-12)
	}
}

func TestNormPDFPeakAtZero(t *testing.T) {
	assert.InDelta(t, 1.0/math.Sqrt(2*math.Pi), numerics.NormPDF(0), 1e-12)
	assert.Less(t, numerics.NormPDF(1), numerics.NormPDF(0))
}

func TestValidatePositiveRejectsNonPositive(t *testing.T) {
	assert.NoError(t, numerics.ValidatePositive("op", "spot", 1.0))
	assert.Error(t, numerics.ValidatePositive("op", "spot", 0))
	assert.Error(t, numerics.ValidatePositive("op", "spot", -1))
	assert.Error(t, numerics.ValidatePositive("op", "spot", math.NaN()))
	assert.Error(t, numerics.ValidatePositive("op", "spot", math.Inf(1)))
}

func TestValidateNonNegative(t *testing.T) {
	assert.NoError(t, numerics.ValidateNonNegative("op", "vol", 0))
	assert.Error(t, numerics.ValidateNonNegative("op", "vol", -0.01))
}

func TestValidatePricingInputs(t *testing.T) {
	assert.NoError(t, numerics.ValidatePricingInputs("op", 100, 100, 1, 0.2))
	assert.Error(t, numerics.ValidatePricingInputs("op", -1, 100, 1, 0.2))
	assert.Error(t, numerics.ValidatePricingInputs("op", 100, 0, 1, 0.2))
	assert.Error(t, numerics.ValidatePricingInputs("op", 100, 100, -1, 0.2))
	assert.Error(t, numerics.ValidatePricingInputs("op", 100, 100, 1, -0.1))
}
