package mgcep

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNormalizeGain_RoundTrip(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	for _, g := range []float64{0, -1, -0.5, -0.25, 0.5} {
		t.Run(fmt.Sprintf("gamma=%v", g), func(t *testing.T) {
			norm, err := NormalizeGain(nil, testCepstrum, g)
			require.NoError(t, err)
			back, err := DenormalizeGain(nil, norm, g)
			require.NoError(t, err)
			assert.InDeltaSlice(t, testCepstrum, back, 1e-12)
		})
	}
}

func TestNormalizeGain_Formulas(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	src := []float64{0.4, 0.2, -0.1}

	got, err := NormalizeGain(nil, src, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Exp(0.4), 0.2, -0.1}, got, 1e-15)

	got, err = NormalizeGain(nil, src, -0.5)
	require.NoError(t, err)
	k := 1 - 0.5*0.4
	assert.InDeltaSlice(t, []float64{math.Pow(k, -2), 0.2 / k, -0.1 / k}, got, 1e-15)
}

func TestNormalizeGain_InPlace(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	buf := append([]float64(nil), testCepstrum...)
	got, err := NormalizeGain(buf, buf, -0.5)
	require.NoError(t, err)
	assert.Same(t, &buf[0], &got[0])

	got, err = DenormalizeGain(got, got, -0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, testCepstrum, got, 1e-12)
}

func TestNormalizeGain_RejectsOutOfDomainGain(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	_, err := NormalizeGain(nil, []float64{3, 0.1}, -0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gain term out of range")

	_, err = DenormalizeGain(nil, []float64{0, 0.1}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "normalized gain must be positive")

	_, err = NormalizeGain(nil, testCepstrum, math.NaN())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid gamma")
}
