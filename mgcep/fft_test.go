package mgcep

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func randomComplex(r *rand.Rand, n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = r.NormFloat64()
		y[i] = r.NormFloat64()
	}
	return x, y
}

func TestFFT_MatchesReferenceDFT(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	r := rand.New(rand.NewSource(1))
	ws := NewWorkspace()
	for n := 4; n <= 1024; n <<= 1 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x, y := randomComplex(r, n)
			in := make([]complex128, n)
			for i := range in {
				in[i] = complex(x[i], y[i])
			}
			want := fft.FFT(in)

			require.NoError(t, ws.FFT(x, y))
			for k := range want {
				assert.InDelta(t, real(want[k]), x[k], 1e-9, "real bin %d", k)
				assert.InDelta(t, imag(want[k]), y[k], 1e-9, "imag bin %d", k)
			}
		})
	}
}

func TestFFT_InverseRestoresInput(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	r := rand.New(rand.NewSource(2))
	ws := NewWorkspace()
	for n := 4; n <= 4096; n <<= 1 {
		x, y := randomComplex(r, n)
		origX := append([]float64(nil), x...)
		origY := append([]float64(nil), y...)

		require.NoError(t, ws.FFT(x, y))
		require.NoError(t, ws.IFFT(x, y))
		assert.InDeltaSlice(t, origX, x, 1e-9, "n=%d", n)
		assert.InDeltaSlice(t, origY, y, 1e-9, "n=%d", n)
	}
}

func TestFFTR_MatchesComplexFFT(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	r := rand.New(rand.NewSource(3))
	ws := NewWorkspace()
	for _, n := range []int{4, 8, 16, 32, 256} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := make([]float64, n)
			for i := range x {
				x[i] = r.NormFloat64()
			}
			want := fft.FFTReal(x)

			y := make([]float64, n)
			require.NoError(t, ws.FFTR(x, y))
			for k := range want {
				assert.InDelta(t, real(want[k]), x[k], 1e-9, "real bin %d", k)
				assert.InDelta(t, imag(want[k]), y[k], 1e-9, "imag bin %d", k)
			}
		})
	}
}

func TestFFTR_AfterLargerTableStillCorrect(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	r := rand.New(rand.NewSource(4))
	ws := NewWorkspace()

	big := make([]float64, 512)
	require.NoError(t, ws.FFTR(big, make([]float64, 512)))
	require.Equal(t, 512, ws.MaxFFTSize())
	table := &ws.sinTable[0]

	for _, n := range []int{4, 8, 64} {
		x := make([]float64, n)
		for i := range x {
			x[i] = r.NormFloat64()
		}
		want := fft.FFTReal(x)
		y := make([]float64, n)
		require.NoError(t, ws.FFTR(x, y))
		for k := 0; k <= n/2; k++ {
			assert.InDelta(t, real(want[k]), x[k], 1e-9)
			assert.InDelta(t, imag(want[k]), y[k], 1e-9)
		}
	}

	// 작은 길이는 table을 다시 만들지 않는다.
	assert.Equal(t, 512, ws.MaxFFTSize())
	assert.Same(t, table, &ws.sinTable[0])
}

func TestSinTable_RebuiltForLargerLength(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	ws := NewWorkspace()
	ws.ensureSinTable(16)
	require.Len(t, ws.sinTable, 16-16/4+1)
	assert.Zero(t, ws.sinTable[8])
	assert.InDelta(t, 1, ws.sinTable[4], 1e-15)

	ws.ensureSinTable(64)
	assert.Equal(t, 64, ws.MaxFFTSize())
	assert.Len(t, ws.sinTable, 64-64/4+1)
	assert.Zero(t, ws.sinTable[32])
}

func TestFFT_RejectsInvalidLength(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	ws := NewWorkspace()
	for _, n := range []int{0, 1, 2, 3, 6, 12, 100} {
		err := ws.FFT(make([]float64, n), make([]float64, n))
		require.Error(t, err, "n=%d", n)
		assert.True(t, errors.Is(err, ErrInvalidFFTLength), "n=%d", n)

		err = ws.FFTR(make([]float64, n), make([]float64, n))
		assert.True(t, errors.Is(err, ErrInvalidFFTLength), "n=%d", n)
	}

	err := ws.FFT(make([]float64, 8), make([]float64, 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}
