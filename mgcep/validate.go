package mgcep

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidFFTLength는 FFT 길이가 4 이상의 2의 거듭제곱이 아닐 때 반환된다.
var ErrInvalidFFTLength = errors.New("fft length must be a power of two >= 4")

func checkOrder(order int) error {
	if order < 0 {
		return errors.Errorf("invalid order: %d", order)
	}
	return nil
}

func checkCepstrum(c []float64) error {
	if len(c) == 0 {
		return errors.New("empty cepstrum")
	}
	return nil
}

func checkAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= -1 || alpha >= 1 {
		return errors.Errorf("invalid all-pass constant: %g", alpha)
	}
	return nil
}

func checkGamma(gamma float64) error {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return errors.Errorf("invalid gamma: %g", gamma)
	}
	return nil
}

// checkMGCGamma는 고전적인 MGC 계열이 허용하는 -1 <= gamma <= 0 범위를 확인한다.
func checkMGCGamma(gamma float64) error {
	if err := checkGamma(gamma); err != nil {
		return err
	}
	if gamma < -1 || gamma > 0 {
		return errors.Errorf("gamma out of range [-1, 0]: %g", gamma)
	}
	return nil
}

func checkFFTLength(n int) error {
	if n < 4 || n&(n-1) != 0 {
		return errors.Wrapf(ErrInvalidFFTLength, "fft length %d", n)
	}
	return nil
}

func checkComplexBuffers(x, y []float64) error {
	if err := checkFFTLength(len(x)); err != nil {
		return err
	}
	if len(y) != len(x) {
		return errors.Errorf("imaginary part length %d does not match real part length %d", len(y), len(x))
	}
	return nil
}
