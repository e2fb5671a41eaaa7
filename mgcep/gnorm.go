package mgcep

import (
	"math"

	"github.com/pkg/errors"
)

// NormalizeGain은 감마 gamma의 generalized cepstrum을 gain 정규화된 형태로 바꾼다.
// gamma != 0 이면 c0 을 (1 + gamma*c0)^(1/gamma) 로 바꾸고 나머지 계수를 1 + gamma*c0 으로 나눈다.
// gamma = 0 이면 c0 만 exp(c0) 로 바뀐다. 이는 근사가 아니라 gamma -> 0 극한이다.
//
// dst가 nil이면 새로 할당하며 src와 같은 버퍼여도 된다.
func NormalizeGain(dst, src []float64, gamma float64) ([]float64, error) {
	if err := checkCepstrum(src); err != nil {
		return nil, err
	}
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}
	dst = grow(dst, len(src))
	if err := normalizeGain(dst, src, gamma); err != nil {
		return nil, err
	}
	return dst, nil
}

// DenormalizeGain은 NormalizeGain의 역변환이다. k = c0^gamma 로 두고
// c0 을 (k - 1)/gamma 로, 나머지 계수를 k배로 바꾼다. gamma = 0 이면 c0 만 log(c0) 가 된다.
func DenormalizeGain(dst, src []float64, gamma float64) ([]float64, error) {
	if err := checkCepstrum(src); err != nil {
		return nil, err
	}
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}
	dst = grow(dst, len(src))
	if err := denormalizeGain(dst, src, gamma); err != nil {
		return nil, err
	}
	return dst, nil
}

// normalizeGain은 len(dst) == len(src) 를 가정한다.
func normalizeGain(dst, src []float64, gamma float64) error {
	if gamma == 0 {
		copy(dst[1:], src[1:])
		dst[0] = math.Exp(src[0])
		return nil
	}

	k := 1 + gamma*src[0]
	if k <= 0 {
		return errors.Errorf("gain term out of range: 1 + gamma*c0 = %g", k)
	}
	for m := len(src) - 1; m >= 1; m-- {
		dst[m] = src[m] / k
	}
	dst[0] = math.Pow(k, 1/gamma)
	return nil
}

func denormalizeGain(dst, src []float64, gamma float64) error {
	if src[0] <= 0 {
		return errors.Errorf("normalized gain must be positive: %g", src[0])
	}
	if gamma == 0 {
		copy(dst[1:], src[1:])
		dst[0] = math.Log(src[0])
		return nil
	}

	k := math.Pow(src[0], gamma)
	for m := len(src) - 1; m >= 1; m-- {
		dst[m] = k * src[m]
	}
	dst[0] = (k - 1) / gamma
	return nil
}
