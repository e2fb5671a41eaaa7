package mgcep

import "github.com/pkg/errors"

// ConvertMGC는 (a1, g1) 로 표현된 mel-generalized cepstrum src를
// 차수 order, all-pass 상수 a2, 감마 g2 의 표현으로 변환한다.
//
// 두 all-pass 상수를 합성한 워핑 a = (a2 - a1)/(1 - a1*a2) 가 0이면 워핑 단계를 건너뛴다.
// 그렇지 않으면 정규화 전에 먼저 워핑한다. 정규화는 gain 항이 목표 차수로 워핑된
// 에너지를 이미 반영하고 있다고 가정하므로 이 순서를 바꾸면 안 된다.
func (w *Workspace) ConvertMGC(dst, src []float64, a1, g1 float64, order int, a2, g2 float64) ([]float64, error) {
	if err := checkCepstrum(src); err != nil {
		return nil, err
	}
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	for _, a := range [...]float64{a1, a2} {
		if err := checkAlpha(a); err != nil {
			return nil, err
		}
	}
	for _, g := range [...]float64{g1, g2} {
		if err := checkGamma(g); err != nil {
			return nil, err
		}
	}
	return w.convertMGC(dst, src, a1, g1, order, a2, g2)
}

func (w *Workspace) convertMGC(dst, src []float64, a1, g1 float64, order int, a2, g2 float64) ([]float64, error) {
	a := (a2 - a1) / (1 - a1*a2)

	if a == 0 {
		w.mgcSource = grow(w.mgcSource, len(src))
		ca := w.mgcSource
		copy(ca, src)
		if err := normalizeGain(ca, ca, g1); err != nil {
			return nil, errors.Wrap(err, "normalize source gain failed")
		}
		dst = w.convertGeneralizedCepstrum(dst, ca, g1, order, g2)
	} else {
		dst = w.frequencyWarp(dst, src, order, a)
		if err := normalizeGain(dst, dst, g1); err != nil {
			return nil, errors.Wrap(err, "normalize warped gain failed")
		}
		dst = w.convertGeneralizedCepstrum(dst, dst, g1, order, g2)
	}

	if err := denormalizeGain(dst, dst, g2); err != nil {
		return nil, errors.Wrap(err, "denormalize gain failed")
	}
	return dst, nil
}
