package mgcep

// ConvertGeneralizedCepstrum은 감마 g1의 generalized cepstrum src를
// 감마 g2, 차수 order의 generalized cepstrum으로 변환한다.
// g1 = g2 = 0 이면 단순히 order에 맞춰 자르거나 0으로 채운 결과와 같다.
//
// src는 내부 scratch로 먼저 복사되므로 dst는 src와 같은 버퍼여도 된다.
func (w *Workspace) ConvertGeneralizedCepstrum(dst, src []float64, g1 float64, order int, g2 float64) ([]float64, error) {
	if err := checkCepstrum(src); err != nil {
		return nil, err
	}
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	if err := checkGamma(g1); err != nil {
		return nil, err
	}
	if err := checkGamma(g2); err != nil {
		return nil, err
	}
	return w.convertGeneralizedCepstrum(dst, src, g1, order, g2), nil
}

func (w *Workspace) convertGeneralizedCepstrum(dst, src []float64, g1 float64, order int, g2 float64) []float64 {
	m1 := len(src) - 1
	w.gcSource = grow(w.gcSource, m1+1)
	ca := w.gcSource
	copy(ca, src)

	dst = grow(dst, order+1)
	dst[0] = ca[0]
	for i := 1; i <= order; i++ {
		ss1, ss2 := 0.0, 0.0
		kmax := min(m1, i-1)
		for k := 1; k <= kmax; k++ {
			mk := i - k
			cc := ca[k] * dst[mk]
			ss2 += float64(k) * cc
			ss1 += float64(mk) * cc
		}

		if i <= m1 {
			dst[i] = ca[i] + (g2*ss2-g1*ss1)/float64(i)
		} else {
			dst[i] = (g2*ss2 - g1*ss1) / float64(i)
		}
	}

	return dst
}
