package mgcep

// FrequencyWarp는 최소 위상 cepstrum src를 all-pass 상수 alpha로 주파수 워핑해
// 차수 order의 cepstrum으로 다시 전개한다. z^-1 은 (z^-1 - alpha) / (1 - alpha*z^-1) 로 치환된다.
//
// 결과는 dst에 기록되며 dst가 nil이거나 용량이 부족하면 새로 할당한다.
// 점화식은 scratch 상태에서 끝까지 계산한 뒤 한 번에 복사하므로 dst는 src와 같은 버퍼여도 된다.
func (w *Workspace) FrequencyWarp(dst, src []float64, order int, alpha float64) ([]float64, error) {
	if err := checkWarpArgs(src, order, alpha); err != nil {
		return nil, err
	}
	return w.frequencyWarp(dst, src, order, alpha), nil
}

// FrequencyWarpUnscaled는 FrequencyWarp와 같지만 index 1의 (1 - alpha^2) 보정 항을 생략한다.
// gain 정규화를 따로 적용하기 전에 정규화되지 않은 워핑 수열이 필요할 때 쓴다.
func (w *Workspace) FrequencyWarpUnscaled(dst, src []float64, order int, alpha float64) ([]float64, error) {
	if err := checkWarpArgs(src, order, alpha); err != nil {
		return nil, err
	}

	prev, cur := w.warpBuffers(order)
	for i := len(src) - 1; i >= 0; i-- {
		prev[0] = cur[0]
		cur[0] = src[i]
		for j := 1; j <= order; j++ {
			prev[j] = cur[j]
			cur[j] = prev[j-1] + alpha*(prev[j]-cur[j-1])
		}
	}

	dst = grow(dst, order+1)
	copy(dst, cur)
	return dst, nil
}

func (w *Workspace) frequencyWarp(dst, src []float64, order int, alpha float64) []float64 {
	prev, cur := w.warpBuffers(order)
	b := 1 - alpha*alpha

	for i := len(src) - 1; i >= 0; i-- {
		prev[0] = cur[0]
		cur[0] = src[i] + alpha*prev[0]
		if order >= 1 {
			prev[1] = cur[1]
			cur[1] = b*prev[0] + alpha*prev[1]
		}
		for j := 2; j <= order; j++ {
			prev[j] = cur[j]
			cur[j] = prev[j-1] + alpha*(prev[j]-cur[j-1])
		}
	}

	dst = grow(dst, order+1)
	copy(dst, cur)
	return dst
}

// warpBuffers는 길이 order+1의 점화식 버퍼를 돌려준다. 현재 단계 버퍼는 0으로 초기화된다.
// 이전 단계 버퍼는 읽기 전에 항상 다시 쓰이므로 초기화하지 않는다.
func (w *Workspace) warpBuffers(order int) (prev, cur []float64) {
	w.warpPrev = grow(w.warpPrev, order+1)
	w.warpCur = grow(w.warpCur, order+1)
	clear(w.warpCur)
	return w.warpPrev, w.warpCur
}

func checkWarpArgs(src []float64, order int, alpha float64) error {
	if err := checkCepstrum(src); err != nil {
		return err
	}
	if err := checkOrder(order); err != nil {
		return err
	}
	return checkAlpha(alpha)
}
