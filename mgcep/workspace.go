package mgcep

import "sync"

// Workspace는 변환 단계들이 호출 사이에 재사용하는 scratch 버퍼와 sine table을 보관한다.
// 각 버퍼는 지금까지 요청된 가장 큰 크기까지 늘어나고 줄어들지 않는다.
// 하나의 Workspace는 동시에 하나의 호출에서만 사용해야 한다.
type Workspace struct {
	// frequency warping 점화식의 이전/현재 단계 상태
	warpPrev []float64
	warpCur  []float64

	gcSource  []float64
	mgcSource []float64
	cepstrum  []float64

	re []float64
	im []float64

	sinTable   []float64
	maxFFTSize int
}

// NewWorkspace는 비어 있는 Workspace를 생성한다. 버퍼는 처음 사용할 때 할당된다.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// MaxFFTSize는 sine table이 지원하는 가장 큰 FFT 길이를 반환한다.
func (w *Workspace) MaxFFTSize() int {
	if w == nil {
		return 0
	}
	return w.maxFFTSize
}

// grow는 buf를 길이 n으로 맞춘다. 용량이 부족하면 0으로 채워진 새 버퍼를 할당한다.
func grow(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

var workspacePool = sync.Pool{
	New: func() any { return NewWorkspace() },
}

func withWorkspace[T any](fn func(w *Workspace) (T, error)) (T, error) {
	w := workspacePool.Get().(*Workspace)
	defer workspacePool.Put(w)
	return fn(w)
}
