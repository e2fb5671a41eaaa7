package mgcep

import "math"

// FFT는 x(실수부), y(허수부)에 대해 in-place radix-2 FFT를 수행한다.
// 길이는 4 이상의 2의 거듭제곱이어야 하며 두 버퍼의 길이가 같아야 한다.
// 부호 규약은 X[k] = sum_n x[n] exp(-2*pi*i*k*n/N) 이다.
func (w *Workspace) FFT(x, y []float64) error {
	if err := checkComplexBuffers(x, y); err != nil {
		return err
	}
	w.fft(x, y)
	return nil
}

// IFFT는 FFT의 역변환이다. 켤레를 취해 FFT를 수행한 뒤 다시 켤레를 취하고 1/N으로 스케일한다.
func (w *Workspace) IFFT(x, y []float64) error {
	if err := checkComplexBuffers(x, y); err != nil {
		return err
	}
	for i := range y {
		y[i] = -y[i]
	}
	w.fft(x, y)
	scale := 1 / float64(len(x))
	for i := range x {
		x[i] *= scale
		y[i] = -y[i] * scale
	}
	return nil
}

// FFTR은 실수 수열 x의 FFT를 길이 N/2의 복소 FFT로 계산한다.
// 결과의 실수부는 x에, 허수부는 y에 기록되며 y의 기존 내용은 무시된다.
func (w *Workspace) FFTR(x, y []float64) error {
	if err := checkComplexBuffers(x, y); err != nil {
		return err
	}
	w.fftr(x, y)
	return nil
}

// ensureSinTable은 길이 m 까지의 FFT에 쓸 sine table을 준비한다.
// 더 큰 길이가 요청되면 table을 늘리지 않고 새로 만든다.
// table은 sin(2*pi*j/m), j = 0..m-m/4 이며 cos 값은 m/4 만큼 떨어진 위치에서 읽는다.
func (w *Workspace) ensureSinTable(m int) {
	if w.sinTable != nil && w.maxFFTSize >= m {
		return
	}

	size := m - m/4 + 1
	arg := math.Pi / float64(m) * 2
	table := make([]float64, size)
	for j := 1; j < size; j++ {
		table[j] = math.Sin(arg * float64(j))
	}
	table[m/2] = 0

	w.sinTable = table
	w.maxFFTSize = m
}

// fft는 길이 검사 없이 decimation-in-frequency 방식으로 변환한다. len(x) 는 2 이상의 2의 거듭제곱이어야 한다.
func (w *Workspace) fft(x, y []float64) {
	m := len(x)
	w.ensureSinTable(m)
	table := w.sinTable

	lf := w.maxFFTSize / m
	lmx := m
	for {
		lix := lmx
		lmx /= 2
		if lmx <= 1 {
			break
		}

		si := 0
		ci := w.maxFFTSize / 4
		for j := 0; j < lmx; j++ {
			p := j
			for li := lix; li <= m; li += lix {
				t1 := x[p] - x[p+lmx]
				t2 := y[p] - y[p+lmx]
				x[p] += x[p+lmx]
				y[p] += y[p+lmx]
				x[p+lmx] = table[ci]*t1 + table[si]*t2
				y[p+lmx] = table[ci]*t2 - table[si]*t1
				p += lix
			}
			si += lf
			ci += lf
		}
		lf += lf
	}

	for p := 0; p < m; p += 2 {
		t1 := x[p] - x[p+1]
		t2 := y[p] - y[p+1]
		x[p] += x[p+1]
		y[p] += y[p+1]
		x[p+1] = t1
		y[p+1] = t2
	}

	// bit reversal
	mv2 := m / 2
	j := 0
	for i := 0; i < m-1; i++ {
		if i < j {
			x[i], x[j] = x[j], x[i]
			y[i], y[j] = y[j], y[i]
		}
		k := mv2
		for k <= j {
			j -= k
			k /= 2
		}
		j += k
	}
}

func (w *Workspace) fftr(x, y []float64) {
	m := len(x)
	mv2 := m / 2

	// 짝수 번째 표본은 실수부, 홀수 번째 표본은 허수부로 모은다.
	for i := 0; i < mv2; i++ {
		x[i] = x[2*i]
		y[i] = x[2*i+1]
	}

	w.fft(x[:mv2], y[:mv2])

	w.ensureSinTable(m)
	table := w.sinTable
	n := w.maxFFTSize / m
	si := 0
	ci := w.maxFFTSize / 4

	x[mv2] = x[0] - y[0]
	x[0] += y[0]
	y[mv2] = 0
	y[0] = 0

	for p := 1; p < mv2; p++ {
		q := mv2 - p
		si += n
		ci += n
		yt := y[p] + y[q]
		xt := x[p] - x[q]
		x[m-p] = (x[p] + x[q] + table[ci]*yt - table[si]*xt) * 0.5
		y[m-p] = (y[q] - y[p] + table[si]*yt + table[ci]*xt) * 0.5
	}

	for p := 1; p < mv2; p++ {
		x[p] = x[m-p]
		y[p] = -y[m-p]
	}
}
