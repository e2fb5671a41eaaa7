package mgcep

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// OutputFormat은 로그 스펙트럼 ln H = x + i*y 에서 어떤 값을 출력할지 정한다.
type OutputFormat int

const (
	// OutputPower는 파워 스펙트럼 |H|^2 = exp(2x) 이다.
	OutputPower OutputFormat = iota
	// OutputLogAmplitudeDB는 20*log10|H| 이다.
	OutputLogAmplitudeDB
	// OutputLogAmplitude는 ln|H| = x 이다.
	OutputLogAmplitude
	// OutputAmplitude는 |H| = exp(x) 이다.
	OutputAmplitude
	// OutputPhase는 위상 arg H = y (radian) 이다.
	OutputPhase
)

var outputFormatNames = [...]string{
	OutputPower:          "power",
	OutputLogAmplitudeDB: "db",
	OutputLogAmplitude:   "log",
	OutputAmplitude:      "amplitude",
	OutputPhase:          "phase",
}

func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(outputFormatNames) {
		return "unknown"
	}
	return outputFormatNames[f]
}

// ParseOutputFormat은 "power", "db", "log", "amplitude", "phase" 중 하나를 OutputFormat으로 바꾼다.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range outputFormatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return 0, errors.Errorf("unknown output format: %q", s)
}

func (f OutputFormat) valid() bool {
	return f >= 0 && int(f) < len(outputFormatNames)
}

func (f OutputFormat) apply(logAmp, phase float64) float64 {
	switch f {
	case OutputLogAmplitudeDB:
		return logAmp * 20 / math.Ln10
	case OutputLogAmplitude:
		return logAmp
	case OutputAmplitude:
		return math.Exp(logAmp)
	case OutputPhase:
		return phase
	default:
		return math.Exp(2 * logAmp)
	}
}

// CepstrumToSpectrum은 cepstrum c를 길이 len(x) 버퍼의 앞쪽에 복사하고 나머지를 0으로 채운 뒤
// 실수 FFT를 수행한다. 결과 x는 ln|H|, y는 arg H 이다.
func (w *Workspace) CepstrumToSpectrum(x, y, c []float64) error {
	if err := checkComplexBuffers(x, y); err != nil {
		return err
	}
	if err := checkCepstrum(c); err != nil {
		return err
	}
	if len(c) > len(x) {
		return errors.Errorf("cepstrum order %d does not fit fft length %d", len(c)-1, len(x))
	}
	w.cepstrumToSpectrum(x, y, c)
	return nil
}

func (w *Workspace) cepstrumToSpectrum(x, y, c []float64) {
	copy(x, c)
	clear(x[len(c):])
	w.fftr(x, y)
}

// MGCToSpectrum은 mel-generalized cepstrum을 감마 0, 워핑 없는 차수 len(x)/2 의 cepstrum으로
// 바꾼 뒤 CepstrumToSpectrum을 수행한다.
func (w *Workspace) MGCToSpectrum(x, y, mgc []float64, alpha, gamma float64) error {
	if err := checkComplexBuffers(x, y); err != nil {
		return err
	}
	if err := checkCepstrum(mgc); err != nil {
		return err
	}
	if err := checkAlpha(alpha); err != nil {
		return err
	}
	if err := checkMGCGamma(gamma); err != nil {
		return err
	}
	return w.mgcToSpectrum(x, y, mgc, alpha, gamma)
}

func (w *Workspace) mgcToSpectrum(x, y, mgc []float64, alpha, gamma float64) error {
	c, err := w.convertMGC(w.cepstrum, mgc, alpha, gamma, len(x)/2, 0, 0)
	if err != nil {
		return errors.Wrap(err, "convert mel-generalized cepstrum failed")
	}
	w.cepstrum = c
	w.cepstrumToSpectrum(x, y, c)
	return nil
}

// PowerSpectrum은 mel-generalized cepstrum의 파워 스펙트럼 |H|^2 를 fftLength/2+1 개의 bin으로 반환한다.
func (w *Workspace) PowerSpectrum(mgc []float64, alpha, gamma float64, fftLength int) ([]float64, error) {
	return w.Spectrum(nil, mgc, alpha, gamma, fftLength, OutputPower)
}

// Spectrum은 PowerSpectrum과 같지만 출력 형식을 고를 수 있고 결과를 dst에 기록한다.
// 허수부 버퍼는 Workspace 내부 scratch이며 OutputPhase일 때만 결과에 반영된다.
func (w *Workspace) Spectrum(dst, mgc []float64, alpha, gamma float64, fftLength int, output OutputFormat) ([]float64, error) {
	if err := checkFFTLength(fftLength); err != nil {
		return nil, err
	}
	if !output.valid() {
		return nil, errors.Errorf("invalid output format: %d", int(output))
	}

	w.re = grow(w.re, fftLength)
	w.im = grow(w.im, fftLength)
	if err := w.MGCToSpectrum(w.re, w.im, mgc, alpha, gamma); err != nil {
		return nil, err
	}

	dst = grow(dst, fftLength/2+1)
	for i := range dst {
		dst[i] = output.apply(w.re[i], w.im[i])
	}
	return dst, nil
}
