package mgcep

import (
	"github.com/pkg/errors"
)

const (
	defaultOrder     = 24
	defaultAlpha     = 0.42
	defaultGamma     = 0.0
	defaultFFTLength = 256
)

// Config는 MGC -> 스펙트럼 변환에 사용할 설정값을 담는다.
// FFTLength가 0이면 DefaultConfig의 기본값으로 채워진다.
type Config struct {
	Order     int
	Alpha     float64
	Gamma     float64
	FFTLength int
	Output    OutputFormat
}

// DefaultConfig는 16kHz 음성에 흔히 쓰이는 기본 설정을 반환한다.
func DefaultConfig() Config {
	return Config{
		Order:     defaultOrder,
		Alpha:     defaultAlpha,
		Gamma:     defaultGamma,
		FFTLength: defaultFFTLength,
		Output:    OutputPower,
	}
}

func (cfg Config) resolve() (Config, error) {
	if cfg.FFTLength == 0 {
		cfg.FFTLength = defaultFFTLength
	}
	if err := checkOrder(cfg.Order); err != nil {
		return cfg, err
	}
	if err := checkAlpha(cfg.Alpha); err != nil {
		return cfg, err
	}
	if err := checkMGCGamma(cfg.Gamma); err != nil {
		return cfg, err
	}
	if err := checkFFTLength(cfg.FFTLength); err != nil {
		return cfg, err
	}
	if !cfg.Output.valid() {
		return cfg, errors.Errorf("invalid output format: %d", int(cfg.Output))
	}
	return cfg, nil
}

// Converter는 고정된 설정으로 MGC 프레임을 스펙트럼으로 바꾸는 재사용 가능한 변환기다.
// 내부 Workspace를 공유하므로 동시에 여러 goroutine에서 사용하면 안 된다.
type Converter struct {
	cfg Config
	ws  *Workspace
}

// NewConverter는 설정을 검증하고 Converter를 생성한다.
func NewConverter(cfg Config) (*Converter, error) {
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Converter{
		cfg: resolved,
		ws:  NewWorkspace(),
	}, nil
}

// Order는 입력 프레임의 cepstrum 차수를 반환한다.
func (c *Converter) Order() int {
	if c == nil {
		return 0
	}
	return c.cfg.Order
}

// Alpha는 all-pass 상수를 반환한다.
func (c *Converter) Alpha() float64 {
	if c == nil {
		return 0
	}
	return c.cfg.Alpha
}

// Gamma는 감마를 반환한다.
func (c *Converter) Gamma() float64 {
	if c == nil {
		return 0
	}
	return c.cfg.Gamma
}

// FFTLength는 FFT 길이를 반환한다.
func (c *Converter) FFTLength() int {
	if c == nil {
		return 0
	}
	return c.cfg.FFTLength
}

// NumBins는 출력 프레임 하나의 길이(FFTLength/2+1)를 반환한다.
func (c *Converter) NumBins() int {
	if c == nil {
		return 0
	}
	return c.cfg.FFTLength/2 + 1
}

// Output은 출력 형식을 반환한다.
func (c *Converter) Output() OutputFormat {
	if c == nil {
		return OutputPower
	}
	return c.cfg.Output
}

// Convert는 MGC 프레임 하나를 스펙트럼으로 변환한다. 결과는 매번 새로 할당된다.
func (c *Converter) Convert(mgc []float64) ([]float64, error) {
	if c == nil {
		return nil, errors.New("converter is nil")
	}
	return c.convertInto(nil, mgc)
}

// ConvertFrames는 서로 독립적인 MGC 프레임들을 차례로 변환한다.
func (c *Converter) ConvertFrames(frames [][]float64) ([][]float64, error) {
	if c == nil {
		return nil, errors.New("converter is nil")
	}
	if len(frames) == 0 {
		return nil, errors.New("no frames to convert")
	}

	bins := c.NumBins()
	out := make([][]float64, len(frames))
	buf := make([]float64, len(frames)*bins)
	for i, frame := range frames {
		dst, err := c.convertInto(buf[i*bins:(i+1)*bins:(i+1)*bins], frame)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		out[i] = dst
	}
	return out, nil
}

func (c *Converter) convertInto(dst, mgc []float64) ([]float64, error) {
	if len(mgc) != c.cfg.Order+1 {
		return nil, errors.Errorf("cepstrum length %d does not match order %d", len(mgc), c.cfg.Order)
	}
	return c.ws.Spectrum(dst, mgc, c.cfg.Alpha, c.cfg.Gamma, c.cfg.FFTLength, c.cfg.Output)
}

// FrequencyWarp는 Workspace.FrequencyWarp의 결과를 새 슬라이스로 반환한다.
func FrequencyWarp(src []float64, order int, alpha float64) ([]float64, error) {
	return withWorkspace(func(w *Workspace) ([]float64, error) {
		return w.FrequencyWarp(nil, src, order, alpha)
	})
}

// FrequencyWarpUnscaled는 Workspace.FrequencyWarpUnscaled의 결과를 새 슬라이스로 반환한다.
func FrequencyWarpUnscaled(src []float64, order int, alpha float64) ([]float64, error) {
	return withWorkspace(func(w *Workspace) ([]float64, error) {
		return w.FrequencyWarpUnscaled(nil, src, order, alpha)
	})
}

// ConvertGeneralizedCepstrum은 Workspace.ConvertGeneralizedCepstrum의 결과를 새 슬라이스로 반환한다.
func ConvertGeneralizedCepstrum(src []float64, g1 float64, order int, g2 float64) ([]float64, error) {
	return withWorkspace(func(w *Workspace) ([]float64, error) {
		return w.ConvertGeneralizedCepstrum(nil, src, g1, order, g2)
	})
}

// ConvertMGC는 Workspace.ConvertMGC의 결과를 새 슬라이스로 반환한다.
func ConvertMGC(src []float64, a1, g1 float64, order int, a2, g2 float64) ([]float64, error) {
	return withWorkspace(func(w *Workspace) ([]float64, error) {
		return w.ConvertMGC(nil, src, a1, g1, order, a2, g2)
	})
}

// PowerSpectrum은 mel-generalized cepstrum의 파워 스펙트럼을 fftLength/2+1 개의 bin으로 반환한다.
func PowerSpectrum(mgc []float64, alpha, gamma float64, fftLength int) ([]float64, error) {
	return withWorkspace(func(w *Workspace) ([]float64, error) {
		return w.PowerSpectrum(mgc, alpha, gamma, fftLength)
	})
}
