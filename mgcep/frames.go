package mgcep

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// SampleFormat은 raw 프레임 스트림의 표본 형식이다. 모든 값은 little-endian이다.
type SampleFormat int

const (
	Float32 SampleFormat = iota
	Float64
)

func (f SampleFormat) size() int {
	if f == Float64 {
		return 8
	}
	return 4
}

// ParseSampleFormat은 "float", "f", "float32" 또는 "double", "d", "float64" 를 SampleFormat으로 바꾼다.
func ParseSampleFormat(s string) (SampleFormat, error) {
	switch s {
	case "float", "f", "float32":
		return Float32, nil
	case "double", "d", "float64":
		return Float64, nil
	default:
		return 0, errors.Errorf("unknown sample format: %q", s)
	}
}

// ReadFrames는 r에서 길이 frameLen의 프레임을 끝까지 읽는다.
// 마지막 프레임이 중간에 끊겨 있으면 오류를 반환한다.
func ReadFrames(r io.Reader, frameLen int, format SampleFormat) ([][]float64, error) {
	if r == nil {
		return nil, errors.New("frame reader is nil")
	}
	if frameLen <= 0 {
		return nil, errors.Errorf("invalid frame length: %d", frameLen)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read frames failed")
	}

	sampleSize := format.size()
	frameBytes := frameLen * sampleSize
	if len(data)%frameBytes != 0 {
		return nil, errors.Errorf("truncated frame: %d trailing bytes", len(data)%frameBytes)
	}

	frameCount := len(data) / frameBytes
	frames := make([][]float64, frameCount)
	buf := make([]float64, frameCount*frameLen)
	for i := range buf {
		off := i * sampleSize
		if format == Float64 {
			buf[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
		} else {
			buf[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
		}
	}
	for i := range frames {
		frames[i] = buf[i*frameLen : (i+1)*frameLen]
	}

	return frames, nil
}

// WriteFrames는 프레임들을 이어 붙여 w에 기록한다.
func WriteFrames(w io.Writer, frames [][]float64, format SampleFormat) error {
	if w == nil {
		return errors.New("frame writer is nil")
	}

	bw := bufio.NewWriter(w)
	var scratch [8]byte
	for _, frame := range frames {
		for _, v := range frame {
			var b []byte
			if format == Float64 {
				binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
				b = scratch[:8]
			} else {
				binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(float32(v)))
				b = scratch[:4]
			}
			if _, err := bw.Write(b); err != nil {
				return errors.Wrap(err, "write frame failed")
			}
		}
	}
	return errors.Wrap(bw.Flush(), "flush frames failed")
}
