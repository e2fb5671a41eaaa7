package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/zrma/go-mgcep/mgcep"
)

type options struct {
	cfg    mgcep.Config
	format mgcep.SampleFormat
	input  string
	output string
	debug  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := mgcep.DefaultConfig()
	opts := options{cfg: def}

	fs := flag.NewFlagSet("mgc2sp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.cfg.Order, "m", def.Order, "order of mel-generalized cepstrum")
	fs.Float64Var(&opts.cfg.Alpha, "a", def.Alpha, "all-pass constant")
	fs.Float64Var(&opts.cfg.Gamma, "g", def.Gamma, "gamma, -1 <= g <= 0")
	fs.IntVar(&opts.cfg.FFTLength, "l", def.FFTLength, "fft length, power of two >= 4")
	outputName := fs.String("o", def.Output.String(), "output format: power, db, log, amplitude, phase")
	formatName := fs.String("f", "float", "sample format of input and output: float, double")
	fs.StringVar(&opts.input, "i", "", "input file (default stdin)")
	fs.StringVar(&opts.output, "out", "", "output file (default stdout)")
	fs.BoolVar(&opts.debug, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if opts.cfg.Output, err = mgcep.ParseOutputFormat(*outputName); err != nil {
		return opts, err
	}
	if opts.format, err = mgcep.ParseSampleFormat(*formatName); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *logrus.Logger) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	conv, err := mgcep.NewConverter(opts.cfg)
	if err != nil {
		return err
	}

	frames, err := readFrames(opts.input, stdin, conv.Order()+1, opts.format)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"frames": len(frames),
		"order":  conv.Order(),
		"alpha":  conv.Alpha(),
		"gamma":  conv.Gamma(),
		"fftlen": conv.FFTLength(),
		"output": conv.Output().String(),
	}).Debug("converting frames")
	if len(frames) == 0 {
		logger.Warn("no input frames")
		return nil
	}

	spectra, err := conv.ConvertFrames(frames)
	if err != nil {
		return err
	}

	if err := writeFrames(opts.output, stdout, spectra, opts.format); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"frames": len(spectra),
		"bins":   conv.NumBins(),
	}).Debug("wrote spectra")
	return nil
}

func readFrames(path string, stdin io.Reader, frameLen int, format mgcep.SampleFormat) (frames [][]float64, err error) {
	if path == "" {
		return mgcep.ReadFrames(stdin, frameLen, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input failed")
	}
	defer func() {
		if err0 := f.Close(); err0 != nil {
			err = multierr.Append(err, err0)
		}
	}()

	return mgcep.ReadFrames(f, frameLen, format)
}

func writeFrames(path string, stdout io.Writer, frames [][]float64, format mgcep.SampleFormat) (err error) {
	if path == "" {
		return mgcep.WriteFrames(stdout, frames, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output failed")
	}
	defer func() {
		if err0 := f.Close(); err0 != nil {
			err = multierr.Append(err, err0)
		}
	}()

	return mgcep.WriteFrames(f, frames, format)
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.WithError(err).Error("mgc2sp failed")
		os.Exit(1)
	}
}
