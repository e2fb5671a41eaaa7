// Command mgc2sp converts a stream of mel-generalized cepstrum frames into spectra.
//
// Usage:
//
//	mgc2sp [-m order] [-a alpha] [-g gamma] [-l fftlen] [-o power|db|log|amplitude|phase]
//	       [-f float|double] [-i input] [-out output] [-v]
//
// Frames are raw little-endian samples of length order+1. Each output frame has fftlen/2+1 values.
// Input defaults to stdin and output to stdout.
package main
