package mfcc

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"path/filepath"
	"strings"

	"github.com/r9y9/gossp/stft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Extractor holds the analysis geometry for MFCC extraction.
type Extractor struct {
	SampleRate int
	NumCoeffs  int
	NumMels    int
	FFTSize    int
	HopSize    int
	MelFmin    float64
	// MelFmax caps the filterbank; zero means Nyquist.
	MelFmax float64
	// MaxFrames is the row count every FromFile result is normalized to.
	MaxFrames int
}

// New creates an Extractor with default values.
func New() *Extractor {
	return &Extractor{
		SampleRate: 22050,
		NumCoeffs:  40,
		NumMels:    128,
		FFTSize:    2048,
		HopSize:    512,
		MelFmin:    0,
		MelFmax:    0,
		MaxFrames:  173,
	}
}

var ErrNoAudio = errors.New("mfcc: empty waveform")
var ErrUnsupported = errors.New("mfcc: unsupported audio format")

// FromFile decodes an audio file, resamples it to the target rate and
// returns its MFCC matrix normalized to exactly MaxFrames rows.
func (e *Extractor) FromFile(path string) ([][]float64, error) {
	var buf []float64
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		buf, err = LoadWav(path, e.SampleRate)
	case ".flac":
		buf, err = LoadFlac(path, e.SampleRate)
	case ".mp3":
		buf, err = LoadMP3(path, e.SampleRate)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	m, err := e.Transform(buf)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", path, err)
	}
	return FixLength(m, e.MaxFrames, e.NumCoeffs), nil
}

// Transform computes the MFCC matrix of a mono waveform, one row per
// analysis frame and NumCoeffs columns per row.
func (e *Extractor) Transform(buf []float64) ([][]float64, error) {
	if len(buf) == 0 {
		return nil, ErrNoAudio
	}
	buf = pad(buf, e.FFTSize)

	s := stft.New(e.HopSize, e.FFTSize)
	spectrum := s.STFT(buf)

	bins := e.FFTSize/2 + 1
	edges := e.melEdges(bins)
	fft := fourier.NewFFT(e.NumMels)

	out := make([][]float64, 0, len(spectrum))
	power := make([]float64, bins)
	mel := make([]float64, e.NumMels)
	for _, frame := range spectrum {
		for j := 0; j < bins; j++ {
			re, im := real(frame[j]), imag(frame[j])
			power[j] = re*re + im*im
		}
		melEnergies(power, edges, mel)
		spectralNormalize(mel)
		out = append(out, dct2(fft, mel, e.NumCoeffs))
	}
	return out, nil
}

// FixLength normalizes m to exactly frames rows of cols columns,
// appending zero rows when short and keeping only the leading rows
// when long. The retained rows are shared with m, not copied.
func FixLength(m [][]float64, frames, cols int) [][]float64 {
	if len(m) >= frames {
		return m[:frames]
	}
	out := make([][]float64, frames)
	copy(out, m)
	for i := len(m); i < frames; i++ {
		out[i] = make([]float64, cols)
	}
	return out
}

// melEdges returns NumMels+1 filterbank band edges in spectrum-bin
// units, spaced uniformly on the mel scale between MelFmin and MelFmax.
func (e *Extractor) melEdges(bins int) []float64 {
	nyquist := float64(e.SampleRate) / 2
	fmax := e.MelFmax
	if fmax <= 0 || fmax > nyquist {
		fmax = nyquist
	}
	mlo := hzToMel(e.MelFmin)
	mhi := hzToMel(fmax)
	edges := make([]float64, e.NumMels+1)
	for i := range edges {
		hz := melToHz(mlo + (mhi-mlo)*float64(i)/float64(e.NumMels))
		edges[i] = hz / nyquist * float64(bins-1)
	}
	return edges
}

// dct2 computes the orthonormal DCT-II of mel and returns the first
// want coefficients. The DCT is evaluated through a half-length FFT
// with the even-odd reshuffle, so the per-frame cost stays O(n log n).
func dct2(fft *fourier.FFT, mel []float64, want int) []float64 {
	n := len(mel)
	v := make([]float64, n)
	for i := 0; i < (n+1)/2; i++ {
		v[i] = mel[2*i]
	}
	for i := 0; 2*i+1 < n; i++ {
		v[n-1-i] = mel[2*i+1]
	}
	coeff := fft.Coefficients(nil, v)

	out := make([]float64, want)
	for k := 0; k < want && k < n; k++ {
		var c complex128
		if k <= n/2 {
			c = coeff[k]
		} else {
			c = cmplx.Conj(coeff[n-k])
		}
		angle := -math.Pi * float64(k) / float64(2*n)
		re := 2 * (real(c)*math.Cos(angle) - imag(c)*math.Sin(angle))
		if k == 0 {
			out[k] = re * math.Sqrt(1/float64(4*n))
		} else {
			out[k] = re * math.Sqrt(1/float64(2*n))
		}
	}
	return out
}
