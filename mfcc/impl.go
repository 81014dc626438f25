package mfcc

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const melBreakFrequencyHertz = 700.0
const melHighFrequencyQ = 1127.0

func melToHz(value float64) float64 {
	return melBreakFrequencyHertz * (math.Exp(value/melHighFrequencyQ) - 1.0)
}

func hzToMel(value float64) float64 {
	return melHighFrequencyQ * math.Log(1.0+(value/melBreakFrequencyHertz))
}

// melEnergies folds a one-sided power spectrum into len(dst) mel bands.
// Each band averages the spectrum bins between two consecutive edges.
func melEnergies(power, edges, dst []float64) {
	for m := range dst {
		ilo := int(edges[m])
		ihi := int(edges[m+1])
		if ihi <= ilo {
			ihi = ilo + 1
		}
		if ihi > len(power) {
			ihi = len(power)
		}
		if ilo >= len(power) {
			dst[m] = 0
			continue
		}
		dst[m] = floats.Sum(power[ilo:ihi]) / float64(ihi-ilo)
	}
}

func spectralNormalize(buf []float64) {
	for i := range buf {
		if buf[i] < 1e-5 {
			buf[i] = 1e-5
		}
		buf[i] = math.Log(buf[i])
	}
}

// pad extends buf with trailing zeros so that at least one full
// analysis window fits.
func pad(buf []float64, window int) []float64 {
	if len(buf) >= window {
		return buf
	}
	out := make([]float64, window)
	copy(out, buf)
	return out
}
