package mfcc

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	beepflac "github.com/faiface/beep/flac"
	beepmp3 "github.com/faiface/beep/mp3"
	beepwav "github.com/faiface/beep/wav"
)

// resampleQuality trades accuracy for speed in beep's resampler; 4 is
// good enough for feature extraction.
const resampleQuality = 4

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// LoadWav decodes a WAV file to a mono sample vector at the given rate.
func LoadWav(path string, rate int) ([]float64, error) {
	return load(path, rate, func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return beepwav.Decode(f)
	})
}

// LoadFlac decodes a FLAC file to a mono sample vector at the given rate.
func LoadFlac(path string, rate int) ([]float64, error) {
	return load(path, rate, func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return beepflac.Decode(f)
	})
}

// LoadMP3 decodes an MP3 file to a mono sample vector at the given rate.
func LoadMP3(path string, rate int) ([]float64, error) {
	return load(path, rate, func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return beepmp3.Decode(f)
	})
}

func load(path string, rate int, decode decodeFunc) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, format, err := decode(f)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if int(format.SampleRate) != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, beep.SampleRate(rate), stream)
	}

	var out []float64
	samples := make([][2]float64, 512)
	for {
		n, ok := src.Stream(samples)
		if !ok {
			break
		}
		for _, s := range samples[:n] {
			out = append(out, (s[0]+s[1])/2)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoAudio
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("stream %s: %w", path, err)
	}
	return out, nil
}
