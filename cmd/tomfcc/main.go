package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxlab/emoprep/mfcc"
	"github.com/voxlab/emoprep/npy"
)

func main() {
	dumpWav := flag.Bool("wav", false, "also write the decoded mono waveform next to the input")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: tomfcc [-wav] <audio_file>")
		os.Exit(1)
	}
	filename := flag.Arg(0)

	e := mfcc.New()

	m, err := e.FromFile(filename)
	if err != nil {
		fmt.Printf("Error extracting MFCC features: %v\n", err)
		os.Exit(1)
	}

	flat := make([]float64, 0, len(m)*e.NumCoeffs)
	for _, row := range m {
		flat = append(flat, row...)
	}
	outputFile := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".npy"
	if err := npy.WriteFloat64(outputFile, []int{len(m), e.NumCoeffs}, flat); err != nil {
		fmt.Printf("Error writing feature matrix: %v\n", err)
		os.Exit(1)
	}

	if *dumpWav {
		var buf []float64
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".flac":
			buf, err = mfcc.LoadFlac(filename, e.SampleRate)
		case ".mp3":
			buf, err = mfcc.LoadMP3(filename, e.SampleRate)
		default:
			buf, err = mfcc.LoadWav(filename, e.SampleRate)
		}
		if err != nil {
			fmt.Printf("Error decoding waveform: %v\n", err)
			os.Exit(1)
		}
		monoFile := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".mono.wav"
		if err := mfcc.SaveWav(monoFile, buf, e.SampleRate); err != nil {
			fmt.Printf("Error writing waveform: %v\n", err)
			os.Exit(1)
		}
	}
}
