// Command emoprep converts a directory of labeled speech recordings
// into a fixed-shape MFCC feature dataset.
//
// It walks the raw data directory recursively, extracts a normalized
// MFCC matrix per audio file, derives the emotion label from the
// RAVDESS filename convention and writes the stacked results as two
// NumPy arrays (X.npy, y.npy) under the processed data directory.
//
// Usage:
//
//	emoprep [-config config.yaml] [-in rawdir] [-out outdir]
//
// Without flags the compiled-in defaults are used: input from
// data/Audio_Speech_Actors_01-24, output to data/processed.
package main
