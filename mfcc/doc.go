// Package mfcc extracts fixed-shape mel-frequency cepstral coefficient
// matrices from speech recordings.
//
// An Extractor decodes WAV/FLAC/MP3 input to a mono waveform at a fixed
// sample rate, runs an STFT, folds the power spectrum into log mel-band
// energies and applies an orthonormal DCT-II, producing one coefficient
// row per analysis frame. FromFile additionally normalizes the row
// count by zero-padding or truncation so every file in a corpus yields
// an identically shaped matrix.
package mfcc
