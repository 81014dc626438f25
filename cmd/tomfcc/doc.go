// Command tomfcc converts a single audio file (WAV/FLAC/MP3) to a
// fixed-shape MFCC feature matrix saved as a NumPy .npy file.
//
// Usage:
//
//	tomfcc [-wav] <audio_file>
//
// The output is written next to the input as <audio_file>.npy. With
// -wav the decoded mono waveform is also saved as <audio_file>.mono.wav,
// which is useful for checking the resampling path by ear.
package main
