// Package npy reads and writes NumPy .npy array files.
package npy
