package npy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadFloat64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.npy")
	shape := []int{2, 3, 2, 1}
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i) * 0.5
	}

	if err := WriteFloat64(path, shape, data); err != nil {
		t.Fatalf("WriteFloat64 failed: %v", err)
	}
	got, gotShape, err := ReadFloat64(path)
	if err != nil {
		t.Fatalf("ReadFloat64 failed: %v", err)
	}
	if len(gotShape) != len(shape) {
		t.Fatalf("got shape %v, want %v", gotShape, shape)
	}
	for i := range shape {
		if gotShape[i] != shape[i] {
			t.Fatalf("got shape %v, want %v", gotShape, shape)
		}
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("element %d: got %v, want %v", i, got[i], data[i])
		}
	}
}

func TestWriteFloat64ShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.npy")
	if err := WriteFloat64(path, []int{2, 2}, make([]float64, 3)); err == nil {
		t.Error("mismatched shape accepted, want error")
	}
}

func TestWriteReadStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "y.npy")
	want := []string{"happy", "fearful", "surprised", "sad"}

	if err := WriteStrings(path, want); err != nil {
		t.Fatalf("WriteStrings failed: %v", err)
	}
	got, err := ReadStrings(path)
	if err != nil {
		t.Fatalf("ReadStrings failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWriteStringsHeaderLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "y.npy")
	if err := WriteStrings(path, []string{"neutral", "calm"}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(raw, []byte("\x93NUMPY\x01\x00")) {
		t.Fatal("missing npy magic or version")
	}
	hlen := int(raw[8]) | int(raw[9])<<8
	// numpy requires the full header to land on a 64-byte boundary
	if (10+hlen)%64 != 0 {
		t.Errorf("header length %d does not align to 64 bytes", 10+hlen)
	}
	header := string(raw[10 : 10+hlen])
	if !bytes.Contains([]byte(header), []byte("'<U7'")) {
		t.Errorf("header %q lacks '<U7' dtype (longest label has 7 runes)", header)
	}
	if !bytes.Contains([]byte(header), []byte("(2,)")) {
		t.Errorf("header %q lacks the (2,) shape", header)
	}
	// 2 elements * 7 chars * 4 bytes of UTF-32
	if got, want := len(raw)-10-hlen, 56; got != want {
		t.Errorf("payload is %d bytes, want %d", got, want)
	}
}

func TestReadStringsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.npy")
	if err := os.WriteFile(path, []byte("not a numpy file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadStrings(path); err == nil {
		t.Error("garbage accepted, want error")
	}
}
