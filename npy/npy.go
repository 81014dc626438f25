package npy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kshedden/gonpy"
)

// ErrBadHeader is returned when a file does not carry a readable npy header.
var ErrBadHeader = errors.New("npy: malformed header")

var magic = []byte("\x93NUMPY")

// WriteFloat64 serializes data as a C-order float64 array of the given
// shape. The product of shape must equal len(data).
func WriteFloat64(path string, shape []int, data []float64) error {
	n := 1
	for _, s := range shape {
		n *= s
	}
	if n != len(data) {
		return fmt.Errorf("npy: shape %v does not cover %d elements", shape, len(data))
	}
	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("npy: create %s: %w", path, err)
	}
	w.Shape = shape
	w.ColumnMajor = false
	w.Endian = binary.LittleEndian
	w.Version = 1
	if err := w.WriteFloat64(data); err != nil {
		return fmt.Errorf("npy: write %s: %w", path, err)
	}
	return nil
}

// ReadFloat64 loads a float64 array written by WriteFloat64, returning
// the flat data and its shape.
func ReadFloat64(path string) ([]float64, []int, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("npy: open %s: %w", path, err)
	}
	data, err := r.GetFloat64()
	if err != nil {
		return nil, nil, fmt.Errorf("npy: read %s: %w", path, err)
	}
	return data, r.Shape, nil
}

// WriteStrings serializes vals as a 1-D numpy unicode array ("<Un"
// dtype, UTF-32LE code units, zero-padded to the longest element).
// gonpy only covers numeric dtypes, so the header and payload are
// produced here directly.
func WriteStrings(path string, vals []string) error {
	width := 1
	for _, v := range vals {
		if n := len([]rune(v)); n > width {
			width = n
		}
	}

	descr := fmt.Sprintf("{'descr': '<U%d', 'fortran_order': False, 'shape': (%d,), }", width, len(vals))
	// total header (magic + version + length word + dict + newline)
	// padded with spaces to a 64-byte boundary
	pad := 64 - (len(magic)+2+2+len(descr)+1)%64
	if pad == 64 {
		pad = 0
	}
	header := descr + strings.Repeat(" ", pad) + "\n"

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("npy: create %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 0, len(magic)+4+len(header)+4*width*len(vals))
	buf = append(buf, magic...)
	buf = append(buf, 1, 0)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(header)))
	buf = append(buf, header...)
	cell := make([]byte, 4*width)
	for _, v := range vals {
		for i := range cell {
			cell[i] = 0
		}
		for i, r := range []rune(v) {
			binary.LittleEndian.PutUint32(cell[4*i:], uint32(r))
		}
		buf = append(buf, cell...)
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("npy: write %s: %w", path, err)
	}
	return nil
}

var descrRe = regexp.MustCompile(`'descr':\s*'<U(\d+)'.*'shape':\s*\((\d+),\)`)

// ReadStrings loads a 1-D unicode array written by WriteStrings.
func ReadStrings(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("npy: open %s: %w", path, err)
	}
	if len(raw) < len(magic)+4 || string(raw[:len(magic)]) != string(magic) {
		return nil, ErrBadHeader
	}
	hlen := int(binary.LittleEndian.Uint16(raw[len(magic)+2:]))
	body := raw[len(magic)+4:]
	if len(body) < hlen {
		return nil, ErrBadHeader
	}
	m := descrRe.FindStringSubmatch(string(body[:hlen]))
	if m == nil {
		return nil, ErrBadHeader
	}
	width, _ := strconv.Atoi(m[1])
	count, _ := strconv.Atoi(m[2])
	data := body[hlen:]
	if len(data) < 4*width*count {
		return nil, ErrBadHeader
	}

	out := make([]string, count)
	for i := 0; i < count; i++ {
		cell := data[4*width*i : 4*width*(i+1)]
		runes := make([]rune, 0, width)
		for j := 0; j < width; j++ {
			r := binary.LittleEndian.Uint32(cell[4*j:])
			if r == 0 {
				break
			}
			runes = append(runes, rune(r))
		}
		out[i] = string(runes)
	}
	return out, nil
}
