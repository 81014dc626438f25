package dataset

import (
	"os"
	"path/filepath"

	"github.com/voxlab/emoprep/npy"
)

const (
	featuresFile = "X.npy"
	labelsFile   = "y.npy"
)

// persist stacks the extracted matrices into one tensor of shape
// (samples, frames, coeffs, 1) and writes it alongside the label
// vector. The trailing singleton dimension is the channel axis the
// downstream CNN input layer expects.
func (p *Pipeline) persist(feats [][][]float64, labels []string) error {
	frames := p.cfg.Audio.MaxFrames
	coeffs := p.cfg.Audio.NumCoeffs
	shape := []int{len(feats), frames, coeffs, 1}

	flat := make([]float64, 0, len(feats)*frames*coeffs)
	for _, m := range feats {
		for _, row := range m {
			flat = append(flat, row...)
		}
	}

	outDir := p.cfg.Paths.OutDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	xPath := filepath.Join(outDir, featuresFile)
	if err := npy.WriteFloat64(xPath, shape, flat); err != nil {
		return err
	}
	yPath := filepath.Join(outDir, labelsFile)
	if err := npy.WriteStrings(yPath, labels); err != nil {
		return err
	}

	p.log.Info("dataset written",
		"samples", len(feats),
		"frames", frames,
		"coeffs", coeffs,
		"features", xPath,
		"labels", yPath,
	)
	return nil
}
