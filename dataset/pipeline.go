package dataset

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/voxlab/emoprep/config"
	"github.com/voxlab/emoprep/mfcc"
)

// Pipeline converts a directory tree of labeled recordings into the
// stacked feature tensor and label vector consumed by model training.
type Pipeline struct {
	cfg *config.Root
	ext *mfcc.Extractor
	log *slog.Logger

	// Progress draws a terminal progress bar during the batch run.
	Progress io.Writer
}

// New builds a Pipeline from run parameters. A nil logger falls back
// to slog.Default.
func New(cfg *config.Root, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	ext := mfcc.New()
	ext.SampleRate = cfg.Audio.SampleRate
	ext.NumCoeffs = cfg.Audio.NumCoeffs
	ext.NumMels = cfg.Audio.NumMels
	ext.FFTSize = cfg.Audio.FFTSize
	ext.HopSize = cfg.Audio.HopSize
	ext.MaxFrames = cfg.Audio.MaxFrames
	return &Pipeline{cfg: cfg, ext: ext, log: logger, Progress: io.Discard}
}

// Discover lists the decodable audio files under root, recursively.
// A missing root yields an empty list.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".wav", ".flac", ".mp3":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return files, nil
}

// Run executes the full conversion: discovery, per-file extraction and
// labeling, stacking, and persistence. Files that fail to decode or
// whose name carries no known emotion code are skipped; when nothing
// survives, no output is written.
func (p *Pipeline) Run(ctx context.Context) error {
	files, err := Discover(p.cfg.Paths.RawDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.log.Info("no audio files found", "dir", p.cfg.Paths.RawDir)
		return nil
	}
	p.log.Info("starting feature extraction", "files", len(files), "dir", p.cfg.Paths.RawDir)

	bars := mpb.New(mpb.WithWidth(64), mpb.WithOutput(p.Progress))
	bar := bars.AddBar(int64(len(files)),
		mpb.PrependDecorators(
			decor.Name("Extracting: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	var feats [][][]float64
	var labels []string
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			bar.Abort(true)
			bars.Wait()
			return err
		}

		label, ok := LabelFor(filepath.Base(path))
		if !ok {
			bar.Increment()
			continue
		}
		m, err := p.ext.FromFile(path)
		if err != nil {
			p.log.Warn("skipping file", "path", path, "err", err)
			bar.Increment()
			continue
		}
		feats = append(feats, m)
		labels = append(labels, label)
		bar.Increment()
	}
	bars.Wait()

	if len(feats) == 0 {
		p.log.Info("no usable samples, nothing written", "dir", p.cfg.Paths.RawDir)
		return nil
	}
	return p.persist(feats, labels)
}
