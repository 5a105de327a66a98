// Package batch walks a directory of panoramas and writes the projected
// cube faces for each one.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pavelsg/panocube/internal/config"
	"github.com/pavelsg/panocube/internal/imageio"
	"github.com/pavelsg/panocube/internal/logger"
	"github.com/pavelsg/panocube/pkg/projection"
)

// Stats summarizes one batch run.
type Stats struct {
	Processed int // panoramas fully converted
	Skipped   int // inputs that could not be decoded
	Faces     int // face images written
}

// Processor converts every panorama in the configured input directory.
type Processor struct {
	cfg        *config.Config
	engine     *projection.Engine
	directions []projection.Direction
	exts       map[string]bool
	outExt     string
	workers    int
}

// New builds a Processor from the configuration. The projection geometry is
// validated here so a bad face size or field of view fails before any file
// is touched.
func New(cfg *config.Config) (*Processor, error) {
	engine, err := projection.NewEngine(cfg.Projection.FaceSize, cfg.Projection.FOV)
	if err != nil {
		return nil, err
	}

	var outExt string
	switch strings.ToLower(cfg.Batch.OutputFormat) {
	case "", "jpg", "jpeg":
		outExt = ".jpg"
	case "png":
		outExt = ".png"
	default:
		return nil, fmt.Errorf("unknown output format %q (want jpg or png)", cfg.Batch.OutputFormat)
	}

	exts := make(map[string]bool, len(cfg.Batch.Extensions))
	for _, ext := range cfg.Batch.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = true
	}

	workers := cfg.Batch.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	dirs := cfg.Projection.DirectionList()
	if len(dirs) == 0 {
		dirs = projection.CanonicalDirections()
	}

	return &Processor{
		cfg:        cfg,
		engine:     engine,
		directions: dirs,
		exts:       exts,
		outExt:     outExt,
		workers:    workers,
	}, nil
}

// Run converts the batch, processing up to the configured number of
// panoramas concurrently. Inputs that fail to decode are logged and skipped;
// anything that prevents writing output aborts the run.
func (p *Processor) Run(ctx context.Context) (Stats, error) {
	entries, err := os.ReadDir(p.cfg.Batch.InputDir)
	if err != nil {
		return Stats{}, fmt.Errorf("reading input directory: %w", err)
	}
	if err := os.MkdirAll(p.cfg.Batch.OutputDir, 0755); err != nil {
		return Stats{}, fmt.Errorf("creating output directory: %w", err)
	}

	var (
		mu    sync.Mutex
		stats Stats
	)

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(p.workers)

	for _, entry := range entries {
		if entry.IsDir() || !p.wantsFile(entry.Name()) {
			continue
		}

		name := entry.Name()
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			faces, err := p.processOne(name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				return err
			}
			if faces == 0 {
				stats.Skipped++
				return nil
			}
			stats.Processed++
			stats.Faces += faces
			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

// processOne converts a single panorama and returns the number of faces
// written. A decode failure returns (0, nil): the file is skipped, the batch
// goes on.
func (p *Processor) processOne(name string) (int, error) {
	src := filepath.Join(p.cfg.Batch.InputDir, name)

	pano, err := imageio.Load(src)
	if err != nil {
		logger.Warn("skipping unreadable panorama", zap.String("path", src), zap.Error(err))
		return 0, nil
	}

	faces, err := p.engine.Project(pano, p.directions)
	if err != nil {
		return 0, fmt.Errorf("projecting %s: %w", name, err)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, face := range faces {
		out := filepath.Join(p.cfg.Batch.OutputDir,
			fmt.Sprintf("%s_%s%s", base, face.Direction.Name, p.outExt))
		if err := imageio.Save(out, face.Image, p.cfg.Batch.JPEGQuality); err != nil {
			return 0, fmt.Errorf("writing %s: %w", out, err)
		}
	}

	logger.Debug("converted panorama",
		zap.String("panorama", name),
		zap.Int("faces", len(faces)))
	return len(faces), nil
}

// wantsFile reports whether the file name carries one of the configured
// input extensions.
func (p *Processor) wantsFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	return p.exts[ext]
}
