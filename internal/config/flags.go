package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagIn      = flag.String("in", "", "Input directory with panorama images")
	flagOut     = flag.String("out", "", "Output directory for face images")
	flagSize    = flag.Int("size", 0, "Face edge length in pixels")
	flagFOV     = flag.Float64("fov", 0, "Field of view per face in degrees")
	flagFormat  = flag.String("format", "", "Output format (jpg or png)")
	flagWorkers = flag.Int("workers", 0, "Concurrent panoramas (0 = one per CPU)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagIn != "" {
		cfg.Batch.InputDir = *flagIn
	}
	if *flagOut != "" {
		cfg.Batch.OutputDir = *flagOut
	}
	if *flagSize > 0 {
		cfg.Projection.FaceSize = *flagSize
	}
	if *flagFOV > 0 {
		cfg.Projection.FOV = *flagFOV
	}
	if *flagFormat != "" {
		cfg.Batch.OutputFormat = *flagFormat
	}
	if *flagWorkers > 0 {
		cfg.Batch.Workers = *flagWorkers
	}
}
