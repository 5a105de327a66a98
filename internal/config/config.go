// Package config handles converter configuration loading and management.
package config

import (
	"github.com/pavelsg/panocube/pkg/projection"
)

// Config holds all panocube settings.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Batch      BatchConfig      `yaml:"batch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig holds the geometry of the rendered faces.
type ProjectionConfig struct {
	FaceSize   int               `yaml:"face_size"`
	FOV        float64           `yaml:"fov"`
	Directions []DirectionConfig `yaml:"directions"`
}

// DirectionConfig names one viewing orientation in degrees.
type DirectionConfig struct {
	Name  string  `yaml:"name"`
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	Roll  float64 `yaml:"roll"`
}

// BatchConfig holds the directory walk and output settings.
type BatchConfig struct {
	InputDir     string   `yaml:"input_dir"`
	OutputDir    string   `yaml:"output_dir"`
	Extensions   []string `yaml:"extensions"`
	OutputFormat string   `yaml:"output_format"` // jpg or png
	JPEGQuality  int      `yaml:"jpeg_quality"`
	Workers      int      `yaml:"workers"` // 0 = one per CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: the four canonical
// horizontal faces at 512x512 with a 90 degree field of view, JPEG output.
func Default() *Config {
	var dirs []DirectionConfig
	for _, d := range projection.CanonicalDirections() {
		dirs = append(dirs, DirectionConfig{Name: d.Name, Yaw: d.Yaw, Pitch: d.Pitch, Roll: d.Roll})
	}

	return &Config{
		Projection: ProjectionConfig{
			FaceSize:   projection.DefaultFaceSize,
			FOV:        projection.DefaultFOV,
			Directions: dirs,
		},
		Batch: BatchConfig{
			InputDir:     ".",
			OutputDir:    "faces",
			Extensions:   []string{".jpg", ".jpeg", ".png"},
			OutputFormat: "jpg",
			JPEGQuality:  95,
			Workers:      0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DirectionList converts the configured directions into the projection
// package's type.
func (p ProjectionConfig) DirectionList() []projection.Direction {
	dirs := make([]projection.Direction, len(p.Directions))
	for i, d := range p.Directions {
		dirs[i] = projection.Direction{Name: d.Name, Yaw: d.Yaw, Pitch: d.Pitch, Roll: d.Roll}
	}
	return dirs
}
