// Package imageio loads and saves the image files the converter works on.
//
// Decoding goes through image.Decode with the JPEG, PNG, WebP, BMP and TIFF
// decoders registered, so any of those can serve as panorama input; whatever
// the decoder returns is converted to RGBA. Encoding supports JPEG and PNG,
// picked by the destination extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality matches the quality the historical exporter wrote.
const DefaultJPEGQuality = 95

// ErrUnsupportedFormat reports a destination extension with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load decodes the image at path into RGBA.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as *image.RGBA, converting when necessary. The result
// always has its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Save encodes img to path. The encoder is picked from the extension,
// .jpg/.jpeg or .png. quality applies to JPEG only; zero or negative means
// DefaultJPEGQuality, values above 100 are capped.
func Save(path string, img image.Image, quality int) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if ext == ".png" {
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		return nil
	}

	if quality <= 0 {
		quality = DefaultJPEGQuality
	} else if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encoding JPEG: %w", err)
	}
	return nil
}
