package service

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ImageOptimizer converts charm images into small JPEG renditions and caches
// them on disk so the catalog grid does not serve full-size assets.
type ImageOptimizer struct {
	cacheDir string
}

// NewImageOptimizer creates an optimizer writing to the given cache
// directory.
func NewImageOptimizer(cacheDir string) *ImageOptimizer {
	return &ImageOptimizer{cacheDir: cacheDir}
}

// EnsureCacheDir ensures the cache directory exists.
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a charm filename and size
// ("thumb" or "medium").
func (o *ImageOptimizer) CachePath(filename, size string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	return filepath.Join(o.cacheDir, fmt.Sprintf("charm_%s_%s.jpg", base, size))
}

// Cached reads a cached rendition, if present.
func (o *ImageOptimizer) Cached(filename, size string) ([]byte, bool) {
	data, err := os.ReadFile(o.CachePath(filename, size))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Optimize converts raw image bytes into a resized JPEG rendition.
// Note: JPEG rather than WebP to avoid a CGO dependency.
func (o *ImageOptimizer) Optimize(data []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	maxSize := maxSizeThumb
	quality := qualityThumb
	if size == "medium" {
		maxSize = maxSizeMedium
		quality = qualityMedium
	}

	fitted := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Rendition returns the cached rendition for a charm, building and caching
// it from the source bytes on a miss.
func (o *ImageOptimizer) Rendition(filename string, source []byte, size string) ([]byte, error) {
	if data, ok := o.Cached(filename, size); ok {
		return data, nil
	}
	data, err := o.Optimize(source, size)
	if err != nil {
		return nil, err
	}
	if err := o.save(filename, size, data); err != nil {
		log.Printf("warning: failed to cache %s rendition of %s: %v", size, filename, err)
	}
	return data, nil
}

// WarmCache pre-builds both renditions for a freshly uploaded charm.
func (o *ImageOptimizer) WarmCache(filename string, source []byte) error {
	for _, size := range []string{"thumb", "medium"} {
		data, err := o.Optimize(source, size)
		if err != nil {
			return err
		}
		if err := o.save(filename, size, data); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate removes cached renditions for a charm.
func (o *ImageOptimizer) Invalidate(filename string) {
	for _, size := range []string{"thumb", "medium"} {
		if err := os.Remove(o.CachePath(filename, size)); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: failed to remove cached image: %v", err)
		}
	}
}

func (o *ImageOptimizer) save(filename, size string, data []byte) error {
	if err := o.EnsureCacheDir(); err != nil {
		return err
	}
	path := o.CachePath(filename, size)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Printf("✓ Image cached: %s", path)
	return nil
}
