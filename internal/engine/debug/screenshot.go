// Package debug provides screenshot capture and the on-screen status overlay.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture writes frames to PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	seq       int
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// Capture saves img under a timestamped name and returns the path.
func (sc *ScreenshotCapture) Capture(img image.Image) (string, error) {
	return sc.Save(img, sc.GenerateFilename())
}

// Save writes img as PNG to name, relative to the output directory unless
// name is absolute.
func (sc *ScreenshotCapture) Save(img image.Image, name string) (string, error) {
	path := name
	if sc.outputDir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(sc.outputDir, name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

// GenerateFilename returns the next screenshot file name. A sequence number
// keeps names unique within one second.
func (sc *ScreenshotCapture) GenerateFilename() string {
	sc.seq++
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	return fmt.Sprintf("%s_%s_%03d.png", sc.prefix, timestamp, sc.seq)
}

// FrameName names a frame rendered at the given scene time.
func FrameName(elapsedSeconds float64) string {
	return fmt.Sprintf("frame_%g.png", elapsedSeconds)
}
