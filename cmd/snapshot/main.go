// Package main renders still frames of the campsite without a window.
//
// Usage:
//
//	snapshot --time 0,15,30,45 --out frames --width 640 --height 360 --fire
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/tianguis/internal/config"
	"github.com/Faultbox/tianguis/internal/engine/debug"
	"github.com/Faultbox/tianguis/internal/engine/scene"
	"github.com/Faultbox/tianguis/internal/logger"
	"github.com/Faultbox/tianguis/internal/setup"
)

var (
	flagTimes = flag.String("time", "0,15,30,45", "Comma-separated scene times in seconds")
	flagOut   = flag.String("out", "frames", "Output directory")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	times, err := parseTimes(*flagTimes)
	if err != nil {
		logger.Error("invalid --time", zap.Error(err))
		os.Exit(1)
	}

	if err := run(cfg, times, *flagOut); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

// run renders one frame per scene time into outDir.
func run(cfg *config.Config, times []float64, outDir string) error {
	s := setup.NewScene(cfg)
	r := scene.NewRenderer(cfg.Render.Workers)
	defer r.Close()

	out := debug.NewScreenshotCapture(outDir, "")
	img := image.NewRGBA(image.Rect(0, 0, cfg.Window.Width, cfg.Window.Height))

	for _, t := range times {
		s.Update(t)
		r.Render(s, img)
		path, err := out.Save(img, debug.FrameName(t))
		if err != nil {
			return fmt.Errorf("frame at %gs: %w", t, err)
		}
		sun := s.Sun()
		logger.Info("frame written",
			zap.String("path", path),
			zap.Float32("time_of_day", sun.TimeOfDay),
			zap.Float32("visibility", sun.Visibility),
			zap.Bool("fire", s.Fire.Enabled()),
		)
	}
	return nil
}

// parseTimes parses a comma-separated list of finite, non-negative seconds.
func parseTimes(list string) ([]float64, error) {
	var times []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		t, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("time %q is not finite", field)
		}
		if t < 0 {
			return nil, fmt.Errorf("negative time %v", t)
		}
		times = append(times, t)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("no times given")
	}
	return times, nil
}
