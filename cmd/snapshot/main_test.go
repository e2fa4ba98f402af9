package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/tianguis/internal/config"
)

func TestParseTimes(t *testing.T) {
	got, err := parseTimes("0, 15,30,,45.5")
	if err != nil {
		t.Fatalf("parseTimes: %v", err)
	}
	want := []float64{0, 15, 30, 45.5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("times[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"", "abc", "-1", " , ", "inf", "0,nan", "-Inf"} {
		if _, err := parseTimes(bad); err == nil {
			t.Errorf("parseTimes(%q) succeeded", bad)
		}
	}
}

func TestRunWritesFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 16
	cfg.Window.Height = 9
	cfg.Render.Workers = 2
	dir := t.TempDir()

	if err := run(cfg, []float64{0, 15}, dir); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"frame_0.png", "frame_15.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
