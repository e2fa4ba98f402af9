// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Render      RenderConfig     `yaml:"render"`
	Cycle       CycleConfig      `yaml:"cycle"`
	Fire        FireConfig       `yaml:"fire"`
	Ground      GroundConfig     `yaml:"ground"`
	Sky         SkyConfig        `yaml:"sky"`
	Camera      CameraConfig     `yaml:"camera"`
	Audio       AudioConfig      `yaml:"audio"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig controls the CPU renderer.
type RenderConfig struct {
	Scale   float32 `yaml:"scale"`   // frame size relative to the window
	Workers int     `yaml:"workers"` // 0 uses every CPU
}

// CycleConfig controls the day/night cycle.
type CycleConfig struct {
	Length      float64 `yaml:"length"`       // seconds per full cycle
	TimeScale   float64 `yaml:"time_scale"`   // scene seconds per real second
	StartOffset float64 `yaml:"start_offset"` // scene seconds at launch
}

// FireConfig holds campfire settings.
type FireConfig struct {
	Enabled   bool       `yaml:"enabled"`
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Linear    float32    `yaml:"linear"`
	Quadratic float32    `yaml:"quadratic"`
}

// GroundConfig holds the ground albedo settings.
type GroundConfig struct {
	Texture string  `yaml:"texture"` // empty selects the procedural ground
	Scale   float32 `yaml:"scale"`
}

// SkyConfig holds sky tuning.
type SkyConfig struct {
	MountainPeak     float32 `yaml:"mountain_peak"`
	MountainTextured bool    `yaml:"mountain_textured"`
	CloudSpeed       float32 `yaml:"cloud_speed"`
}

// CameraConfig holds the initial camera. Angles are in degrees.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	FOV         float32    `yaml:"fov"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// AudioConfig holds ambience settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Crackle string  `yaml:"crackle"` // WAV file looped while the fire burns
	Volume  float32 `yaml:"volume"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Tianguis",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: RenderConfig{
			Scale: 0.5,
		},
		Cycle: CycleConfig{
			Length:    60,
			TimeScale: 1,
		},
		Fire: FireConfig{
			Position:  [3]float32{0, 0.3, 0},
			Color:     [3]float32{1.0, 0.55, 0.2},
			Intensity: 2.5,
			Linear:    0.05,
			Quadratic: 0.015,
		},
		Ground: GroundConfig{
			Scale: 0.25,
		},
		Sky: SkyConfig{
			MountainPeak: 0.18,
			CloudSpeed:   0.06,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 1.6, 6},
			Pitch:       -8.6,
			FOV:         60,
			Speed:       3,
			Sensitivity: 0.23,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}
