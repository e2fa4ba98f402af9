// Package setup builds engine objects from the loaded configuration. It is
// shared by the interactive viewer and the headless snapshot tool.
package setup

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/tianguis/internal/config"
	"github.com/Faultbox/tianguis/internal/engine/camera"
	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/internal/engine/scene"
	"github.com/Faultbox/tianguis/internal/engine/sky"
	"github.com/Faultbox/tianguis/internal/engine/texture"
	"github.com/Faultbox/tianguis/internal/logger"
	"github.com/Faultbox/tianguis/pkg/math"
)

// tallPeak is the peak elevation of the tall textured range.
const tallPeak = 0.24

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// FireConfig converts the fire section.
func FireConfig(c config.FireConfig) lighting.FireConfig {
	return lighting.FireConfig{
		Enabled:   c.Enabled,
		Position:  vec3(c.Position),
		Color:     vec3(c.Color),
		Intensity: c.Intensity,
		Falloff: lighting.Falloff{
			Linear:    c.Linear,
			Quadratic: c.Quadratic,
		},
	}
}

// SkyParams converts the sky section.
func SkyParams(c config.SkyConfig) sky.Params {
	p := sky.DefaultParams()
	if c.CloudSpeed >= 0 {
		p.CloudSpeed = c.CloudSpeed
	}
	if c.MountainPeak > 0 && c.MountainPeak > p.Mountains.Base {
		p.Mountains.Peak = c.MountainPeak
	}
	if c.MountainTextured {
		p.Mountains.Textured = true
		if c.MountainPeak <= 0 {
			p.Mountains.Peak = tallPeak
		}
	}
	return p
}

// LoadGround loads the ground texture. An empty path or a load failure
// yields nil, which selects the procedural ground.
func LoadGround(path string) texture.Sampler {
	if path == "" {
		return nil
	}
	tex, err := texture.Load(path)
	if err != nil {
		logger.Warn("ground texture unavailable, using procedural ground",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	w, h := tex.Size()
	logger.Info("ground texture loaded", zap.String("path", path), zap.Int("width", w), zap.Int("height", h))
	return tex
}

// SceneConfig converts the whole configuration.
func SceneConfig(cfg *config.Config) scene.Config {
	return scene.Config{
		CycleLength: cfg.Cycle.Length,
		Fire:        FireConfig(cfg.Fire),
		Sky:         SkyParams(cfg.Sky),
		Ground:      LoadGround(cfg.Ground.Texture),
		TexScale:    cfg.Ground.Scale,
	}
}

// ApplyCamera positions the camera from the camera section.
func ApplyCamera(cam *camera.FlyCamera, c config.CameraConfig) {
	cam.Position = mgl32.Vec3{c.Position[0], c.Position[1], c.Position[2]}
	cam.Yaw = mgl32.DegToRad(c.Yaw)
	cam.Pitch = mgl32.DegToRad(c.Pitch)
	if c.FOV > 0 {
		cam.FOV = c.FOV
	}
	if c.Speed > 0 {
		cam.Speed = c.Speed
	}
	if c.Sensitivity > 0 {
		cam.Sensitivity = mgl32.DegToRad(c.Sensitivity)
	}
}

// NewScene builds the campsite scene with its default layout.
func NewScene(cfg *config.Config) *scene.State {
	s := scene.New(SceneConfig(cfg))
	ApplyCamera(s.Camera, cfg.Camera)
	scene.DefaultLayout(s)
	return s
}
