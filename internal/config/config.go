package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vlasim/internal/vlasov"
)

const (
	DefaultNx        = 32
	DefaultNv        = 32
	DefaultDt        = 0.01
	DefaultDuration  = 10.0
	DefaultVMax      = 6.0
	DefaultAmplitude = 0.01
)

type Config struct {
	Nx             int     `yaml:"nx"`
	Nv             int     `yaml:"nv"`
	XMin           float64 `yaml:"x_min"`
	XMax           float64 `yaml:"x_max"`
	VMin           float64 `yaml:"v_min"`
	VMax           float64 `yaml:"v_max"`
	Spatial        string  `yaml:"spatial_scheme"`
	Velocity       string  `yaml:"velocity_scheme"`
	Dt             float64 `yaml:"dt"`
	Duration       float64 `yaml:"duration"`
	Amplitude      float64 `yaml:"amplitude"`
	Mode           int     `yaml:"mode"`
	FieldAmplitude float64 `yaml:"field_amplitude"`
}

// DefaultConfig is the 32x32 perturbed-Maxwellian free-streaming case:
// x in [0, 2π), v in [-6, 6], spectral steppers, dt = 0.01.
func DefaultConfig() *Config {
	return &Config{
		Nx:        DefaultNx,
		Nv:        DefaultNv,
		XMin:      0,
		XMax:      2 * math.Pi,
		VMin:      -DefaultVMax,
		VMax:      DefaultVMax,
		Spatial:   "exponential",
		Velocity:  "exponential",
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		Amplitude: DefaultAmplitude,
		Mode:      1,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Nx < 3 || c.Nv < 3 {
		return fmt.Errorf("config: grid sizes must be at least 3, got (%d, %d)", c.Nx, c.Nv)
	}
	if c.XMax <= c.XMin || c.VMax <= c.VMin {
		return fmt.Errorf("config: empty domain [%g, %g] x [%g, %g]", c.XMin, c.XMax, c.VMin, c.VMax)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if _, err := vlasov.ParseScheme(c.Spatial); err != nil {
		return fmt.Errorf("config: spatial_scheme: %w", err)
	}
	if c.Spatial == "cd2" {
		return fmt.Errorf("config: spatial_scheme: %w: cd2 is velocity-only", vlasov.ErrUnsupportedScheme)
	}
	if _, err := vlasov.ParseScheme(c.Velocity); err != nil {
		return fmt.Errorf("config: velocity_scheme: %w", err)
	}
	return nil
}
