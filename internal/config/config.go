// Package config resolves pattern roller parameters from defaults, an
// optional YAML preset file and command-line flags, validates them and
// derives the full roller geometry.
package config

// Config holds user-facing settings. Zero values mean "not set" and
// are filled by defaults or derivation.
type Config struct {
	Input           string        `yaml:"-"`
	Output          string        `yaml:"output"`
	Diameter        float64       `yaml:"diameter"`
	Length          float64       `yaml:"length"`
	GridStep        float64       `yaml:"grid_step"`
	ReliefDepth     float64       `yaml:"relief_depth"`
	Pin             PinConfig     `yaml:"pin"`
	Channel         ChannelConfig `yaml:"channel"`
	StackHorizontal int           `yaml:"stack_horizontal"`
	StackVertical   int           `yaml:"stack_vertical"`
	Pixelated       bool          `yaml:"pixelated"`
	Inverted        bool          `yaml:"inverted"`
	Check           bool          `yaml:"check"`
	Quiet           bool          `yaml:"quiet"`
	Logging         LoggingConfig `yaml:"logging"`
}

// PinConfig describes end pins; both fields must be set together.
type PinConfig struct {
	Diameter float64 `yaml:"diameter"`
	Length   float64 `yaml:"length"`
}

// ChannelConfig describes the coaxial bore.
type ChannelConfig struct {
	Diameter float64 `yaml:"diameter"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		StackHorizontal: 1,
		StackVertical:   1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
