package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so the YAML file can use readable forms
// like "5ms" or "1.5s" instead of raw nanosecond counts.
type Duration time.Duration

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: bad duration node: %w", err)
	}
	if parsed, err := time.ParseDuration(s); err == nil {
		*d = Duration(parsed)
		return nil
	}
	// Bare integers are accepted as nanoseconds.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	return fmt.Errorf("config: bad duration %q", s)
}

// Config holds the settings for the bench harness.
type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	Output OutputConfig `yaml:"output"`
}

type BenchConfig struct {
	// Mode is "seq" (one goroutine) or "par" (Workers goroutines).
	Mode    string `yaml:"mode"`
	Workers int    `yaml:"workers"`
	// Laps is how many laps each worker records.
	Laps int `yaml:"laps"`
	// Work is the simulated work duration before each lap.
	Work Duration `yaml:"work"`
}

type OutputConfig struct {
	CSV      bool `yaml:"csv"`
	Progress bool `yaml:"progress"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			Mode:    "par",
			Workers: 8,
			Laps:    100,
			Work:    Duration(time.Millisecond),
		},
		Output: OutputConfig{
			CSV:      true,
			Progress: false,
		},
	}
}

// Manager loads and saves the config file, creating it with defaults on
// first use.
type Manager struct {
	config     *Config
	configPath string
}

func NewManager(path string) (*Manager, error) {
	m := &Manager{configPath: path}

	if err := m.load(); err != nil {
		m.config = Default()
		if err := m.Save(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) Config() *Config {
	return m.config
}
