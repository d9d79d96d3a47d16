// Package config loads the engine's tuning knobs — trial count, runtime
// budget, semi-stable tolerance, verbosity — from a YAML document. It
// never parses reaction or solution data; that remains out of scope per
// spec.md §1.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"crnensemble/engine"
)

// EngineConfig mirrors the options exposed by engine.Builder. The yaml tags
// are lower-case because viper lower-cases every key it reads, so a file's
// "runtimeSeconds" reaches the second decode stage as "runtimeseconds".
type EngineConfig struct {
	Trials             int    `yaml:"trials"`
	RuntimeSeconds     uint64 `yaml:"runtimeseconds"`
	HasRuntimeSeconds  bool   `yaml:"-"`
	MaxSemiStableSteps int    `yaml:"maxsemistablesteps"`
	Verbose            bool   `yaml:"verbose"`
	NoResponse         bool   `yaml:"noresponse"`
}

// outerDocument mirrors the "kind"-tagged envelope pattern the example
// pack's own YAML config loader uses, so unrelated top-level keys in a
// shared config file don't collide with engine settings.
type outerDocument struct {
	Engine map[string]interface{} `mapstructure:"engine"`
}

// Default returns the same defaults engine.Builder itself applies, so a
// caller with no config file still gets engine.Builder-equivalent behavior.
func Default() *EngineConfig {
	return &EngineConfig{
		Trials:             100,
		MaxSemiStableSteps: 99,
	}
}

// FromYAML loads an EngineConfig from the "engine:" section of a YAML file
// at path, using the same two-stage viper-then-yaml unmarshal the example
// pack's reinforcement.FromYaml uses: viper reads the raw document (so
// env/remote-config sources could be layered in later without touching
// this function), then the "engine" section is re-marshaled and decoded
// into the typed struct.
func FromYAML(path string) (*EngineConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	outer := &outerDocument{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}

	raw, err := yaml.Marshal(outer.Engine)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	cfg.HasRuntimeSeconds = cfg.RuntimeSeconds > 0

	return cfg, nil
}

// ApplyTo configures b according to c and returns b for fluent chaining
// alongside any further Builder calls the caller wants to make.
func (c *EngineConfig) ApplyTo(b *engine.Builder) *engine.Builder {
	b = b.Trials(c.Trials).Tolerance(c.MaxSemiStableSteps)
	if c.HasRuntimeSeconds {
		b = b.Runtime(c.RuntimeSeconds)
	}
	if c.Verbose {
		b = b.Verbose()
	}
	if c.NoResponse {
		b = b.NoResponse()
	}
	return b
}
