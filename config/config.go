// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/quantik/gateway"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by New.
const EnvPrefix = "QUANTIK"

// Config is the complete runtime configuration.
type Config struct {
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Log       LogConfig       `mapstructure:"log"`
}

// GatewayConfig configures the execution gateway.
type GatewayConfig struct {
	URL               string        `mapstructure:"url"`
	Token             string        `mapstructure:"token"`
	Backend           string        `mapstructure:"backend"`
	Simulated         bool          `mapstructure:"simulated"`
	Shots             int           `mapstructure:"shots"`
	PollInterval      time.Duration `mapstructure:"poll_interval"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// SimulatorConfig configures the local simulator.
type SimulatorConfig struct {
	Seed      uint64 `mapstructure:"seed"`
	MaxQubits int    `mapstructure:"max_qubits"`
}

// LogConfig configures logging.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("gateway.url", "")
	v.SetDefault("gateway.token", "")
	v.SetDefault("gateway.backend", "")
	v.SetDefault("gateway.simulated", true)
	v.SetDefault("gateway.shots", 10000)
	v.SetDefault("gateway.poll_interval", time.Second)
	v.SetDefault("gateway.timeout", 5*time.Minute)
	v.SetDefault("gateway.requests_per_second", 5.0)

	v.SetDefault("simulator.seed", 0) // random
	v.SetDefault("simulator.max_qubits", gateway.DefaultSimulatorMaxQubits)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// BindSensitiveEnvVars binds secrets to their conventional variables.
func BindSensitiveEnvVars(v *viper.Viper) {
	_ = v.BindEnv("gateway.token", EnvPrefix+"_GATEWAY_TOKEN", "IBM_QUANTUM_TOKEN")
}

// New returns a viper instance with defaults and environment binding, and
// reads configFile when it is non-empty (format from its extension).
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindSensitiveEnvVars(v)
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values no component accepts.
func (c *Config) Validate() error {
	switch {
	case c.Gateway.Shots < 1:
		return fmt.Errorf("gateway.shots must be >= 1, got %d", c.Gateway.Shots)
	case c.Gateway.PollInterval <= 0:
		return fmt.Errorf("gateway.poll_interval must be positive, got %s", c.Gateway.PollInterval)
	case c.Gateway.Timeout < 0:
		return fmt.Errorf("gateway.timeout must not be negative, got %s", c.Gateway.Timeout)
	case c.Simulator.MaxQubits < 1:
		return fmt.Errorf("simulator.max_qubits must be >= 1, got %d", c.Simulator.MaxQubits)
	case !c.Gateway.Simulated && c.Gateway.URL == "":
		return fmt.Errorf("gateway.url is required when gateway.simulated is false")
	}

	return nil
}

// ToGateway converts the loaded settings into a gateway.Config.
func (c *Config) ToGateway() gateway.Config {
	return gateway.Config{
		URL:                c.Gateway.URL,
		Token:              c.Gateway.Token,
		Backend:            c.Gateway.Backend,
		Simulated:          c.Gateway.Simulated,
		Shots:              c.Gateway.Shots,
		PollInterval:       c.Gateway.PollInterval,
		Timeout:            c.Gateway.Timeout,
		RequestsPerSecond:  c.Gateway.RequestsPerSecond,
		Seed:               c.Simulator.Seed,
		SimulatorMaxQubits: c.Simulator.MaxQubits,
	}
}
