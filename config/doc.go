// Package config loads quantik settings with viper.
//
// Sources, lowest precedence first: built-in defaults (SetDefaults), an
// optional TOML or YAML file, then QUANTIK_* environment variables where the
// key path uses underscores (gateway.url → QUANTIK_GATEWAY_URL). The token is
// also read from IBM_QUANTUM_TOKEN.
package config
