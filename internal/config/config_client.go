package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the turfctl transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API, e.g. "http://localhost:5000".
	// Env: TURFCTL_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: TURFCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientSession holds where the CLI keeps its bearer token between runs.
type ClientSession struct {
	// Token is used as-is when set and takes precedence over TokenFile.
	// Env: TURFCTL_TOKEN
	Token string `env:"TOKEN"`
	// TokenFile is where `turfctl login` stores the token.
	// Env: TURFCTL_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// ClientConfig is the top-level turfctl configuration.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Session contains token persistence settings.
	Session ClientSession
}

// GetClientConfig builds and validates the turfctl configuration from
// defaults and TURFCTL_ environment variables. Command-line flags are
// applied by the CLI on top of the returned value.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnvWithPrefix(envCfg, "TURFCTL_"); err != nil {
		return nil, err
	}

	clientCfg := defaultClientConfig()
	if err := mergo.Merge(clientCfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return clientCfg, clientCfg.validate()
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 10 * time.Second,
		},
		Session: ClientSession{
			TokenFile: defaultTokenFile(),
		},
	}
}
