package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CHAT_ADDR is the host:port of a running server, the suites are skipped without it
	ChatAddr  string `envconfig:"CHAT_ADDR"`
	AdminAddr string `envconfig:"ADMIN_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
