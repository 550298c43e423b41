package gateway

import (
	"fmt"

	"lelyo-go/internal/config"
	"lelyo-go/internal/core"
)

// NewGatewayFromConfig creates a Gateway implementation based on the gateway
// config type. token is attached to outgoing requests when non-empty; the
// memory gateway ignores it.
func NewGatewayFromConfig(cfg config.GatewayConfig, token string, clock core.Clock) (core.Gateway, error) {
	switch cfg.Type {
	case "http", "":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("base_url required for http gateway")
		}
		return NewHTTPGateway(cfg.BaseURL, token), nil
	case "memory":
		return NewMemoryGateway(clock), nil
	default:
		return nil, fmt.Errorf("unknown gateway type: %q", cfg.Type)
	}
}
