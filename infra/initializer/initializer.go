// Package initializer wires an SDK instance from configuration, using the
// in-memory WPS authority and directory doubles. Production integrators
// construct sdk.New directly with their own provider implementations.
package initializer

import (
	infraprovider "github.com/peydey/sdk-go/infra/provider"
	"github.com/peydey/sdk-go/pkg/config"
	"github.com/peydey/sdk-go/pkg/sdk"
)

// New builds an SDK from cfg. A nil cfg loads configuration from the
// environment.
func New(cfg *config.Config) (*sdk.SDK, error) {
	if cfg == nil {
		loaded, err := config.Load(setupLogger(config.Default()))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := setupLogger(cfg)
	directory := infraprovider.NewMockDirectory(cfg.WPSLatency)
	authority := infraprovider.NewMockWPSAuthority(cfg.WPSLatency)

	return sdk.New(cfg, directory, authority, logger), nil
}
