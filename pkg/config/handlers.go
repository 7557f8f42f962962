package config

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicConfig is the part of the configuration that is safe to expose.
type PublicConfig struct {
	BaseURL         string `json:"base_url"`
	LibgenBaseURL   string `json:"libgen_base_url"`
	IPFSGateway     string `json:"ipfs_gateway"`
	RequestInterval string `json:"request_interval"`
	SearchLimit     int    `json:"search_limit"`
	CacheEnabled    bool   `json:"cache_enabled"`
	CacheTTL        string `json:"cache_ttl"`
}

// Public returns the exposable view of cfg.
func (cfg *Config) Public() *PublicConfig {
	return &PublicConfig{
		BaseURL:         cfg.BaseURL,
		LibgenBaseURL:   cfg.LibgenBaseURL,
		IPFSGateway:     cfg.IPFSGateway,
		RequestInterval: cfg.RequestInterval.String(),
		SearchLimit:     cfg.SearchLimit,
		CacheEnabled:    cfg.CacheEnabled(),
		CacheTTL:        cfg.CacheTTL.String(),
	}
}

type handler struct {
	cfg *Config
}

func (h *handler) retrieve(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, h.cfg.Public()))
}
