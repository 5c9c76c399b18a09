package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientAdapter is where the client finds the form server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB points at the SQLite file holding drafts, the session and the
// results cache.
type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the slice of [StructuredConfig] the terminal client uses.
// Server-only settings are read but ignored.
type ClientConfig struct {
	Adapter             ClientAdapter
	Storage             ClientStorage
	ResultsSyncInterval time.Duration
}

// GetClientConfig merges the same sources as [GetStructuredConfig] and
// validates only what the client needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter:             ClientAdapter(cfg.Adapter),
		Storage:             ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		ResultsSyncInterval: cfg.Workers.ResultsSyncInterval,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// validate rejects an in-memory database, since drafts and the session
// must survive a restart.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: client needs a database file", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: server address and request timeout are required", ErrInvalidAdapterConfigs)
	}

	if cfg.ResultsSyncInterval <= 0 {
		return fmt.Errorf("%w: results sync interval must be positive", ErrInvalidWorkersConfigs)
	}

	return nil
}
