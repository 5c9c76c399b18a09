package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.App.Version = "1.0.0"
	cfg.Storage.DB.DSN = "postgres://localhost/forms"
	cfg.Server.HTTPAddress = "localhost:8080"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "grpc only", mutate: func(cfg *StructuredConfig) {
			cfg.Server.HTTPAddress = ""
			cfg.Server.GRPCAddress = "localhost:9090"
		}},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordCost = 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "no version", mutate: func(cfg *StructuredConfig) { cfg.App.Version = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no listeners", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "/tmp/form-keeper.db"

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultAdapterAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/form-keeper.db", clientCfg.Storage.DB.DSN)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	t.Run("in-memory db", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Storage.DB.DSN = ":memory:"
		_, err := newClientConfig(cfg)
		assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	})

	t.Run("no adapter timeout", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Storage.DB.DSN = "local.db"
		cfg.Adapter.RequestTimeout = time.Duration(0)
		_, err := newClientConfig(cfg)
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})

	t.Run("no sync interval", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Storage.DB.DSN = "local.db"
		cfg.Workers.ResultsSyncInterval = 0
		clientCfg, err := newClientConfig(cfg)
		assert.Nil(t, clientCfg)
		assert.ErrorIs(t, err, ErrInvalidWorkersConfigs)
	})
}
