// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvConfig_AllVariables(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/forms.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "forms",
		"APP_TOKEN_DURATION": "1h",
		"APP_PASSWORD_COST":  "12",
		"APP_VERSION":        "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DATABASE_URI": "postgres://forms@localhost/forms",
		"STORAGE_CACHE_ADDRESS":   "localhost:6379",
		"STORAGE_CACHE_PASSWORD":  "redis",
		"STORAGE_CACHE_DB":        "2",
		"STORAGE_CACHE_TTL":       "1m",

		"ADAPTER_ADDRESS":         "localhost:8081",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"AI_URL":     "http://ai.local",
		"AI_API_KEY": "ai_secret",
		"AI_TIMEOUT": "20s",

		"OAUTH_GOOGLE_CLIENT_ID":     "client-id",
		"OAUTH_GOOGLE_CLIENT_SECRET": "client-secret",
		"OAUTH_GOOGLE_REDIRECT_URL":  "http://localhost/cb",

		"WORKERS_EVENT_BUFFER":          "16",
		"WORKERS_RESULTS_SYNC_INTERVAL": "2m",
	})

	cfg, err := envConfig()
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		App:     App{TokenSignKey: "jwt_secret", TokenIssuer: "forms", TokenDuration: time.Hour, PasswordCost: 12, Version: "1.2.3"},
		Server:  Server{HTTPAddress: "localhost:8080", GRPCAddress: "localhost:9090", RequestTimeout: 30 * time.Second},
		Storage: Storage{DB: DB{DSN: "postgres://forms@localhost/forms"}, Cache: Cache{Address: "localhost:6379", Password: "redis", DB: 2, TTL: time.Minute}},
		Adapter: Adapter{HTTPAddress: "localhost:8081", RequestTimeout: 5 * time.Second},
		AI:      AI{URL: "http://ai.local", APIKey: "ai_secret", Timeout: 20 * time.Second},
		OAuth:   OAuth{GoogleClientID: "client-id", GoogleClientSecret: "client-secret", GoogleRedirectURL: "http://localhost/cb"},
		Workers: Workers{EventBuffer: 16, ResultsSyncInterval: 2 * time.Minute},

		JSONFilePath: "/etc/forms.json",
	}, cfg)
}

func TestEnvConfig_EmptyEnvironment(t *testing.T) {
	clearEnvVars(t)

	cfg, err := envConfig()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestEnvConfig_MalformedValues(t *testing.T) {
	tests := map[string]string{
		"APP_TOKEN_DURATION":   "tomorrow",
		"STORAGE_CACHE_DB":     "zero",
		"WORKERS_EVENT_BUFFER": "-",
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			setEnvVars(t, map[string]string{name: value})

			cfg, err := envConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
			assert.Nil(t, cfg)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars makes every variable the config reads absent for the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG", "DOTENV",
		"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_PASSWORD_COST", "APP_VERSION",
		"SERVER_ADDRESS", "SERVER_GRPC_ADDRESS", "SERVER_REQUEST_TIMEOUT",
		"STORAGE_DB_DATABASE_URI",
		"STORAGE_CACHE_ADDRESS", "STORAGE_CACHE_PASSWORD", "STORAGE_CACHE_DB", "STORAGE_CACHE_TTL",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"AI_URL", "AI_API_KEY", "AI_TIMEOUT",
		"OAUTH_GOOGLE_CLIENT_ID", "OAUTH_GOOGLE_CLIENT_SECRET", "OAUTH_GOOGLE_REDIRECT_URL",
		"WORKERS_EVENT_BUFFER", "WORKERS_RESULTS_SYNC_INTERVAL",
	}
	for _, k := range keys {
		// t.Setenv registers the restore, Unsetenv makes the key absent.
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
