// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-form-keeper binaries. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// report cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// AI holds the generative model endpoint used by the form generator.
	AI AI `envPrefix:"AI_"`

	// OAuth holds the Google sign-in client registration.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Workers holds configuration for background event processing.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordCost is the bcrypt cost factor for stored passwords.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings. The server
	// reads a PostgreSQL DSN, the client a SQLite file path.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis settings of the report cache.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the data source name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the Redis connection used to memoize report results. An empty
// Address disables caching.
type Cache struct {
	// Env: STORAGE_CACHE_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_CACHE_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_CACHE_DB
	DB int `env:"DB"`
	// TTL bounds the lifetime of a cached report.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the terminal client.
type Adapter struct {
	// HTTPAddress is the base address of the server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// AI holds the generative language API settings. An empty APIKey disables
// form generation.
type AI struct {
	// Env: AI_URL
	URL string `env:"URL"`
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: AI_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// OAuth holds the Google client registration. An empty ClientID disables
// Google sign-in.
type OAuth struct {
	// Env: OAUTH_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
	// Env: OAUTH_GOOGLE_CLIENT_SECRET
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	// Env: OAUTH_GOOGLE_REDIRECT_URL
	GoogleRedirectURL string `env:"GOOGLE_REDIRECT_URL"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// EventBuffer is the output channel size of the in-process event bus.
	// Env: WORKERS_EVENT_BUFFER
	EventBuffer int64 `env:"EVENT_BUFFER"`

	// ResultsSyncInterval is how often the client refreshes the local copy
	// of raw results of owned forms.
	// Env: WORKERS_RESULTS_SYNC_INTERVAL
	ResultsSyncInterval time.Duration `env:"RESULTS_SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
