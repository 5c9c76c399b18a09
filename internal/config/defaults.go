package config

import "time"

const (
	defaultTokenIssuer    = "go-form-keeper"
	defaultTokenDuration  = 24 * time.Hour
	defaultPasswordCost   = 10
	defaultRequestTimeout = 30 * time.Second
	defaultCacheTTL       = 5 * time.Minute
	defaultAIURL          = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	defaultAITimeout      = 60 * time.Second
	defaultEventBuffer    = 64
	defaultAdapterAddress = "localhost:8080"
	defaultResultsSync    = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			PasswordCost:  defaultPasswordCost,
		},
		Storage: Storage{
			Cache: Cache{TTL: defaultCacheTTL},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		AI: AI{
			URL:     defaultAIURL,
			Timeout: defaultAITimeout,
		},
		Workers: Workers{
			EventBuffer:         defaultEventBuffer,
			ResultsSyncInterval: defaultResultsSync,
		},
	}
}
