package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags installs a fresh flag.CommandLine and simulated os.Args.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()

	oldCommandLine, oldArgs := flag.CommandLine, os.Args
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"go-form-server"}, args...)
	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		input   string
		want    NetAddress
		printed string
		wantErr string
	}{
		{input: "localhost:8080", want: NetAddress{"localhost", 8080}, printed: "localhost:8080"},
		{input: "127.0.0.1:9090", want: NetAddress{"127.0.0.1", 9090}, printed: "127.0.0.1:9090"},
		{input: "postgres.internal:5432", want: NetAddress{"postgres.internal", 5432}, printed: "postgres.internal:5432"},
		{input: "[::1]:8443", want: NetAddress{"::1", 8443}, printed: "[::1]:8443"},
		{input: ":8080", want: NetAddress{"", 8080}, printed: ":8080"},

		{input: "", wantErr: "need address in a form `host:port`"},
		{input: "localhost8080", wantErr: "need address in a form `host:port`"},
		{input: "host:port:extra", wantErr: "need address in a form `host:port`"},
		{input: ":", wantErr: "invalid syntax"},
		{input: "localhost:abc", wantErr: "invalid syntax"},
		{input: "localhost:0", wantErr: "port number must be in range 1..65535"},
		{input: "localhost:70000", wantErr: "port number must be in range 1..65535"},
		{input: "bad_host!:8080", wantErr: "incorrect host"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.printed, addr.String())
		})
	}
}

func TestNetAddress_StringOfZeroValue(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:0", (&NetAddress{Host: "localhost"}).String())
}

func TestParseFlags(t *testing.T) {
	t.Run("every flag", func(t *testing.T) {
		resetFlags(t,
			"-a", "localhost:8080",
			"-grpc-address", "localhost:9090",
			"-s", "127.0.0.1:8081",
			"-d", "postgres://forms@localhost/forms",
			"-r", "localhost:6379",
			"-c", "/etc/forms.json",
			"-token-sign-key", "jwt_secret",
			"-token-issuer", "forms",
			"-token-duration", "1h",
			"-request-timeout", "30s",
			"-ai-key", "ai_secret",
		)

		cfg := ParseFlags()

		assert.Equal(t, Server{HTTPAddress: "localhost:8080", GRPCAddress: "localhost:9090", RequestTimeout: 30 * time.Second}, cfg.Server)
		assert.Equal(t, Adapter{HTTPAddress: "127.0.0.1:8081", RequestTimeout: 30 * time.Second}, cfg.Adapter)
		assert.Equal(t, "postgres://forms@localhost/forms", cfg.Storage.DB.DSN)
		assert.Equal(t, "localhost:6379", cfg.Storage.Cache.Address)
		assert.Equal(t, "/etc/forms.json", cfg.JSONFilePath)
		assert.Equal(t, App{TokenSignKey: "jwt_secret", TokenIssuer: "forms", TokenDuration: time.Hour}, cfg.App)
		assert.Equal(t, "ai_secret", cfg.AI.APIKey)
	})

	t.Run("config alias", func(t *testing.T) {
		resetFlags(t, "-config", "/etc/forms.json")
		assert.Equal(t, "/etc/forms.json", ParseFlags().JSONFilePath)
	})

	t.Run("nothing given leaves a zero layer", func(t *testing.T) {
		resetFlags(t)
		assert.Equal(t, &StructuredConfig{}, ParseFlags())
	})
}
