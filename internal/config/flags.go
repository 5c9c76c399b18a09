package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// NetAddress is a host:port flag value. The host may be empty, an IP
// address or an RFC 1123 name.
type NetAddress struct {
	Host string
	Port int
}

var hostValidator = validator.New()

// ParseFlags reads the command line into a sparse config layer. Only flags
// that were given end up non-zero.
//
//	-a            HTTP listen address
//	-grpc-address gRPC health listen address
//	-s            form server address used by the client
//	-d            database DSN (server) or SQLite path (client)
//	-r            redis address of the report cache
//	-c, -config   JSON config file
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout applies to both the server and the client adapter
//	-ai-key       generative language API key
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}

	var listen, grpcListen, formServer NetAddress
	var requestTimeout time.Duration

	flag.Var(&listen, "a", "HTTP listen address host:port")
	flag.Var(&grpcListen, "grpc-address", "gRPC listen address host:port")
	flag.Var(&formServer, "s", "Form server address used by the client host:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN or local database path")
	flag.StringVar(&cfg.Storage.Cache.Address, "r", "", "Redis address of the report cache")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime, e.g. 1h")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout, e.g. 30s")
	flag.StringVar(&cfg.AI.APIKey, "ai-key", "", "Generative language API key")

	flag.Parse()

	cfg.Server.HTTPAddress = listen.String()
	cfg.Server.GRPCAddress = grpcListen.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Adapter.HTTPAddress = formServer.String()
	cfg.Adapter.RequestTimeout = requestTimeout

	return cfg
}

// String joins host and port, bracketing IPv6 hosts. The zero value prints
// as an empty string so unset flags merge as absent.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" {
		if err = hostValidator.Var(host, "ip|hostname_rfc1123"); err != nil {
			return fmt.Errorf("incorrect host %q", host)
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
