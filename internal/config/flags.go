package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-k API key required on non-GET requests
//	-c/-config json file path with configs
//	-l log level
//	-middleware-order log-first | auth-first
//	-shutdown-timeout graceful shutdown timeout (e.g., "15s")
//	-rate-limit-rps requests per second per client (0 disables)
//	-rate-limit-burst token bucket size per client
//	-metrics-path route of the Prometheus endpoint
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiKey string
	var jsonConfigPath string
	var logLevel string
	var middlewareOrder string
	var shutdownTimeout time.Duration
	var rateLimitRPS float64
	var rateLimitBurst int
	var metricsPath string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiKey, "k", "", "API key required on non-GET requests")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "l", "", "Log level")
	fs.StringVar(&middlewareOrder, "middleware-order", "", "log-first or auth-first")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 15s)")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Requests per second per client, 0 disables")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Token bucket size per client")
	fs.StringVar(&metricsPath, "metrics-path", "", "Prometheus endpoint route")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Security: Security{
			APIKey: apiKey,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ShutdownTimeout: shutdownTimeout,
			MiddlewareOrder: middlewareOrder,
		},
		RateLimit: RateLimit{
			RPS:   rateLimitRPS,
			Burst: rateLimitBurst,
		},
		Metrics: Metrics{
			Path: metricsPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless the host is
// empty (all interfaces) or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
