package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
// Unknown flags are reported as an error.
//
// Flags:
//
//	-a              server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s")
//	-peer           peer base URL or host:port for outbound calls
//	-peer-timeout   outbound request timeout (e.g., "5s")
//	-auth-header    header carrying the internal auth token ("NONE" disables)
//	-auth-token     shared secret
//	-auth-paths     comma separated protected path patterns
//	-call-unique-id unique call-id value
//	-log-level      zerolog level name
//	-c/-config      json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout, peerTimeout time.Duration
	var peerAddress string
	var authHeader, authToken, authPaths, callUniqueID string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&peerAddress, "peer", "", "Peer base URL or host:port")
	fs.DurationVar(&peerTimeout, "peer-timeout", 0, "Outbound request timeout (e.g., 5s)")
	fs.StringVar(&authHeader, "auth-header", "", "Internal auth header name")
	fs.StringVar(&authToken, "auth-token", "", "Internal auth shared secret")
	fs.StringVar(&authPaths, "auth-paths", "", "Comma separated protected path patterns")
	fs.StringVar(&callUniqueID, "call-unique-id", "", "Unique call-id value")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Auth: Auth{
			HeaderName:   authHeader,
			Token:        authToken,
			PathPatterns: splitList(authPaths),
			CallUniqueID: callUniqueID,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    peerAddress,
			RequestTimeout: peerTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), a name or an
// IP address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
