package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// The signing key set itself cannot be passed on the command line; it is
// loaded from the environment or the JSON file. Flags cover the scalar
// settings only:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-issuer token issuer name
//	-api-access-kid key id of the api-access signer
//	-api-access-duration api-access token lifetime (e.g., "15m")
//	-refresh-kid key id of the refresh signer (empty disables refresh)
//	-refresh-duration refresh token lifetime (e.g., "720h")
//	-reset-kid key id of the password-reset signer
//	-reset-duration reset token lifetime (e.g., "1h")
//	-bcrypt-cost bcrypt work factor (0 = library default)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-relay-url base URL of the mail relay API
//	-mail-reset-base-url public URL prefix for reset links
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenIssuer string
	var apiAccessKid, refreshKid, resetKid string
	var apiAccessDuration, refreshDuration, resetDuration time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var mailRelayURL, mailResetBaseURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.StringVar(&apiAccessKid, "api-access-kid", "", "Key id of the api-access signer")
	flag.DurationVar(&apiAccessDuration, "api-access-duration", 0, "Api-access token lifetime (e.g., 15m)")
	flag.StringVar(&refreshKid, "refresh-kid", "", "Key id of the refresh signer (empty disables refresh)")
	flag.DurationVar(&refreshDuration, "refresh-duration", 0, "Refresh token lifetime (e.g., 720h)")
	flag.StringVar(&resetKid, "reset-kid", "", "Key id of the password-reset signer")
	flag.DurationVar(&resetDuration, "reset-duration", 0, "Reset token lifetime (e.g., 1h)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor (0 = library default)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mailRelayURL, "mail-relay-url", "", "Base URL of the mail relay API")
	flag.StringVar(&mailResetBaseURL, "mail-reset-base-url", "", "Public URL prefix for reset links")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			APIAccessKid:      apiAccessKid,
			APIAccessDuration: apiAccessDuration,
			RefreshKid:        refreshKid,
			RefreshDuration:   refreshDuration,
			ResetKid:          resetKid,
			ResetDuration:     resetDuration,
			TokenIssuer:       tokenIssuer,
			BCryptCost:        bcryptCost,
		},
		Mail: Mail{
			RelayURL:     mailRelayURL,
			ResetBaseURL: mailResetBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
