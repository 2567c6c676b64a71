package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/flagx"
)

// parseFlags overlays config with command-line flags:
//
//	-a string   gRPC bind address
//	-w string   HTTP bind address
//	-d string   PostgreSQL DSN
//	-m string   storage driver (postgres|mongo|memory)
//	-s string   JWT signing secret
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-k string   password hasher (bcrypt|argon2id)
//	-e string   events broker (none|kafka|nats)
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first, so flags consumed by
// other stages (-c, -env) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-m", "-s", "-t", "-r", "-k", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StorageDriver, "m", config.StorageDriver, "storage driver")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.PasswordHasher, "k", config.PasswordHasher, "password hasher")
	fs.StringVar(&config.EventsBroker, "e", config.EventsBroker, "events broker")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// minute-granular flags only override earlier stages when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "r":
			config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
		}
	})
}
