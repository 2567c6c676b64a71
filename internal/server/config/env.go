package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/flagx"
	"github.com/joho/godotenv"
)

// loadDotEnv is a seam for godotenv.Load.
var loadDotEnv = godotenv.Load

// parseEnv loads the dotenv file (".env" unless -env says otherwise) into
// the process environment without overriding variables that are already
// set, then overlays config with the recognised variables:
//
//	GRPC_ADDR, HTTP_ADDR, LOG_LEVEL, STORAGE_DRIVER, DATABASE_DSN,
//	MONGO_URI, MONGO_DATABASE, JWT_SECRET, ACCESS_TOKEN_TTL,
//	REFRESH_TOKEN_TTL, PASSWORD_HASHER, BCRYPT_COST, REDIS_ADDR,
//	REDIS_PASSWORD, EVENTS_BROKER, KAFKA_BROKERS (comma separated),
//	KAFKA_TOPIC, NATS_URL, NATS_SUBJECT
//
// A missing dotenv file is not an error; a malformed one panics.
func parseEnv(config *Config) {
	if err := loadDotEnv(flagx.EnvFilePath(".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString("GRPC_ADDR", &config.EndpointAddrGRPC)
	envString("HTTP_ADDR", &config.EndpointAddrHTTP)
	envString("LOG_LEVEL", &config.LogLevel)
	envString("STORAGE_DRIVER", &config.StorageDriver)
	envString("DATABASE_DSN", &config.DatabaseDSN)
	envString("MONGO_URI", &config.MongoURI)
	envString("MONGO_DATABASE", &config.MongoDatabase)
	envString("JWT_SECRET", &config.SecretKey)
	envDuration("ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	envDuration("REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration)
	envString("PASSWORD_HASHER", &config.PasswordHasher)
	envInt("BCRYPT_COST", &config.BcryptCost)
	envString("REDIS_ADDR", &config.RedisAddr)
	envString("REDIS_PASSWORD", &config.RedisPassword)
	envString("EVENTS_BROKER", &config.EventsBroker)
	envString("KAFKA_TOPIC", &config.KafkaTopic)
	envString("NATS_URL", &config.NATSURL)
	envString("NATS_SUBJECT", &config.NATSSubject)

	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok && v != "" {
		config.KafkaBrokers = strings.Split(v, ",")
	}
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
