package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/careerhub/internal/flagx"
	"github.com/dmitrijs2005/careerhub/internal/timex"
)

// JsonConfig mirrors Config for JSON decoding. Durations accept "15m" style
// strings or integer nanoseconds. Absent fields keep their previous value.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	LogLevel                     string         `json:"log_level"`
	StorageDriver                string         `json:"storage_driver"`
	DatabaseDSN                  string         `json:"database_dsn"`
	MongoURI                     string         `json:"mongo_uri"`
	MongoDatabase                string         `json:"mongo_database"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	PasswordHasher               string         `json:"password_hasher"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	RedisAddr                    string         `json:"redis_addr"`
	RedisPassword                string         `json:"redis_password"`
	LoginMaxAttempts             int            `json:"login_max_attempts"`
	LoginAttemptWindow           timex.Duration `json:"login_attempt_window"`
	EventsBroker                 string         `json:"events_broker"`
	KafkaBrokers                 []string       `json:"kafka_brokers"`
	KafkaTopic                   string         `json:"kafka_topic"`
	NATSURL                      string         `json:"nats_url"`
	NATSSubject                  string         `json:"nats_subject"`
	HTTPRateLimit                float64        `json:"http_rate_limit"`
}

// parseJson overlays config with the file named by -c/-config, if any.
// It panics when the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.PasswordHasher, c.PasswordHasher)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	setString(&config.EventsBroker, c.EventsBroker)
	setString(&config.KafkaTopic, c.KafkaTopic)
	setString(&config.NATSURL, c.NATSURL)
	setString(&config.NATSSubject, c.NATSSubject)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration > 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.LoginAttemptWindow.Duration > 0 {
		config.LoginAttemptWindow = c.LoginAttemptWindow.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.LoginMaxAttempts > 0 {
		config.LoginMaxAttempts = c.LoginMaxAttempts
	}
	if len(c.KafkaBrokers) > 0 {
		config.KafkaBrokers = c.KafkaBrokers
	}
	if c.HTTPRateLimit > 0 {
		config.HTTPRateLimit = c.HTTPRateLimit
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
