package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/minjongk/teamauth/internal/flagx"
	"github.com/minjongk/teamauth/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON config
// files. Duration fields accept both "1h" strings and integer nanoseconds
// via timex.Duration. After unmarshalling, non-zero values are copied into
// the runtime Config.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	HashIterations              int            `json:"hash_iterations"`
	CORSAllowedOrigin           string         `json:"cors_allowed_origin"`
	DBConnectTimeout            timex.Duration `json:"db_connect_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. Fields absent from the file keep their
// current values. An unreadable or invalid file panics: a config file that
// was asked for but cannot be honored should stop startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	if c.HashIterations != 0 {
		config.HashIterations = c.HashIterations
	}
	if c.CORSAllowedOrigin != "" {
		config.CORSAllowedOrigin = c.CORSAllowedOrigin
	}
	if c.DBConnectTimeout.Duration != 0 {
		config.DBConnectTimeout = time.Duration(c.DBConnectTimeout.Duration)
	}
}
