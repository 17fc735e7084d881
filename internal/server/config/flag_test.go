package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin",
			"-a", ":7070",
			"-d", "postgres://flags",
			"-s", "flag_secret",
			"-t", "45",
			"-i", "150000",
			"-o", "http://front.example",
		}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":7070", cfg.EndpointAddr)
		assert.Equal(t, "postgres://flags", cfg.DatabaseDSN)
		assert.Equal(t, "flag_secret", cfg.SecretKey)
		assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 150000, cfg.HashIterations)
		assert.Equal(t, "http://front.example", cfg.CORSAllowedOrigin)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddr)
		assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
	})

	t.Run("unknown flags are filtered out", func(t *testing.T) {
		os.Args = []string{"testbin", "-unknown", "x", "-a", ":6060"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":6060", cfg.EndpointAddr)
	})
}
