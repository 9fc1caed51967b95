package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheTTLSecond,
		kafkaBroker, kafkaTopic, logLevel,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "database", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, "", redisPassword)
	assert.Equal(t, 10, redisPoolSize)
	assert.Equal(t, 2, redisMinIdleConns)
	assert.Equal(t, 60, cacheTTLSecond)
	assert.Equal(t, "", kafkaBroker)
	assert.Equal(t, "exercise-events", kafkaTopic)
	assert.Equal(t, "info", logLevel)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("CACHE_TTL_SECOND", "120")
	t.Setenv("KAFKA_BROKER", "broker:9092")
	t.Setenv("APP_LOG_LEVEL", "debug")

	_, appPort, _, pgPort, _, _, _,
		_, _,
		_, _, _, _,
		_, _, cacheTTLSecond,
		kafkaBroker, _, logLevel,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, 120, cacheTTLSecond)
	assert.Equal(t, "broker:9092", kafkaBroker)
	assert.Equal(t, "debug", logLevel)
}

func TestParseConfig_InvalidInt(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _, _,
		_, _, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}
