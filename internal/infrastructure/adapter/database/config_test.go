package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-service/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func validPostgresConfig() *Config {
	c := DefaultConfig()
	c.Host = "localhost"
	c.Username = "accounts"
	c.Password = "secret"
	c.Database = "account_service"
	return c
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ValidPostgres", func(c *Config) {}, ""},
		{"ValidSQLite", func(c *Config) { c.Driver = DriverSQLite; c.Host = "" }, ""},
		{"MissingHost", func(c *Config) { c.Host = "" }, "database host is required"},
		{"BadPort", func(c *Config) { c.Port = 70000 }, "invalid port number"},
		{"MissingPassword", func(c *Config) { c.Password = "" }, "database password is required"},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"EmptySQLitePath", func(c *Config) { c.Driver = DriverSQLite; c.SQLitePath = " " }, "sqlite path is required"},
		{"UnknownDriver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"NoOpenConns", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"NoQueryTimeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"NegativeRetries", func(c *Config) { c.RetryAttempts = -1 }, "retry attempts"},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "trace" }, "invalid database log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validPostgresConfig()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	pg := validPostgresConfig()
	assert.Equal(t, "host=localhost port=5432 user=accounts password=secret dbname=account_service sslmode=disable", pg.DSN())
	assert.NotContains(t, pg.SafeString(), "secret")

	lite := DefaultConfig()
	lite.Driver = DriverSQLite

	lite.SQLitePath = "data/accounts.db"
	assert.Equal(t, "data/accounts.db?_foreign_keys=on", lite.DSN())

	lite.SQLitePath = "file:x?mode=memory"
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", lite.DSN())

	lite.SQLitePath = ":memory:"
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", lite.DSN())
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	app := &config.Config{
		Database: config.DatabaseConfig{
			Driver:        "sqlite",
			Host:          "db",
			Port:          "6543",
			Username:      "u",
			Password:      "p",
			Database:      "d",
			SQLitePath:    "/tmp/a.db",
			MaxOpenConns:  7,
			QueryTimeout:  3 * time.Second,
			RetryAttempts: 0,
			LogLevel:      "error",
		},
	}

	c := CreateConfigFromAppConfig(app)

	assert.Equal(t, DriverSQLite, c.Driver)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, "/tmp/a.db", c.SQLitePath)
	assert.Equal(t, 7, c.MaxOpenConns)
	assert.Equal(t, 10, c.MaxIdleConns, "zero keeps the default")
	assert.Equal(t, 3*time.Second, c.QueryTimeout)
	assert.Equal(t, 0, c.RetryAttempts)
	assert.Equal(t, "error", c.LogLevel)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
}
