package database

import (
	"fmt"

	"github.com/amirhossein-jamali/account-service/internal/infrastructure/config"
)

// CreateConfigFromAppConfig adapts the loaded application configuration to database configuration.
// Zero values in the application configuration keep the defaults.
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	if src.Driver != "" {
		dbConf.Driver = src.Driver
	}
	dbConf.Host = src.Host
	if port := ParsePort(src.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = src.Username
	dbConf.Password = src.Password
	dbConf.Database = src.Database

	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.SQLitePath != "" {
		dbConf.SQLitePath = src.SQLitePath
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.SlowThreshold > 0 {
		dbConf.SlowThreshold = src.SlowThreshold
	}
	if src.RetryAttempts >= 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbConf.LogLevel = src.LogLevel
	}

	return dbConf
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // Return 0 to signal not set instead of defaulting
	}
	return p
}
