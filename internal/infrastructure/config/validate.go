package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate ensures all required configuration values are present. It returns
// warnings for production settings that work but should be tightened.
func (c *Config) Validate() (warnings []string, err error) {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			missing = append(missing, "database.host (or AS_DB_HOST)")
		}
		if c.Database.Port == "" {
			missing = append(missing, "database.port (or AS_DB_PORT)")
		}
		if c.Database.Username == "" {
			missing = append(missing, "database.username (or AS_DB_USERNAME)")
		}
		if c.Database.Database == "" {
			missing = append(missing, "database.database (or AS_DB_NAME)")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			missing = append(missing, "database.sqlitePath (or AS_DB_SQLITE_PATH)")
		}
	default:
		return nil, fmt.Errorf("invalid database driver: %q, must be postgres or sqlite", c.Database.Driver)
	}
	if c.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}

	switch c.Environment {
	case Development, Production, Test:
	case "":
		missing = append(missing, "environment")
	default:
		return nil, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configurations: %v", missing)
	}

	if c.IsProduction() {
		if c.Database.Driver == "postgres" {
			switch strings.ToLower(c.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if c.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if c.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if c.Seed.DemoData {
			warnings = append(warnings, "seed.demoData is enabled in production")
		}
	}

	return warnings, nil
}
