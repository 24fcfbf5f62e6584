package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the defaults for the gridmodel command.
type Config struct {
	Variant  string // teleport or terminal
	LogLevel string // logrus level name
	Color    bool   // colour terminal output
}

// Load reads GRIDMODEL_* variables, after loading a .env file when present.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Variant:  getEnvWithDefault("GRIDMODEL_VARIANT", "terminal"),
		LogLevel: getEnvWithDefault("GRIDMODEL_LOG_LEVEL", "info"),
		Color:    getEnvAsBool("GRIDMODEL_COLOR", true),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("environment variable %s must be a boolean, using %v: %v", key, defaultValue, err)
		return defaultValue
	}
	return b
}
