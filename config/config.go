package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// LoadEnvFile loads a .env file from the working directory when present.
// Missing files are not an error; real environment variables win.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("FSSHOP_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("FSSHOP_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("FSSHOP_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetListen() string {
	return os.Getenv("FSSHOP_LISTEN")
}

func GetPort() string {
	port := os.Getenv("FSSHOP_PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// GetSessionSecret returns the cookie-signing secret. Empty means the server
// generates a random one at startup, invalidating sessions across restarts.
func GetSessionSecret() string {
	return os.Getenv("FSSHOP_SESSION_SECRET")
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("FSSHOP_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}
