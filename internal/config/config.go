package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const minSquareSize = 20

type Config struct {
	WindowTitle string
	SquareSize  int
	EndDelay    time.Duration
	LogLevel    string
}

var AppConfig *Config

func LoadConfig() *Config {
	windowTitle := GetEnv("WINDOW_TITLE", "Connect 4")

	// pixel size of each board square, the window is sized from it
	squareSize := GetEnvAsInt("SQUARE_SIZE", 100)
	if squareSize < minSquareSize {
		log.Warnf("SQUARE_SIZE %d is too small, using %d", squareSize, minSquareSize)
		squareSize = minSquareSize
	}

	// how long the result banner stays up before the program exits
	endDelaySec := GetEnvAsInt("END_DELAY_SECONDS", 3)
	if endDelaySec < 0 {
		endDelaySec = 0
	}

	logLevel := strings.ToLower(GetEnv("LOG_LEVEL", "info"))

	AppConfig = &Config{
		WindowTitle: windowTitle,
		SquareSize:  squareSize,
		EndDelay:    time.Duration(endDelaySec) * time.Second,
		LogLevel:    logLevel,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warnf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
