package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/desktop/internal/config"
	"github.com/iamasit07/4-in-a-row/desktop/internal/transport/input"
	"github.com/iamasit07/4-in-a-row/desktop/internal/transport/window"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	logger := initLogger(cfg)

	geometry := input.Geometry{SquareSize: cfg.SquareSize}
	win := window.New(cfg.WindowTitle, geometry, cfg.EndDelay, logger)

	if err := win.Run(); err != nil {
		logger.WithError(err).Fatal("[WINDOW] Window failed")
	}

	session := win.Session()
	if !session.IsFinished() {
		logger.Info("[WINDOW] Window closed before the game ended")
		return
	}

	logger.WithFields(logrus.Fields{
		"game_id": session.GameID,
		"reason":  session.Reason,
		"moves":   session.Game.MoveCount,
	}).Info("[GAME] Exiting")
}

func initLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
