package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/selamlab/ethio-calendar-bot/internal/config"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Set log level from LOG_LEVEL env var (default: info)
	lvl := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if lvl == "" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			logger.SetLevel(logrus.InfoLevel)
			logger.Warnf("invalid LOG_LEVEL %q, defaulting to info", lvl)
		} else {
			logger.SetLevel(parsed)
		}
	}

	logger.SetOutput(os.Stdout)
}

// WithComponent returns a logger entry carrying a "component" field (and the
// "service" field from config when set).
// Usage: WithComponent("converter").WithField("direction", "e2g").Info("…")
func WithComponent(component string) *logrus.Entry {
	entry := logger.WithField("component", component)
	if c := config.GetConfig(); c != nil && c.ServiceName != "" {
		entry = entry.WithField("service", c.ServiceName)
	}
	return entry
}
