package logger

import (
	"os"

	"go-bank-account/config"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Init configures the global logger from config.AppConfig.Log.
func Init() {
	cfg := config.AppConfig.Log

	Log.SetOutput(os.Stdout)
	if cfg.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
