package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus logger. JSON output in
// production, plain text otherwise.
func InitLogger() {
	if os.Getenv("APP_ENV") == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}
