package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger instance.
var Logger *logrus.Logger

// Init configures structured JSON logging. The level comes from LOG_LEVEL
// and defaults to info.
func Init(serviceName string) *logrus.Logger {
	Logger = logrus.New()

	Logger.SetOutput(os.Stdout)

	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err == nil {
			Logger.SetLevel(lvl)
		}
	} else {
		Logger.SetLevel(logrus.InfoLevel)
	}

	Logger.WithField("service", serviceName).Debug("logger initialized")

	return Logger
}

// WithRequestID returns an entry carrying the request id field, or a plain
// entry when the id is empty.
func WithRequestID(logger *logrus.Logger, requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(logger)
	}
	return logger.WithField("request_id", requestID)
}
