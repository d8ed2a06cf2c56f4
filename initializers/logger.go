package initializers

import (
	log "github.com/sirupsen/logrus"
	"police-hr-backend/fiberlog"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func InitLogger() *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	log.SetLevel(log.InfoLevel)

	requestLogger := log.New()
	requestLogger.SetFormatter(jsonFormatter())
	requestLogger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: requestLogger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.RequestID,
		},
	}
}
