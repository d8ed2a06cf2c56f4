package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки логирования запросов: целевой логгер
// и набор тегов-полей (см. tags.go)
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
