package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New middleware структурированного логирования запросов поверх logrus.
// Набор полей задаётся тегами конфигурации, preflight-запросы не логируются.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := collectFields(ftm, c, d)
		if cfg.Logger == nil {
			log.WithFields(fields).Info("запрос api")
			return err
		}
		entry := cfg.Logger.WithFields(fields)
		switch status := c.Response().StatusCode(); {
		case status >= 500:
			entry.Error("запрос api")
		case status >= 300:
			entry.Warn("запрос api")
		default:
			entry.Info("запрос api")
		}
		return err
	}
}

// collectFields пустые строковые значения не попадают в лог
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for tag, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}
