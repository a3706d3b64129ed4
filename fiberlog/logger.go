package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New возвращает middleware, пишущее запись о каждом запросе
// с набором тегов из конфигурации
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := new(data)
	tags := getFuncTagMap(cfg, d)

	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		// preflight-запросы не логируются
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := collectFields(tags, c, d)
		entry := log.WithFields(fields)
		if cfg.Logger != nil {
			entry = cfg.Logger.WithFields(fields)
		}

		status := c.Response().StatusCode()
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("запрос api")
		case status >= fiber.StatusMultipleChoices:
			entry.Warn("запрос api")
		default:
			entry.Info("запрос api")
		}
		return err
	}
}

func collectFields(tags map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(tags))
	for name, tag := range tags {
		value := tag(c, d)
		if str, ok := value.(string); ok && str == "" {
			continue
		}
		fields[name] = value
	}
	return fields
}
