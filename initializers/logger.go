package initializers

import (
	log "github.com/sirupsen/logrus"
	"hrms-backend/fiberlog"
)

// формат полей под общий сборщик логов
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

	// отдельный логгер для http-запросов, пишет и тела запросов
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
