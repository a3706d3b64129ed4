package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	// Logger - целевой логгер, nil означает глобальный logrus
	Logger *logrus.Logger
	// Tags - список тегов, попадающих в каждую запись
	Tags []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
