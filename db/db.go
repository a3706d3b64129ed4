package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func buildDSN(host, port, database, user, pass string) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		host, port, user, database, pass)
}

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) error {
	if DB != nil {
		return nil
	}
	conn, err := gorm.Open(postgres.Open(buildDSN(host, port, database, user, pass)), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	DB = conn
	if debugMode {
		conn.Logger = logger.Default.LogMode(logger.Info)
		DB = conn.Debug()
	}
	if migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.Info("Сервис успешно подключен к БД")
	return nil
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
