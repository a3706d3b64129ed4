package initializers

import (
	"context"
	s3client "hrms-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	err = s3client.MakeBucket(context.Background(), minioClient)
	if err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
	}

	log.Info("S3 клиент успешно инициализирован")
}
