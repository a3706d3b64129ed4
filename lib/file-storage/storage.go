package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"hrms-backend/config"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID, fileName string, file []byte) (key string, err error)
	GetResume(ctx context.Context, key string) ([]byte, error)
	UploadOffer(ctx context.Context, offerID string, pdf []byte) (key string, err error)
	GetOffer(ctx context.Context, key string) ([]byte, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, candidateID, fileName string, file []byte) (string, error) {
	key := fmt.Sprintf("resume/%s/%s", candidateID, fileName)
	err := i.putObject(ctx, key, file, "application/octet-stream")
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки резюме в хранилище")
	}
	return key, nil
}

func (i impl) GetResume(ctx context.Context, key string) ([]byte, error) {
	data, err := i.getObject(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения резюме из хранилища")
	}
	return data, nil
}

func (i impl) UploadOffer(ctx context.Context, offerID string, pdf []byte) (string, error) {
	key := fmt.Sprintf("offer/%s.pdf", offerID)
	err := i.putObject(ctx, key, pdf, "application/pdf")
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки оффера в хранилище")
	}
	return key, nil
}

func (i impl) GetOffer(ctx context.Context, key string) ([]byte, error) {
	data, err := i.getObject(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оффера из хранилища")
	}
	return data, nil
}

func (i impl) putObject(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (i impl) getObject(ctx context.Context, key string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}
