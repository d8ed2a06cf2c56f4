package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"police-hr-backend/config"
)

type Provider interface {
	Upload(ctx context.Context, storageKey, contentType string, fileReader io.Reader, fileSize int64) error
	Download(ctx context.Context, storageKey string) ([]byte, error)
	Delete(ctx context.Context, storageKey string) error
	MakeBucket(ctx context.Context) error
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

// DocumentKey ключ объекта материалов дела в хранилище
func DocumentKey(tenantID, complaintID, documentID string) string {
	return fmt.Sprintf("%s/%s/%s", tenantID, complaintID, documentID)
}

func (i impl) Upload(ctx context.Context, storageKey, contentType string, fileReader io.Reader, fileSize int64) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, storageKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return nil
}

func (i impl) Download(ctx context.Context, storageKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, storageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return data, nil
}

func (i impl) Delete(ctx context.Context, storageKey string) error {
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, storageKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из хранилища")
	}
	return nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
