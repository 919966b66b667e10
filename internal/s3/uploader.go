// Package s3 загружает резервные копии каталога в Amazon S3 или совместимое хранилище
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/go-playground/validator/v10"
)

// Config содержит настройки для S3
type Config struct {
	Region     string `validate:"required"`
	AccessKey  string `validate:"required"`
	SecretKey  string `validate:"required"`
	Endpoint   string `validate:"omitempty,url"`
	BucketName string `validate:"required"`
}

var validate = validator.New()

// Validate проверяет, что заданы все обязательные параметры
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("неполная конфигурация S3: %w", err)
	}
	return nil
}

// objectUploader - часть s3manager.Uploader, которой пользуется Uploader
type objectUploader interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// objectDeleter - часть клиента S3 для удаления объектов
type objectDeleter interface {
	DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
}

// Uploader обертка для S3 uploader
type Uploader struct {
	s3Uploader objectUploader
	s3Client   objectDeleter
	config     *Config
}

// NewUploader создает новый S3 uploader
func NewUploader(config *Config) (*Uploader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return newUploader(config, s3manager.NewUploader(sess), s3.New(sess)), nil
}

func newUploader(config *Config, uploader objectUploader, client objectDeleter) *Uploader {
	return &Uploader{
		s3Uploader: uploader,
		s3Client:   client,
		config:     config,
	}
}

// UploadFile загружает объект в S3 и возвращает его адрес
func (u *Uploader) UploadFile(ctx context.Context, reader io.Reader, key string) (string, error) {
	_, err := u.s3Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(u.config.BucketName),
		Key:    aws.String(key),
		Body:   reader,
	})

	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	return u.ObjectURL(key), nil
}

// ObjectURL формирует адрес объекта
func (u *Uploader) ObjectURL(key string) string {
	if u.config.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.config.Endpoint, "/"), u.config.BucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.config.BucketName, u.config.Region, key)
}

// DeleteFile удаляет файл из S3
func (u *Uploader) DeleteFile(ctx context.Context, key string) error {
	_, err := u.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.config.BucketName),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("ошибка удаления файла из S3: %w", err)
	}

	return nil
}
