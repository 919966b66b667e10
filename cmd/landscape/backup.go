package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/s3"
	"github.com/hazadus/go-landscape/internal/uploader"
	"github.com/hazadus/go-landscape/internal/utils"
)

// createBackupCommand создает команду backup с привязкой к экземпляру приложения
func (app *Application) createBackupCommand(ctx context.Context) *cobra.Command {
	var (
		selection  selectionOptions
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Upload the selected tracks to S3 storage",
		Long: fmt.Sprintf(`Render the selected tracks as %s and upload them to S3 storage
with progress tracking. Objects are stored under %s/<date>-<uuid>.<ext>.`,
			strings.Join(uploader.Formats(), ", "), uploader.KeyPrefix),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := app.applySelection(&selection); err != nil {
				return err
			}

			// Создаем контекст с таймаутом для загрузки (10 минут)
			uploadCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()
			return app.backupToS3(uploadCtx, formatName)
		},
	}

	selection.bind(cmd)
	cmd.Flags().StringVar(&formatName, "format", uploader.FormatYAML, "backup format: csv, xml or yaml")

	return cmd
}

// storage возвращает хранилище для резервных копий
func (app *Application) storage() (uploader.Storage, error) {
	if app.Storage != nil {
		return app.Storage, nil
	}
	if !app.Config.S3Enabled() {
		return nil, errors.New("не заданы параметры S3: aws_bucket_name, aws_access_key, aws_secret_key")
	}

	s3Uploader, err := s3.NewUploader(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 uploader: %w", err)
	}
	return s3Uploader, nil
}

// backupToS3 загружает выборку в S3 с отображением прогресса
func (app *Application) backupToS3(ctx context.Context, formatName string) error {
	tracks := app.Container.Selection()
	if len(tracks) == 0 {
		fmt.Println("🔍 Выборка пуста, сохранять нечего")
		return nil
	}

	// Размер нужен заранее, чтобы показывать проценты
	content, err := uploader.Render(tracks, formatName)
	if err != nil {
		return err
	}
	size := int64(len(content))

	storage, err := app.storage()
	if err != nil {
		return err
	}
	uploadService := uploader.NewService(storage)

	fmt.Printf("📤 Загружаем резервную копию в S3:\n")
	fmt.Printf("   Треков: %d\n", len(tracks))
	fmt.Printf("   Формат: %s\n", formatName)
	fmt.Printf("   Размер: %s\n", uploader.FormatFileSize(size))
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Println()

	// Создаем канал для отслеживания прогресса
	progressChan := make(chan int64)
	done := make(chan struct{})

	// Запускаем горутину для отображения прогресса
	go func() {
		defer close(done)
		startTime := time.Now()

		for {
			select {
			case progress, ok := <-progressChan:
				if !ok {
					return // Канал закрыт
				}
				if progress > 0 && size > 0 {
					elapsed := time.Since(startTime)
					percentage := float64(progress) / float64(size) * 100

					// Вычисляем скорость загрузки
					speed := float64(progress) / max(elapsed.Seconds(), 0.001)

					fmt.Printf("\r📊 Прогресс: %.1f%% | Скорость: %s/s | Прошло: %s",
						percentage,
						uploader.FormatFileSize(int64(speed)),
						utils.FormatDurationFromSeconds(int(elapsed.Seconds())))
				}
			case <-ctx.Done():
				fmt.Printf("\n🚫 Загрузка отменена\n")
				// Дочитываем канал, чтобы не блокировать загрузку
				for range progressChan {
				}
				return
			}
		}
	}()

	// Выполняем загрузку с контекстом
	result, err := uploadService.Backup(ctx, tracks, formatName, func(bytesRead int64) {
		progressChan <- bytesRead
	})

	// Закрываем канал прогресса и ждем горутину
	close(progressChan)
	<-done

	if err != nil {
		return fmt.Errorf("ошибка загрузки резервной копии: %w", err)
	}

	// Проверяем, не была ли операция отменена
	if ctx.Err() != nil {
		return fmt.Errorf("операция отменена: %w", ctx.Err())
	}

	fmt.Printf("\n✅ Резервная копия загружена в S3!\n")
	fmt.Printf("   Ключ: %s\n", result.Key)
	fmt.Printf("   URL: %s\n", result.URL)
	return nil
}
