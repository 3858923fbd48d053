package storage

import (
	"blogicum/internal/config"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage interface {
	UploadImage(ctx context.Context, postID, fileName, contentType string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	GetImageURL(objectName string) string
	ObjectName(imageURL string) (string, bool)
}

type MinIOClient struct {
	client     *minio.Client
	bucketName string
	publicURL  string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	return &MinIOClient{
		client:     client,
		bucketName: cfg.MinIO.BucketName,
		publicURL:  cfg.MinIO.PublicURL,
	}, nil
}

// EnsureBucket creates the images bucket on first start.
func (m *MinIOClient) EnsureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucketName)
	if err != nil {
		return fmt.Errorf("ошибка проверки бакета %s: %w", m.bucketName, err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucketName, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("ошибка создания бакета %s: %w", m.bucketName, err)
	}

	log.Printf("Создан бакет MinIO: %s", m.bucketName)
	return nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, postID, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			fileExt = exts[0]
		} else {
			fileExt = ".jpg"
		}
	}

	now := time.Now()
	objectName := ObjectPath(postID, now, uuid.New().String(), fileExt)

	_, err := m.client.PutObject(ctx, m.bucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"post-id":           postID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, m.GetImageURL(objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, objectName,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) GetImageURL(objectName string) string {
	return imageURL(m.publicURL, m.bucketName, objectName)
}

func (m *MinIOClient) ObjectName(url string) (string, bool) {
	return objectNameFromURL(m.publicURL, m.bucketName, url)
}

// ObjectPath lays images out as posts/<post>/<year>/<month>/<id><ext>.
func ObjectPath(postID string, at time.Time, id, ext string) string {
	return fmt.Sprintf("posts/%s/%d/%02d/%s%s", postID, at.Year(), at.Month(), id, ext)
}

func imageURL(publicURL, bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", publicURL, bucket, objectName)
}

func objectNameFromURL(publicURL, bucket, url string) (string, bool) {
	prefix := publicURL + "/" + bucket + "/"
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
