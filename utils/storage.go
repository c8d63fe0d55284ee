package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	appConfig "techgetafrica/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadKind classifies what an upload is for; it selects the key prefix.
type UploadKind string

const (
	UploadThumbnail UploadKind = "thumbnails"
	UploadVideo     UploadKind = "videos"
	UploadAvatar    UploadKind = "avatars"
	UploadGeneric   UploadKind = "files"
)

// UploadResult carries the durable URL and metadata of a stored object
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

var s3Client *s3.Client

// InitStorage prepares the S3 client when the S3 backend is configured.
// The LOCAL backend needs no setup beyond the upload directory.
func InitStorage() error {
	cfg := appConfig.AppConfig
	if cfg.StorageBackend != "S3" {
		return os.MkdirAll(cfg.LocalUploadDir, 0755)
	}

	ctx := context.Background()

	var awsCfg aws.Config
	var err error
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKey,
				cfg.S3SecretKey,
				"",
			)),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.S3Region))
	}
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %v", err)
	}

	s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return nil
}

// SaveUploadedFile stores a multipart upload on the configured backend and
// returns its durable URL and metadata.
func SaveUploadedFile(file *multipart.FileHeader, kind UploadKind) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if appConfig.AppConfig.StorageBackend == "S3" {
		return uploadToS3(src, key, file.Size, contentType)
	}
	return saveToLocalDisk(src, key, file.Size, contentType)
}

func uploadToS3(src io.Reader, key string, size int64, contentType string) (*UploadResult, error) {
	if s3Client == nil {
		return nil, fmt.Errorf("storage not initialized")
	}

	cfg := appConfig.AppConfig
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(cfg.S3Bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %v", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.S3Bucket, cfg.S3Region, key)
	if cfg.S3Endpoint != "" {
		url = fmt.Sprintf("%s/%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket, key)
	}

	return &UploadResult{URL: url, Key: key, Size: size, ContentType: contentType}, nil
}

func saveToLocalDisk(src io.Reader, key string, size int64, contentType string) (*UploadResult, error) {
	destPath := filepath.Join(appConfig.AppConfig.LocalUploadDir, key)
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return nil, err
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(appConfig.AppConfig.PublicBaseURL, "/"), key)
	return &UploadResult{URL: url, Key: key, Size: size, ContentType: contentType}, nil
}
