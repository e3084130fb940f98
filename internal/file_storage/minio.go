package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var ErrEmptyFile = errors.New("filestorage: empty file")

// File is an upload in flight. Reader is consumed by Upload.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

// MinioStorage stores resumes and returns a link to the stored object.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *zap.SugaredLogger

	bucketMu    sync.Mutex
	bucketReady bool
}

func NewMinioStorage(client *minio.Client, cfg config.MinioConfig, logger *zap.SugaredLogger) *MinioStorage {
	publicURL := cfg.PUBLIC_URL
	if publicURL == "" && client != nil {
		publicURL = client.EndpointURL().String()
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.RESUME_BUCKET,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

func (s *MinioStorage) Upload(ctx context.Context, f File) (string, error) {
	if f.Reader == nil || f.Size <= 0 {
		return "", ErrEmptyFile
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("failed to create bucket: %w", err)
	}

	objectName := ObjectName(f.Name, time.Now())
	info, err := s.client.PutObject(ctx, s.bucket, objectName, f.Reader, f.Size, minio.PutObjectOptions{
		ContentType: f.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	s.logger.Debugw("Uploaded file", "bucket", info.Bucket, "key", info.Key, "size", info.Size)

	return ObjectURL(s.publicURL, s.bucket, objectName), nil
}

// The bucket check only needs to succeed once per process.
func (s *MinioStorage) ensureBucket(ctx context.Context) error {
	s.bucketMu.Lock()
	defer s.bucketMu.Unlock()

	if s.bucketReady {
		return nil
	}

	if err := createBucketIfNotExists(ctx, s.client, s.bucket); err != nil {
		return err
	}

	s.bucketReady = true
	return nil
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

// Example: ObjectName("My CV.pdf", t) -> "2026/03/V1StGXR8_My_CV.pdf"
func ObjectName(fileName string, now time.Time) string {
	prefix, err := util.GenerateNChar(8)
	if err != nil {
		prefix = fmt.Sprintf("%d", now.UnixNano())
	}

	return fmt.Sprintf("%s/%s_%s", now.Format("2006/01"), prefix, util.SanitizeFileName(fileName))
}

func ObjectURL(base, bucket, objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, strings.Join(segments, "/"))
}
