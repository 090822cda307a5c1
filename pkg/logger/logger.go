package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"lolscope/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// Uploader is the subset of the S3 client used for archiving the logs.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Logger writes structured logs to stdout and to a temporary file that can be archived.
type Logger struct {
	zerolog.Logger

	mu       sync.Mutex
	logFile  *os.File
	filePath string
	bucket   string
	uploader Uploader
}

// lockedFile serializes file writes with the truncation done after each upload.
type lockedFile struct {
	l *Logger
}

func (w lockedFile) Write(p []byte) (int, error) {
	w.l.mu.Lock()
	defer w.l.mu.Unlock()
	return w.l.logFile.Write(p)
}

// New creates the logger with a temporary file.
func New(level string, stdout io.Writer) (*Logger, error) {
	f, err := os.CreateTemp("", "lolscope-*.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsedLevel = zerolog.InfoLevel
	}

	l := &Logger{
		logFile:  f,
		filePath: f.Name(),
	}

	writer := zerolog.MultiLevelWriter(stdout, lockedFile{l: l})
	l.Logger = zerolog.New(writer).Level(parsedLevel).With().Timestamp().Logger()

	return l, nil
}

// WithBucket configures the S3 log archive from the bucket configuration.
func (l *Logger) WithBucket(cfg config.BucketConfiguration) *Logger {
	if !cfg.LogUploadEnabled() {
		return l
	}

	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return l.WithUploader(cfg.LogBucket, client)
}

// WithUploader sets the uploader used for archiving the logs.
func (l *Logger) WithUploader(bucket string, uploader Uploader) *Logger {
	l.bucket = bucket
	l.uploader = uploader
	return l
}

// Path returns the path of the temporary log file.
func (l *Logger) Path() string {
	return l.filePath
}

// CleanFile truncates the file contents.
func (l *Logger) CleanFile() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Truncate(0); err != nil {
		return err
	}

	_, err := l.logFile.Seek(0, io.SeekStart)
	return err
}

// UploadToS3Bucket uploads the current log file and truncates it afterwards.
func (l *Logger) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	if l.uploader == nil {
		return nil
	}

	l.mu.Lock()
	content, err := os.ReadFile(l.filePath)
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	// Run the put.
	_, err = l.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(content),
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	// Clean the file after sending.
	return l.CleanFile()
}

// ObjectKey returns the archive key for a log uploaded at the given time.
func ObjectKey(service string, at time.Time) string {
	return fmt.Sprintf("%s/%s.log", service, at.UTC().Format("2006-01-02T15-04-05"))
}

// Close closes and removes the temporary file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}
