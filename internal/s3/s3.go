package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/savormap/savormap-api/internal/config"
)

// ImageArchive copies submitted search images to an S3 bucket for offline
// inspection. Archival is best-effort; callers treat failures as non-fatal.
type ImageArchive struct {
	cfg *config.Config
}

// NewImageArchive creates a new ImageArchive.
func NewImageArchive(cfg *config.Config) *ImageArchive {
	return &ImageArchive{cfg: cfg}
}

// newS3Client creates a new S3 client from the app config.
// When AWS access key and secret are provided, static credentials are used;
// otherwise the default credential chain is preserved (IAM role, instance
// profile, etc.) so ECS/EC2 task roles work without explicit keys.
func (a *ImageArchive) newS3Client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(a.cfg.EnvVars.AWSRegion),
	}

	if a.cfg.EnvVars.AWSAccessKeyID != "" && a.cfg.EnvVars.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.cfg.EnvVars.AWSAccessKeyID,
			a.cfg.EnvVars.AWSSecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// ArchiveSearchImage uploads the image under a fresh key and returns the
// object's location URL.
func (a *ImageArchive) ArchiveSearchImage(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	client, err := a.newS3Client(ctx)
	if err != nil {
		return "", err
	}

	uploader := manager.NewUploader(client)

	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.EnvVars.S3Bucket),
		Key:         aws.String(searchImageKey(mimeType)),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return result.Location, nil
}

// searchImageKey generates the S3 key for a submitted search image.
func searchImageKey(mimeType string) string {
	ext := ".jpg"
	switch mimeType {
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return fmt.Sprintf("searches/%s%s", uuid.New().String(), ext)
}
