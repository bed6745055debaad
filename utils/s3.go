package utils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "github.com/itsmepratik/oil-change-site-115/config"
)

var (
	S3Client      *s3.Client
	PresignClient *s3.PresignClient

	s3Once    sync.Once
	s3InitErr error
)

// InitS3 initializes the S3 client
func InitS3() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(appConfig.AWSRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config, %v", err)
	}

	S3Client = s3.NewFromConfig(cfg)
	PresignClient = s3.NewPresignClient(S3Client)
	log.Println("S3 Client Initialized")
	return nil
}

// ensureS3 lazily initializes the S3 clients exactly once. Clients set
// up ahead of time (for example in tests) are left untouched.
func ensureS3() error {
	s3Once.Do(func() {
		if PresignClient == nil {
			s3InitErr = InitS3()
		}
	})
	return s3InitErr
}

// GetPresignedURL generates a presigned URL for a catalogue image object
func GetPresignedURL(ctx context.Context, objectKey string) (string, error) {
	if err := ensureS3(); err != nil {
		return "", err
	}

	request, err := PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(appConfig.AWSBucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}

	return request.URL, nil
}
