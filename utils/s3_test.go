package utils

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/itsmepratik/oil-change-site-115/config"
)

// Concurrent first requests must all see a usable presign client.
func TestGetPresignedURLConcurrent(t *testing.T) {
	appConfig.AWSBucketName = "catalogue-images-test"
	t.Cleanup(func() { appConfig.AWSBucketName = "" })

	client := s3.New(s3.Options{
		Region:      "me-south-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
	})
	S3Client = client
	PresignClient = s3.NewPresignClient(client)

	const n = 8
	urls := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			urls[i], errs[i] = GetPresignedURL(context.Background(), "catalogue/Shell-20W50.png")
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Contains(t, urls[i], "catalogue-images-test")
		assert.Contains(t, urls[i], "Shell-20W50.png")
	}
}
