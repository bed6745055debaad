package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/itsmepratik/oil-change-site-115/config"
)

func TestPresignImageURL(t *testing.T) {
	t.Run("PassesThroughFullURLs", func(t *testing.T) {
		appConfig.AWSBucketName = "catalogue-images"
		t.Cleanup(func() { appConfig.AWSBucketName = "" })

		url := "https://cdn.example.com/Shell-20W50.png"
		assert.Equal(t, url, PresignImageURL(context.Background(), url))
	})

	t.Run("PassesThroughWithoutBucket", func(t *testing.T) {
		appConfig.AWSBucketName = ""
		key := "/catalogue/Shell-20W50.png"
		assert.Equal(t, key, PresignImageURL(context.Background(), key))
	})
}

func TestPresignImageURLsKeepsOrder(t *testing.T) {
	appConfig.AWSBucketName = ""
	images := []string{"/catalogue/a.png", "https://cdn.example.com/b.png", "/catalogue/c.png"}
	assert.Equal(t, images, PresignImageURLs(context.Background(), images))
}

func TestLatencyMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	LatencyMiddleware(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
