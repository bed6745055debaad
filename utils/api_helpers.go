package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/itsmepratik/oil-change-site-115/config"
)

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent, so all we can do is log
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

// RespondError sends a {success:false, error} JSON response and records the
// error on the request's log builder when one is provided.
func RespondError(w http.ResponseWriter, logger *strings.Builder, message string, status int) {
	if logger != nil {
		AddToLogMessage(logger, message)
	} else {
		fmt.Println("[Error]", message)
	}
	RespondJSON(w, status, map[string]interface{}{"success": false, "error": message})
}

// PresignImageURL maps a catalogue image key to a presigned S3 URL.
// Values that are already http/https URLs pass through unchanged, and
// when no bucket is configured (or presigning fails) the raw key is
// returned so the site falls back to its static image path.
func PresignImageURL(ctx context.Context, image string) string {
	if strings.HasPrefix(image, "http") || config.AWSBucketName == "" {
		return image
	}
	url, err := GetPresignedURL(ctx, image)
	if err != nil {
		return image
	}
	return url
}

// PresignImageURLs is the multi-image form of PresignImageURL.
func PresignImageURLs(ctx context.Context, images []string) []string {
	presignedURLs := make([]string, 0, len(images))
	for _, img := range images {
		presignedURLs = append(presignedURLs, PresignImageURL(ctx, img))
	}
	return presignedURLs
}

// LatencyMiddleware logs the duration of each request
func LatencyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		fmt.Printf("[LATENCY] %s %s - %v\n", r.Method, r.URL.Path, duration)
	})
}
