package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	Port          string
	FromName      string
	FromEmail     string
	NotifyEmails  []string
	AWSRegion     string
	AWSBucketName string
	PrefsPath     string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	FromName = os.Getenv("FROM_NAME")
	if FromName == "" {
		FromName = "HNS Automotive"
	}

	FromEmail = os.Getenv("FROM_EMAIL")
	if FromEmail == "" {
		FromEmail = "bookings@hnsautomotive.om"
	}

	// Comma-separated operator addresses that receive booking/quote notifications
	NotifyEmails = nil
	for _, addr := range strings.Split(os.Getenv("NOTIFY_EMAILS"), ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			NotifyEmails = append(NotifyEmails, addr)
		}
	}

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "me-south-1"
	}

	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	PrefsPath = os.Getenv("PREFS_PATH")
	if PrefsPath == "" {
		PrefsPath = "prefs.json"
	}
}
