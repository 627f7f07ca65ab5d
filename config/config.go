package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	GmailUser  string
	GmailPass  string

	// GCS buckets for profile photos and qualification certificates.
	PhotoBucket       string
	CertificateBucket string

	// Vertex AI project used by the resume draft endpoint.
	GenAIProject  string
	GenAILocation string
}

func LoadConfig() Config {
	return Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GmailUser:         os.Getenv("GMAIL_USER"),
		GmailPass:         os.Getenv("GMAIL_APP_PASSWORD"),
		PhotoBucket:       os.Getenv("GCS_PHOTO_BUCKET"),
		CertificateBucket: os.Getenv("GCS_CERTIFICATE_BUCKET"),
		GenAIProject:      os.Getenv("GENAI_PROJECT"),
		GenAILocation:     os.Getenv("GENAI_LOCATION"),
	}
}
