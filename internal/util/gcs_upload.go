package util

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// UploadBase64ToGCS decodes a data-URL or raw base64 payload and writes it to
// the given bucket/object. Returns the public URL and the size written.
func UploadBase64ToGCS(base64Data, contentType, bucketName, objectName string) (string, int64, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", 0, err
	}
	defer client.Close()

	// strip "data:image/jpeg;base64," prefix
	if strings.Contains(base64Data, ",") {
		parts := strings.Split(base64Data, ",")
		base64Data = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return "", 0, err
	}

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	sizeBytes, err := w.Write(data)
	if err != nil {
		return "", 0, err
	}

	if err := w.Close(); err != nil {
		return "", 0, err
	}

	return PublicGCSURL(bucketName, objectName), int64(sizeBytes), nil
}

// ListGCSObjects lists object names under a prefix, used for the
// qualification-certificate listing endpoint.
func ListGCSObjects(bucketName, prefix string) ([]string, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var names []string
	it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	re := regexp.MustCompile(`[^a-z0-9_\-]`)
	s = re.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// StaffPhotoObject builds the object path for a staff profile photo.
func StaffPhotoObject(facilityID, staffID, name string) string {
	return fmt.Sprintf("staff/%s/%s_%s.jpg", SanitizePart(facilityID), SanitizePart(staffID), SanitizePart(name))
}

// CertificateObject builds the object path for a qualification certificate.
func CertificateObject(facilityID, staffID, filename string) string {
	return fmt.Sprintf("certificates/%s/%s/%s", SanitizePart(facilityID), SanitizePart(staffID), SanitizePart(filename))
}

func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
