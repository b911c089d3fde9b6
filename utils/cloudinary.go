package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// Cloudinary initializes (once) and returns the Cloudinary client.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	if cld != nil {
		return cld, nil
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set")
	}

	c, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cld = c
	return cld, nil
}

// UploadImage pushes a multipart upload into the given folder and returns the
// delivery URL.
func UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	client, err := Cloudinary()
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	result, err := client.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for upload")
	}
	return result.SecureURL, nil
}
