package storage

import (
	"context"
	"fmt"
	"io"
)

// ImageStorage persists product images and returns the public path the menu
// templates can serve them from.
type ImageStorage interface {
	Save(ctx context.Context, folder, filename, contentType string, r io.Reader, size int64) (string, error)
}

// MaxImageSize caps uploads at 5 MB.
const MaxImageSize = 5 << 20

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// ValidateImageUpload checks size and content type before storing.
func ValidateImageUpload(size int64, contentType string) error {
	if size > MaxImageSize {
		return fmt.Errorf("file size %d exceeds maximum of %d bytes", size, MaxImageSize)
	}
	for _, allowed := range allowedImageTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
