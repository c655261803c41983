// Package source provides the image input paths: camera capture, bundled
// example images and user uploads. Every variant yields raw image bytes
// through the same Fetch operation so the analysis flow never depends on
// where the image came from.
package source

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrExampleDirMissing is a configuration error: example mode was
	// selected but the example directory does not exist.
	ErrExampleDirMissing = errors.New("example image directory not found")

	// ErrUnsupportedType rejects uploads that are not JPEG or PNG.
	ErrUnsupportedType = errors.New("unsupported image type, expected JPEG or PNG")

	// ErrEmptyUpload rejects uploads with no bytes at all.
	ErrEmptyUpload = errors.New("empty upload")
)

// Source yields the raw bytes of one microscope image.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// imageExtensions are the file types accepted from disk.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// sniffImage reports whether data looks like a supported image format.
func sniffImage(data []byte) bool {
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
		return true
	}
	return false
}
