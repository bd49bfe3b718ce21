// Package images validates optional image uploads attached to posts. Only the
// file extension and the byte count are checked; the content itself is not
// inspected.
package images

import (
	"fmt"
	"io"
	"strings"

	"github.com/averyk/miniblog/internal/common"
)

// MaxImageSize is the upload ceiling in bytes.
const MaxImageSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// Ext returns the lower-cased extension of filename without the dot, or ""
// when there is none.
func Ext(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Allowed reports whether filename carries an accepted image extension.
func Allowed(filename string) bool {
	return allowedExtensions[Ext(filename)]
}

// Read validates and reads an optional upload. An empty filename means no
// image was attached and yields (nil, "", nil). A disallowed extension or a
// payload over MaxImageSize is ErrValidation; the size is checked on the raw
// bytes, before anything is encoded for storage or display.
func Read(r io.Reader, filename string) ([]byte, string, error) {
	if filename == "" {
		return nil, "", nil
	}
	if !Allowed(filename) {
		return nil, "", fmt.Errorf("%w: allowed image types are png, jpg, jpeg, gif, webp", common.ErrValidation)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, "", fmt.Errorf("%w: image larger than 5 MiB", common.ErrValidation)
	}
	return data, Ext(filename), nil
}
