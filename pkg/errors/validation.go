package errors

import (
	"strings"
	"unicode"
)

// MaxCacheSize bounds the number of rasterization slots a store may hold.
const MaxCacheSize = 64

// MaxCells bounds a viewport side in terminal cells.
const MaxCells = 4096

// ValidateViewport checks terminal cell dimensions before they are used
// to size a pixmap.
//
// Zero-sized viewports are rejected here; the rasterizer reports the same
// condition as ALLOCATION_FAILED when it is reached through the render loop.
func ValidateViewport(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return New(ErrCodeInvalidInput, "viewport must be positive, got %dx%d", cols, rows)
	}
	if cols > MaxCells || rows > MaxCells {
		return New(ErrCodeInvalidInput, "viewport too large (max %d cells per side), got %dx%d", MaxCells, cols, rows)
	}
	return nil
}

// ValidateCacheSize checks a configured slot count. Zero disables caching.
func ValidateCacheSize(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidConfig, "cache size cannot be negative, got %d", n)
	}
	if n > MaxCacheSize {
		return New(ErrCodeInvalidConfig, "cache size too large (max %d), got %d", MaxCacheSize, n)
	}
	return nil
}

// ValidateScale checks a snapshot upscale factor.
func ValidateScale(scale int) error {
	if scale < 1 || scale > 64 {
		return New(ErrCodeInvalidInput, "scale must be between 1 and 64, got %d", scale)
	}
	return nil
}

// ValidateOutputPath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end in a path separator
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
