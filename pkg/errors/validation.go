package errors

import (
	"strings"
	"unicode"
)

// Output formats accepted by the render surfaces.
var validFormats = map[string]bool{
	"dot":  true,
	"svg":  true,
	"json": true,
	"text": true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "unknown format: %q", format)
	}
	return nil
}

// Solver names accepted by the CLI and API.
var validAlgorithms = map[string]bool{
	"auto":        true,
	"brute-force": true,
	"subset":      true,
}

// ValidateAlgorithm validates a solver algorithm name.
func ValidateAlgorithm(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm cannot be empty")
	}
	if !validAlgorithms[name] {
		return New(ErrCodeInvalidAlgorithm, "unknown algorithm: %q", name)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateVertexCount validates a vertex count from an untrusted document
// before any allocation happens on its behalf.
func ValidateVertexCount(n, limit int) error {
	if n < 0 {
		return New(ErrCodeInvalidGraph, "vertex count cannot be negative: %d", n)
	}
	if limit > 0 && n > limit {
		return New(ErrCodeTooManyVertices, "%d vertices exceeds limit of %d", n, limit)
	}
	return nil
}
