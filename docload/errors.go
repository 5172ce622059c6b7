package docload

import "errors"

// ErrUnsupported is returned for file extensions outside the supported set.
var ErrUnsupported = errors.New("docload: unsupported file format")

// ErrEncrypted is returned for password-protected PDFs.
var ErrEncrypted = errors.New("docload: file is password protected and cannot be read")

// ErrNoText is returned when a file yields no extractable text, including
// scanned image-only PDFs that fail the readability gate.
var ErrNoText = errors.New("docload: no extractable text")

// ErrTooLarge is returned when input exceeds Config.MaxFileSize.
var ErrTooLarge = errors.New("docload: file too large")
