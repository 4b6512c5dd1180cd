package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxWorkbookUploadSize caps uploaded category workbooks
const MaxWorkbookUploadSize = 5 * 1024 * 1024 // 5MB

// ErrInvalidUpload is returned for files that are not acceptable workbooks
var ErrInvalidUpload = errors.New("invalid upload")

// xlsx files are zip archives
var zipMagic = []byte("PK\x03\x04")

// ValidateWorkbookUpload checks that the uploaded file is an .xlsx workbook within size limits
func ValidateWorkbookUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxWorkbookUploadSize {
		return fmt.Errorf("%w: file size exceeds maximum allowed size of 5MB", ErrInvalidUpload)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" {
		return fmt.Errorf("%w: only .xlsx files are allowed", ErrInvalidUpload)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	header := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(file, header); err != nil || !bytes.Equal(header, zipMagic) {
		return fmt.Errorf("%w: file is not a valid workbook", ErrInvalidUpload)
	}
	return nil
}
