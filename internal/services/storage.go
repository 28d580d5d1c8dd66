package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// File kinds; each kind gets its own subdirectory under the upload path.
const (
	FileKindJD     = "jd"
	FileKindResume = "resume"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader, kind string) (string, string, error)
	GetFilePath(kind, filename string) string
	DeleteFile(kind, filename string) error
	EnsureUploadDirs() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDirs() error {
	for _, kind := range []string{FileKindJD, FileKindResume} {
		if err := os.MkdirAll(filepath.Join(s.uploadPath, kind), 0755); err != nil {
			return fmt.Errorf("failed to create upload directory: %w", err)
		}
	}

	return nil
}

// AllowedExtension reports whether the file extension is in the supported
// document set.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

func (s *storageService) SaveFile(file *multipart.FileHeader, kind string) (string, string, error) {
	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedExtension(file.Filename) {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	// Generate the unique filename
	uniqueFilename := fmt.Sprintf("%s_%s%s", kind, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, kind, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(kind, filename string) string {
	return filepath.Join(s.uploadPath, kind, filename)
}

func (s *storageService) DeleteFile(kind, filename string) error {
	filePath := s.GetFilePath(kind, filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
