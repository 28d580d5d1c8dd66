package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to read form: %v", err)
	}
	return form.File["file"][0]
}

func TestAllowedExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		allowed  bool
	}{
		{filename: "resume.pdf", allowed: true},
		{filename: "resume.docx", allowed: true},
		{filename: "RESUME.PDF", allowed: true},
		{filename: "resume.DOCX", allowed: true},
		{filename: "resume.doc", allowed: false},
		{filename: "resume.txt", allowed: false},
		{filename: "resume", allowed: false},
		{filename: "resume.pdf.exe", allowed: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			if got := AllowedExtension(tt.filename); got != tt.allowed {
				t.Fatalf("expected %v for %q, got %v", tt.allowed, tt.filename, got)
			}
		})
	}
}

func TestSaveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage := NewStorageService(dir)
	if err := storage.EnsureUploadDirs(); err != nil {
		t.Fatalf("failed to create upload dirs: %v", err)
	}

	content := []byte("%PDF-1.4 fake content")
	header := multipartFile(t, "resume.pdf", content)

	filename, path, err := storage.SaveFile(header, FileKindResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(filename, FileKindResume+"_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected generated filename: %q", filename)
	}
	if filepath.Dir(path) != filepath.Join(dir, FileKindResume) {
		t.Fatalf("file saved outside the resume directory: %q", path)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !bytes.Equal(saved, content) {
		t.Fatalf("saved content differs from upload")
	}
}

func TestSaveFileRejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage := NewStorageService(dir)
	if err := storage.EnsureUploadDirs(); err != nil {
		t.Fatalf("failed to create upload dirs: %v", err)
	}

	header := multipartFile(t, "malware.exe", []byte("nope"))
	if _, _, err := storage.SaveFile(header, FileKindJD); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage := NewStorageService(dir)
	if err := storage.EnsureUploadDirs(); err != nil {
		t.Fatalf("failed to create upload dirs: %v", err)
	}

	header := multipartFile(t, "jd.docx", []byte("content"))
	filename, path, err := storage.SaveFile(header, FileKindJD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := storage.DeleteFile(FileKindJD, filename); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file to be removed")
	}
}
