package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

// Purpose selects the subdirectory a file is stored under.
type Purpose string

const (
	ProfilePictures   Purpose = "profile_pics"
	GuidePhotos       Purpose = "guide_photos"
	DestinationPhotos Purpose = "destinations"
	AccommodationImgs Purpose = "accommodations"
	ReviewPhotos      Purpose = "review_photos"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Store saves images to local disk under per-purpose directories and hands
// back public URLs. Simple: sniff type -> write file -> return URL.
type Store struct {
	baseDir    string // absolute path to uploads dir
	staticBase string // URL prefix for serving files
}

func NewStore(baseDir, staticBase string) *Store {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &Store{baseDir: baseDir, staticBase: staticBase}
}

func (s *Store) BaseDir() string { return s.baseDir }

// Save writes the uploaded file under baseDir/<purpose>/ with a uuid name and
// returns the public URL.
func (s *Store) Save(purpose Purpose, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	mimeType := http.DetectContentType(head[:n])
	if !allowedMimeTypes[mimeType] {
		return "", ErrUnsupportedType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = extForMime(mimeType)
	}
	name := uuid.NewString() + ext

	dir := filepath.Join(s.baseDir, string(purpose))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.staticBase, purpose, name), nil
}

func extForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
