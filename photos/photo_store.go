package photos

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxFileSize = 5 * 1024 * 1024
	URLPrefix   = "/api/photos/"
)

var (
	ErrTooLarge        = errors.New("photo exceeds the 5MB limit")
	ErrUnsupportedType = errors.New("only JPG and PNG photos are allowed")
	ErrNotFound        = errors.New("photo not found")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// The bytes must sniff as one of these regardless of the file name.
var allowedContentTypes = []string{"image/jpeg", "image/png"}

// Photo is an uploaded image kept in memory.
type Photo struct {
	Token       string
	Filename    string
	ContentType string
	Data        []byte
}

// Store keeps uploaded photos for the lifetime of the process and hands out
// transient URLs for them.
type Store struct {
	mu     sync.RWMutex
	photos map[string]Photo
}

func NewStore() *Store {
	return &Store{photos: make(map[string]Photo)}
}

// SaveUpload validates and stores a multipart upload, returning its URL.
func (s *Store) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	return s.Save(fileHeader.Filename, file)
}

// Save stores the image read from r under a fresh token.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		return "", ErrTooLarge
	}

	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), allowedContentTypes...) {
		return "", ErrUnsupportedType
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.photos[token] = Photo{
		Token:       token,
		Filename:    filename,
		ContentType: detected.String(),
		Data:        data,
	}
	s.mu.Unlock()

	return URLPrefix + token, nil
}

func (s *Store) Get(token string) (Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.photos[token]
	if !ok {
		return Photo{}, ErrNotFound
	}
	return p, nil
}

func newToken() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate photo token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
