//go:generate go run go.uber.org/mock/mockgen -source=media_store.go -destination=../../mocks/mock_media_store.go -package=mocks
package storage

import (
	"chat-live/domain/mimetypes"
	"chat-live/errors"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type IMediaStore interface {
	Save(encoded string) (string, error)
}

// MediaStore keeps uploaded images on local disk and serves them under urlPrefix.
type MediaStore struct {
	log       *slog.Logger
	dir       string
	urlPrefix string
	maxBytes  int
}

func NewMediaStore(log *slog.Logger, dir, urlPrefix string, maxBytes int) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &MediaStore{log: log, dir: dir, urlPrefix: urlPrefix, maxBytes: maxBytes}, nil
}

func (s *MediaStore) Dir() string { return s.dir }

// Save decodes a base64 image, a data URL or a bare payload, and stores it.
// The content is sniffed: the declared type of a data URL is not trusted.
// It returns the URL the image is served from.
func (s *MediaStore) Save(encoded string) (string, error) {
	payload := encoded
	if strings.HasPrefix(payload, "data:") {
		_, after, found := strings.Cut(payload, ",")
		if !found {
			return "", errors.ErrUnsupportedMedia
		}
		payload = after
	}

	// base64 grows the payload by 4/3
	if base64.StdEncoding.DecodedLen(len(payload)) > s.maxBytes+2 {
		return "", errors.ErrMediaTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrUnsupportedMedia, err)
	}
	if len(data) > s.maxBytes {
		return "", errors.ErrMediaTooLarge
	}

	mime := mimetype.Detect(data)
	if detected, ok := mimetypes.AllowedImage(mime.String()); !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, detected)
	}

	name := uuid.NewString() + mime.Extension()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write media: %w", err)
	}
	s.log.Debug("Media stored", "name", name, "mime", mime.String(), "bytes", len(data))
	return path.Join(s.urlPrefix, name), nil
}
