// internal/visa/photos/photos.go
package photos

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	stderrors "visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/common/metrics"

	"github.com/google/uuid"
)

const (
	TypePassport = "passport"
	TypePortrait = "portrait"
)

var (
	ErrInvalidPhotoType = errors.New("INVALID_PHOTO_TYPE")
)

// Photo is an applicant document image.
type Photo struct {
	ApplicantID string
	Type        string
	Filename    string
	ContentType string
	Data        []byte
}

// Sink persists photos.
type Sink interface {
	Save(ctx context.Context, photo *Photo) error
}

// ValidateType checks the photo type against the two accepted slots.
func ValidateType(photoType string) error {
	if photoType != TypePassport && photoType != TypePortrait {
		return ErrInvalidPhotoType
	}
	return nil
}

// Store persists photos in PostgreSQL.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "photo-store"}),
	}
}

func (s *Store) Save(ctx context.Context, photo *Photo) error {
	if err := ValidateType(photo.Type); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applicant_photos (id, applicant_id, photo_type, filename, content_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (applicant_id, photo_type)
		DO UPDATE SET filename = $4, content_type = $5, data = $6, created_at = $7`,
		uuid.NewString(), photo.ApplicantID, photo.Type, photo.Filename,
		photo.ContentType, photo.Data, time.Now().UTC(),
	)
	if err != nil {
		return stderrors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("photo stored", map[string]interface{}{
		"applicantId": photo.ApplicantID,
		"photoType":   photo.Type,
		"sizeBytes":   len(photo.Data),
	})
	return nil
}

// Uploader dispatches photo uploads after submission. Uploads are best effort;
// a failed upload is logged and counted but never fails the order.
type Uploader struct {
	sink    Sink
	timeout time.Duration
	logger  logger.Logger
}

func NewUploader(sink Sink, timeout time.Duration, log logger.Logger) *Uploader {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Uploader{
		sink:    sink,
		timeout: timeout,
		logger:  log.WithFields(map[string]interface{}{"component": "photo-uploader"}),
	}
}

// UploadAll saves each photo in its own goroutine and returns immediately.
// The returned channel closes when every upload has finished, so callers that
// care (tests, shutdown) can wait without the hot path blocking.
func (u *Uploader) UploadAll(photos []*Photo) <-chan struct{} {
	done := make(chan struct{})
	if len(photos) == 0 {
		close(done)
		return done
	}

	var wg sync.WaitGroup
	for _, photo := range photos {
		p := photo
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), u.timeout)
			defer cancel()
			if err := u.sink.Save(ctx, p); err != nil {
				metrics.PhotoUploads.WithLabelValues(p.Type, "failure").Inc()
				u.logger.WithError(err).Warn("photo upload failed", map[string]interface{}{
					"applicantId": p.ApplicantID,
					"photoType":   p.Type,
				})
				return
			}
			metrics.PhotoUploads.WithLabelValues(p.Type, "success").Inc()
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}
