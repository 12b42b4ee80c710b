// internal/ads/library/library.go
package library

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrDraftNotFound = stderrors.New("DRAFT_NOT_FOUND")

// ==========================
// Models
// ==========================

// DraftFormat is the creative layout of an ad draft.
type DraftFormat string

const (
	FormatPost  DraftFormat = "post"
	FormatStory DraftFormat = "story"
	FormatReel  DraftFormat = "reel"
)

// DraftStatus tracks a draft through the publishing pipeline.
type DraftStatus string

const (
	StatusDraft     DraftStatus = "draft"
	StatusScheduled DraftStatus = "scheduled"
	StatusPosted    DraftStatus = "posted"
)

// Asset is the stored metadata for an uploaded creative file. The bytes live
// in external blob storage; only the reference is kept here.
type Asset struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Pathname    string    `json:"pathname"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Draft is a composed ad awaiting review or scheduling.
type Draft struct {
	ID        string      `json:"id"`
	Format    DraftFormat `json:"format"`
	ImageURLs []string    `json:"imageUrls"`
	VideoURL  string      `json:"videoUrl,omitempty"`
	Caption   string      `json:"caption"`
	Hashtags  []string    `json:"hashtags"`
	Status    DraftStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

var allowedAssetTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/webm": true,
}

// IsAllowedAssetType reports whether the MIME type may enter the library.
func IsAllowedAssetType(contentType string) bool {
	return allowedAssetTypes[contentType]
}

func validFormat(f DraftFormat) bool {
	return f == FormatPost || f == FormatStory || f == FormatReel
}

// ==========================
// Store
// ==========================

// Store persists library assets and ad drafts.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "ad-library"}),
	}
}

// SaveAsset records an uploaded creative file. The content type is gated
// against the image/video allow-list.
func (s *Store) SaveAsset(ctx context.Context, asset *Asset) (*Asset, error) {
	if !IsAllowedAssetType(asset.ContentType) {
		return nil, errors.NewBusinessRuleError("unsupported asset content type", asset.ContentType)
	}

	stored := *asset
	stored.ID = uuid.New().String()
	stored.UploadedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ad_assets (id, url, pathname, content_type, size_bytes, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		stored.ID, stored.URL, stored.Pathname, stored.ContentType, stored.SizeBytes, stored.UploadedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("asset saved", map[string]interface{}{
		"assetId":     stored.ID,
		"contentType": stored.ContentType,
	})
	return &stored, nil
}

// ListAssets returns library assets newest first.
func (s *Store) ListAssets(ctx context.Context) ([]Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, pathname, content_type, size_bytes, uploaded_at
		 FROM ad_assets ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("list assets", err)
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.ID, &a.URL, &a.Pathname, &a.ContentType, &a.SizeBytes, &a.UploadedAt); err != nil {
			return nil, errors.NewQueryExecutionFailedError("scan asset", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// DeleteAsset removes an asset record. Missing ids are not an error, matching
// the bulk-delete semantics of the admin UI.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM ad_assets WHERE id = $1`, id)
	if err != nil {
		return errors.NewQueryExecutionFailedError("delete asset", err)
	}
	return nil
}

// CreateDraft stores a new ad draft in status draft.
func (s *Store) CreateDraft(ctx context.Context, draft *Draft) (*Draft, error) {
	if !validFormat(draft.Format) {
		return nil, errors.NewBusinessRuleError("invalid format", "must be post, story, or reel")
	}
	if len(draft.ImageURLs) == 0 {
		return nil, errors.NewBusinessRuleError("imageUrls must be a non-empty array", "")
	}

	now := time.Now().UTC()
	stored := *draft
	stored.ID = uuid.New().String()
	stored.Status = StatusDraft
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.Hashtags == nil {
		stored.Hashtags = []string{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ad_drafts (id, format, image_urls, video_url, caption, hashtags, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		stored.ID, string(stored.Format), pq.Array(stored.ImageURLs), stored.VideoURL,
		stored.Caption, pq.Array(stored.Hashtags), string(stored.Status), stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("draft created", map[string]interface{}{
		"draftId": stored.ID,
		"format":  string(stored.Format),
	})
	return &stored, nil
}

// GetDraft loads one draft by id.
func (s *Store) GetDraft(ctx context.Context, id string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, format, image_urls, video_url, caption, hashtags, status, created_at, updated_at
		 FROM ad_drafts WHERE id = $1`, id)
	return scanDraft(row)
}

// ListDrafts returns all drafts newest first.
func (s *Store) ListDrafts(ctx context.Context) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, format, image_urls, video_url, caption, hashtags, status, created_at, updated_at
		 FROM ad_drafts ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("list drafts", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

// UpdateDraft overwrites the mutable fields of an existing draft. Id and
// creation time are preserved.
func (s *Store) UpdateDraft(ctx context.Context, draft *Draft) (*Draft, error) {
	if !validFormat(draft.Format) {
		return nil, errors.NewBusinessRuleError("invalid format", "must be post, story, or reel")
	}

	stored := *draft
	stored.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`UPDATE ad_drafts
		 SET format = $2, image_urls = $3, video_url = $4, caption = $5, hashtags = $6, status = $7, updated_at = $8
		 WHERE id = $1`,
		stored.ID, string(stored.Format), pq.Array(stored.ImageURLs), stored.VideoURL,
		stored.Caption, pq.Array(stored.Hashtags), string(stored.Status), stored.UpdatedAt,
	)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("update draft", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrDraftNotFound
	}
	return &stored, nil
}

// DeleteDrafts removes the given drafts and reports how many existed.
func (s *Store) DeleteDrafts(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM ad_drafts WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, errors.NewQueryExecutionFailedError("delete drafts", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDraft(row rowScanner) (*Draft, error) {
	var d Draft
	var format, status string
	err := row.Scan(&d.ID, &format, pq.Array(&d.ImageURLs), &d.VideoURL,
		&d.Caption, pq.Array(&d.Hashtags), &status, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("scan draft", err)
	}
	d.Format = DraftFormat(format)
	d.Status = DraftStatus(status)
	return &d, nil
}
