// internal/ads/library/library_test.go
package library

import (
	"context"
	"testing"
	"time"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Asset Tests
// ==========================

func TestStore_SaveAsset(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewTestLogger(t))

	mock.ExpectExec("INSERT INTO ad_assets").
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := store.SaveAsset(context.Background(), &Asset{
		URL:         "https://cdn.example.com/ads/story-1.png",
		Pathname:    "ads/story-1.png",
		ContentType: "image/png",
		SizeBytes:   204800,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.UploadedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveAsset_RejectsUnsupportedType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	_, err = store.SaveAsset(context.Background(), &Asset{
		URL:         "https://cdn.example.com/ads/report.pdf",
		ContentType: "application/pdf",
	})

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrorCode("BUSINESS_RULE_VIOLATION"), stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "rejected asset must not reach the database")
}

func TestStore_ListAssets(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	uploaded := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, url, pathname, content_type, size_bytes, uploaded_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "pathname", "content_type", "size_bytes", "uploaded_at"}).
			AddRow("a-1", "https://cdn.example.com/1.png", "ads/1.png", "image/png", 1024, uploaded).
			AddRow("a-2", "https://cdn.example.com/2.mp4", "ads/2.mp4", "video/mp4", 4096, uploaded))

	assets, err := store.ListAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "image/png", assets[0].ContentType)
	assert.Equal(t, int64(4096), assets[1].SizeBytes)
}

func TestIsAllowedAssetType(t *testing.T) {
	assert.True(t, IsAllowedAssetType("image/jpeg"))
	assert.True(t, IsAllowedAssetType("video/mp4"))
	assert.False(t, IsAllowedAssetType("application/pdf"))
	assert.False(t, IsAllowedAssetType("text/html"))
}

// ==========================
// Draft Tests
// ==========================

func TestStore_CreateDraft(t *testing.T) {
	tests := []struct {
		name     string
		draft    *Draft
		wantErr  bool
		validate func(t *testing.T, d *Draft)
	}{
		{
			name: "valid post draft",
			draft: &Draft{
				Format:    FormatPost,
				ImageURLs: []string{"https://cdn.example.com/1.png"},
				Caption:   "Vietnam visa in 1 hour",
				Hashtags:  []string{"#vietnamvisa"},
			},
			validate: func(t *testing.T, d *Draft) {
				assert.NotEmpty(t, d.ID)
				assert.Equal(t, StatusDraft, d.Status)
				assert.Equal(t, d.CreatedAt, d.UpdatedAt)
			},
		},
		{
			name: "nil hashtags normalized",
			draft: &Draft{
				Format:    FormatStory,
				ImageURLs: []string{"https://cdn.example.com/2.png"},
			},
			validate: func(t *testing.T, d *Draft) {
				assert.NotNil(t, d.Hashtags)
				assert.Empty(t, d.Hashtags)
			},
		},
		{
			name:    "invalid format",
			draft:   &Draft{Format: "banner", ImageURLs: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "empty image urls",
			draft:   &Draft{Format: FormatReel},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			store := NewStore(db, logger.NewNoOpLogger())
			if !tt.wantErr {
				mock.ExpectExec("INSERT INTO ad_drafts").
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			created, err := store.CreateDraft(context.Background(), tt.draft)
			if tt.wantErr {
				require.Error(t, err)
				assert.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			tt.validate(t, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_GetDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, format, image_urls").
		WithArgs("d-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "format", "image_urls", "video_url", "caption", "hashtags", "status", "created_at", "updated_at",
		}).AddRow("d-1", "reel", pq.Array([]string{"https://cdn.example.com/1.png"}), "https://cdn.example.com/1.mp4",
			"caption", pq.Array([]string{"#visa"}), "scheduled", now, now))

	draft, err := store.GetDraft(context.Background(), "d-1")
	require.NoError(t, err)
	assert.Equal(t, FormatReel, draft.Format)
	assert.Equal(t, StatusScheduled, draft.Status)
	assert.Equal(t, []string{"#visa"}, draft.Hashtags)
}

func TestStore_GetDraft_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	mock.ExpectQuery("SELECT id, format, image_urls").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "format", "image_urls", "video_url", "caption", "hashtags", "status", "created_at", "updated_at",
		}))

	_, err = store.GetDraft(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStore_UpdateDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	mock.ExpectExec("UPDATE ad_drafts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := store.UpdateDraft(context.Background(), &Draft{
		ID:        "d-1",
		Format:    FormatPost,
		ImageURLs: []string{"https://cdn.example.com/1.png"},
		Status:    StatusScheduled,
	})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateDraft_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	mock.ExpectExec("UPDATE ad_drafts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = store.UpdateDraft(context.Background(), &Draft{
		ID:        "missing",
		Format:    FormatPost,
		ImageURLs: []string{"x"},
	})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStore_DeleteDrafts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	mock.ExpectExec("DELETE FROM ad_drafts").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := store.DeleteDrafts(context.Background(), []string{"d-1", "d-2", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestStore_DeleteDrafts_EmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logger.NewNoOpLogger())

	deleted, err := store.DeleteDrafts(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
