package dbpg

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

const pgUniqueViolation = "23505"

// UserUpload records an intent-to-upload (spec §3).
type UserUpload struct {
	ID         uuid.UUID
	Filename   string // bucket key including "feeder/" prefix
	FileSize   int64
	FileHash   string
	UserID     string
	GalleryID  *int64
	CreatedAt  time.Time
}

// UserUploadRepo persists UserUpload rows.
type UserUploadRepo struct {
	pool *pgxpool.Pool
}

func NewUserUploadRepo(pool *pgxpool.Pool) *UserUploadRepo {
	return &UserUploadRepo{pool: pool}
}

// Create inserts a new UserUpload. Callers must first check
// GetByFilename to enforce the unique-by-filename invariant; Create
// itself surfaces a unique-violation as apperror.Duplicated so either
// enforcement point is safe under races.
func (r *UserUploadRepo) Create(ctx context.Context, filename, fileHash, userID string, fileSize int64) (*UserUpload, error) {
	const q = `
		INSERT INTO user_upload (filename, filesize, filehash, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, filename, filesize, filehash, user_id, gallery_id, created_at`

	row := r.pool.QueryRow(ctx, q, filename, fileSize, fileHash, userID)
	u, err := scanUserUpload(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.New(apperror.Duplicated, "UserUploadRepo.Create", err)
		}
		return nil, apperror.New(apperror.Query, "UserUploadRepo.Create", err)
	}
	return u, nil
}

// GetByFilename looks up a UserUpload by its bucket key. Returns
// (nil, nil) if no row exists — callers decide whether that's an error.
func (r *UserUploadRepo) GetByFilename(ctx context.Context, filename string) (*UserUpload, error) {
	const q = `
		SELECT id, filename, filesize, filehash, user_id, gallery_id, created_at
		FROM user_upload WHERE filename = $1`

	row := r.pool.QueryRow(ctx, q, filename)
	u, err := scanUserUpload(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.New(apperror.Query, "UserUploadRepo.GetByFilename", err)
	}
	return u, nil
}

// SetGalleryID links this upload to the gallery row the pipeline
// produced for it.
func (r *UserUploadRepo) SetGalleryID(ctx context.Context, id uuid.UUID, galleryID int64) error {
	const q = `UPDATE user_upload SET gallery_id = $2 WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, id, galleryID); err != nil {
		return apperror.New(apperror.Query, "UserUploadRepo.SetGalleryID", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserUpload(row rowScanner) (*UserUpload, error) {
	var u UserUpload
	if err := row.Scan(&u.ID, &u.Filename, &u.FileSize, &u.FileHash, &u.UserID, &u.GalleryID, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
