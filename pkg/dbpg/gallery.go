package dbpg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

// Gallery is the canonical entry for a processed image (spec §3).
type Gallery struct {
	ID              int64
	Path            string
	ThumbnailPath   *string
	ThumbnailHeight *int
	ThumbnailWidth  *int
	ThumbnailRatio  *string
	EmbeddingsID    *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserPhoto is a projection of Gallery+GalleryEmbedding for listing.
type UserPhoto struct {
	ThumbnailPath string
	Ratio         string
	Aria          string
	Alt           string
	Theme         string
}

// GalleryRepo persists Gallery rows.
type GalleryRepo struct {
	pool *pgxpool.Pool
}

func NewGalleryRepo(pool *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{pool: pool}
}

// Create inserts a gallery row with only the source path known; all
// post-processing fields are filled later by UpdateProcessed.
func (r *GalleryRepo) Create(ctx context.Context, path string) (*Gallery, error) {
	const q = `
		INSERT INTO gallery (path) VALUES ($1)
		RETURNING id, path, thumbnail_path, thumbnail_height, thumbnail_width,
		          thumbnail_ratio, embeddings_id, created_at, updated_at`

	var g Gallery
	err := r.pool.QueryRow(ctx, q, path).Scan(
		&g.ID, &g.Path, &g.ThumbnailPath, &g.ThumbnailHeight, &g.ThumbnailWidth,
		&g.ThumbnailRatio, &g.EmbeddingsID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, apperror.New(apperror.Query, "GalleryRepo.Create", err)
	}
	return &g, nil
}

// ProcessedFields is the full set of post-processing attributes written
// in the single UPDATE mandated by spec §4.2 (update_gallery_processed):
// do not split this into per-field updates.
type ProcessedFields struct {
	Path            string
	ThumbnailPath   string
	ThumbnailHeight int
	ThumbnailWidth  int
	ThumbnailRatio  string
	EmbeddingsID    int64
}

// UpdateProcessed fills every post-processing field in one statement and
// bumps updated_at.
func (r *GalleryRepo) UpdateProcessed(ctx context.Context, id int64, f ProcessedFields) error {
	const q = `
		UPDATE gallery SET
			path = $2,
			thumbnail_path = $3,
			thumbnail_height = $4,
			thumbnail_width = $5,
			thumbnail_ratio = $6,
			embeddings_id = $7,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id, f.Path, f.ThumbnailPath, f.ThumbnailHeight, f.ThumbnailWidth, f.ThumbnailRatio, f.EmbeddingsID)
	if err != nil {
		return apperror.New(apperror.Query, "GalleryRepo.UpdateProcessed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.Query, "GalleryRepo.UpdateProcessed", errGalleryNotFound)
	}
	return nil
}

// Delete removes a gallery row together with the embedding row it links
// to, in one statement. The cascade is done here rather than by a
// foreign key: the schema declares none, so the pipeline can create the
// gallery row before the embedding exists.
func (r *GalleryRepo) Delete(ctx context.Context, id int64) error {
	const q = `
		WITH g AS (DELETE FROM gallery WHERE id = $1 RETURNING embeddings_id)
		DELETE FROM gallery_rag_embeddings WHERE id IN (SELECT embeddings_id FROM g)`
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return apperror.New(apperror.Query, "GalleryRepo.Delete", err)
	}
	return nil
}

// ListForUser joins through user_upload to return every gallery row
// belonging to a user.
func (r *GalleryRepo) ListForUser(ctx context.Context, userID string) ([]Gallery, error) {
	const q = `
		SELECT g.id, g.path, g.thumbnail_path, g.thumbnail_height, g.thumbnail_width,
		       g.thumbnail_ratio, g.embeddings_id, g.created_at, g.updated_at
		FROM gallery g
		JOIN user_upload u ON u.gallery_id = g.id
		WHERE u.user_id = $1
		ORDER BY g.created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, apperror.New(apperror.Query, "GalleryRepo.ListForUser", err)
	}
	defer rows.Close()

	var out []Gallery
	for rows.Next() {
		var g Gallery
		if err := rows.Scan(&g.ID, &g.Path, &g.ThumbnailPath, &g.ThumbnailHeight, &g.ThumbnailWidth,
			&g.ThumbnailRatio, &g.EmbeddingsID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, apperror.New(apperror.Query, "GalleryRepo.ListForUser", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ListUserPhotos returns the listing projection ListGallery needs.
func (r *GalleryRepo) ListUserPhotos(ctx context.Context, userID string) ([]UserPhoto, error) {
	const q = `
		SELECT g.thumbnail_path, g.thumbnail_ratio,
		       coalesce(e.img_aria, ''), coalesce(e.img_alt, ''), coalesce(e.theme, '')
		FROM gallery g
		JOIN user_upload u ON u.gallery_id = g.id
		LEFT JOIN gallery_rag_embeddings e ON e.id = g.embeddings_id
		WHERE u.user_id = $1 AND g.thumbnail_path IS NOT NULL
		ORDER BY g.created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, apperror.New(apperror.Query, "GalleryRepo.ListUserPhotos", err)
	}
	defer rows.Close()

	var out []UserPhoto
	for rows.Next() {
		var p UserPhoto
		var ratio *string
		if err := rows.Scan(&p.ThumbnailPath, &ratio, &p.Aria, &p.Alt, &p.Theme); err != nil {
			return nil, apperror.New(apperror.Query, "GalleryRepo.ListUserPhotos", err)
		}
		if ratio != nil {
			p.Ratio = *ratio
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountUserPhotos returns the number of catalogued photos for a user.
func (r *GalleryRepo) CountUserPhotos(ctx context.Context, userID string) (int64, error) {
	const q = `
		SELECT count(*) FROM gallery g
		JOIN user_upload u ON u.gallery_id = g.id
		WHERE u.user_id = $1`

	var n int64
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&n); err != nil {
		return 0, apperror.New(apperror.Query, "GalleryRepo.CountUserPhotos", err)
	}
	return n, nil
}

// FilterableProperties returns the distinct ratio tags and themes for a
// user's photos, deduplicated with explicit set semantics — the original
// source's inverted-append fold (appending only when already present) is
// not replicated here; see SPEC_FULL.md.
func (r *GalleryRepo) FilterableProperties(ctx context.Context, userID string) (aspects, themes []string, err error) {
	const q = `
		SELECT DISTINCT g.thumbnail_ratio, e.theme
		FROM gallery g
		JOIN user_upload u ON u.gallery_id = g.id
		LEFT JOIN gallery_rag_embeddings e ON e.id = g.embeddings_id
		WHERE u.user_id = $1`

	rows, qerr := r.pool.Query(ctx, q, userID)
	if qerr != nil {
		return nil, nil, apperror.New(apperror.Query, "GalleryRepo.FilterableProperties", qerr)
	}
	defer rows.Close()

	aspectSet := map[string]struct{}{}
	themeSet := map[string]struct{}{}
	for rows.Next() {
		var ratio, theme *string
		if serr := rows.Scan(&ratio, &theme); serr != nil {
			return nil, nil, apperror.New(apperror.Query, "GalleryRepo.FilterableProperties", serr)
		}
		if ratio != nil {
			if _, seen := aspectSet[*ratio]; !seen {
				aspectSet[*ratio] = struct{}{}
				aspects = append(aspects, *ratio)
			}
		}
		if theme != nil && *theme != "" {
			if _, seen := themeSet[*theme]; !seen {
				themeSet[*theme] = struct{}{}
				themes = append(themes, *theme)
			}
		}
	}
	return aspects, themes, rows.Err()
}

// DeleteOrphaned removes gallery rows older than olderThan with no
// linked embedding — rows whose pipeline aborted before step 9 ever
// ran (state ORPHANED in spec §4.7). Returns the number of rows
// removed.
func (r *GalleryRepo) DeleteOrphaned(ctx context.Context, olderThan time.Time) (int64, error) {
	const q = `DELETE FROM gallery WHERE embeddings_id IS NULL AND created_at < $1`
	tag, err := r.pool.Exec(ctx, q, olderThan)
	if err != nil {
		return 0, apperror.New(apperror.Query, "GalleryRepo.DeleteOrphaned", err)
	}
	return tag.RowsAffected(), nil
}

var errGalleryNotFound = galleryNotFoundError{}

type galleryNotFoundError struct{}

func (galleryNotFoundError) Error() string { return "gallery row not found" }
