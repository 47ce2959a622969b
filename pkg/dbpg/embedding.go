package dbpg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

// EmbeddingDims is the fixed vector width every embedding must have
// (spec §3); FindNearest and CreateEmbedding both reject any other
// length rather than let Postgres surface an opaque dimension error.
const EmbeddingDims = 512

// Embedding is a row in gallery_rag_embeddings.
type Embedding struct {
	ID          int64
	Path        string
	Keywords    []string
	Description string
	Theme       string
	ImgAria     string
	ImgAlt      string
}

// NearestEmbedding pairs an Embedding with its cosine distance to the
// query vector used in FindNearest.
type NearestEmbedding struct {
	Embedding
	Distance float64
}

// EmbeddingRepo persists gallery_rag_embeddings rows.
type EmbeddingRepo struct {
	pool *pgxpool.Pool
}

func NewEmbeddingRepo(pool *pgxpool.Pool) *EmbeddingRepo {
	return &EmbeddingRepo{pool: pool}
}

// CreateEmbedding stores a freshly computed embedding. Descriptor fields
// (keywords/description/theme/alt/aria) are populated later by the LLM
// pipeline stage via UpdateDescriptors; vec must be exactly
// EmbeddingDims long.
func (r *EmbeddingRepo) CreateEmbedding(ctx context.Context, path string, vec []float32) (int64, error) {
	if len(vec) != EmbeddingDims {
		return 0, apperror.New(apperror.EmbeddingModel, "EmbeddingRepo.CreateEmbedding",
			fmt.Errorf("embedding has %d dims, want %d", len(vec), EmbeddingDims))
	}

	const q = `
		INSERT INTO gallery_rag_embeddings (path, embedding)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	if err := r.pool.QueryRow(ctx, q, path, pgvector.NewVector(vec)).Scan(&id); err != nil {
		return 0, apperror.New(apperror.Query, "EmbeddingRepo.CreateEmbedding", err)
	}
	return id, nil
}

// UpdateDescriptors fills in the LLM-derived descriptor fields in one
// statement, mirroring the single-UPDATE pattern used for gallery rows.
func (r *EmbeddingRepo) UpdateDescriptors(ctx context.Context, id int64, keywords []string, description, theme, alt, aria string) error {
	const q = `
		UPDATE gallery_rag_embeddings SET
			keywords    = $2,
			description = $3,
			theme       = $4,
			img_alt     = $5,
			img_aria    = $6
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, q, id, keywords, description, theme, alt, aria); err != nil {
		return apperror.New(apperror.Query, "EmbeddingRepo.UpdateDescriptors", err)
	}
	return nil
}

// FindNearest runs an ANN cosine-distance search (spec's "DiskANN-style"
// search, served here by pgvector's hnsw index) and returns the closest
// limit rows, nearest first.
func (r *EmbeddingRepo) FindNearest(ctx context.Context, query []float32, limit int) ([]NearestEmbedding, error) {
	if len(query) != EmbeddingDims {
		return nil, apperror.New(apperror.EmbeddingModel, "EmbeddingRepo.FindNearest",
			fmt.Errorf("query vector has %d dims, want %d", len(query), EmbeddingDims))
	}
	if limit <= 0 {
		limit = 10
	}

	const q = `
		SELECT id, path, keywords, coalesce(description, ''), coalesce(theme, ''),
		       coalesce(img_aria, ''), coalesce(img_alt, ''), embedding <=> $1 AS distance
		FROM gallery_rag_embeddings
		ORDER BY embedding <=> $1
		LIMIT $2`

	rows, err := r.pool.Query(ctx, q, pgvector.NewVector(query), limit)
	if err != nil {
		return nil, apperror.New(apperror.Query, "EmbeddingRepo.FindNearest", err)
	}
	defer rows.Close()

	var out []NearestEmbedding
	for rows.Next() {
		var n NearestEmbedding
		if err := rows.Scan(&n.ID, &n.Path, &n.Keywords, &n.Description, &n.Theme, &n.ImgAria, &n.ImgAlt, &n.Distance); err != nil {
			return nil, apperror.New(apperror.Query, "EmbeddingRepo.FindNearest", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Get looks up a single embedding row by id.
func (r *EmbeddingRepo) Get(ctx context.Context, id int64) (*Embedding, error) {
	const q = `
		SELECT id, path, keywords, coalesce(description, ''), coalesce(theme, ''),
		       coalesce(img_aria, ''), coalesce(img_alt, '')
		FROM gallery_rag_embeddings WHERE id = $1`

	var e Embedding
	if err := r.pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.Path, &e.Keywords, &e.Description, &e.Theme, &e.ImgAria, &e.ImgAlt); err != nil {
		return nil, apperror.New(apperror.Query, "EmbeddingRepo.Get", err)
	}
	return &e, nil
}
