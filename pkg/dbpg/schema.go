package dbpg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL creates the three persisted tables (spec §6 "Persisted
// layout") plus the pgvector extension and the DiskANN-style ANN index,
// created once at startup per spec §4.2.
const schemaSQL = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS user_upload (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	filename   text NOT NULL UNIQUE,
	filesize   bigint NOT NULL,
	filehash   text NOT NULL,
	user_id    text NOT NULL,
	gallery_id bigint,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS gallery (
	id               bigserial PRIMARY KEY,
	path             text NOT NULL,
	thumbnail_path   text,
	thumbnail_height integer,
	thumbnail_width  integer,
	thumbnail_ratio  text,
	embeddings_id    bigint,
	created_at       timestamptz NOT NULL DEFAULT now(),
	updated_at       timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS gallery_rag_embeddings (
	id          bigserial PRIMARY KEY,
	path        text NOT NULL,
	keywords    text[] NOT NULL DEFAULT '{}',
	description text,
	theme       text,
	img_aria    text,
	img_alt     text,
	embedding   vector(512) NOT NULL
);

CREATE INDEX IF NOT EXISTS gallery_rag_embeddings_idx
	ON gallery_rag_embeddings
	USING hnsw (embedding vector_cosine_ops);
`

// Migrate creates the schema if it does not already exist. It is
// idempotent and safe to call from every service instance at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
