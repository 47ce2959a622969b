package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// PresignExpiry is the validity window for presigned upload/download URLs
// (spec: 300 seconds).
const PresignExpiry = 300 * time.Second

// BucketConfig configures the pair of buckets C1 operates against: the
// feeder bucket (raw uploads awaiting processing) and the ragged bucket
// (processed artefacts).
type BucketConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
	PublicURL       string `mapstructure:"public_url"`
	InsecureSkipTLS bool   `mapstructure:"insecure_skip_tls"`
	FeederBucket    string `mapstructure:"feeder_bucket"`
	RaggedBucket    string `mapstructure:"ragged_bucket"`
}

// BucketClient is the C1 object store client: it owns both the feeder and
// ragged bucket handles and implements cross-bucket move as copy+delete.
type BucketClient struct {
	Feeder Storage
	Ragged Storage

	feederBucket string
	raggedBucket string
}

// NewBucketClient builds both bucket handles from a single MinIO endpoint
// and credential set.
func NewBucketClient(ctx context.Context, cfg BucketConfig) (*BucketClient, error) {
	base := S3Config{
		Endpoint:        cfg.Endpoint,
		Region:          cfg.Region,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		UsePathStyle:    cfg.UsePathStyle,
		PublicURL:       cfg.PublicURL,
		InsecureSkipTLS: cfg.InsecureSkipTLS,
	}

	feederCfg := base
	feederCfg.Bucket = cfg.FeederBucket
	feeder, err := NewS3Storage(ctx, feederCfg)
	if err != nil {
		return nil, fmt.Errorf("feeder bucket client: %w", err)
	}

	raggedCfg := base
	raggedCfg.Bucket = cfg.RaggedBucket
	ragged, err := NewS3Storage(ctx, raggedCfg)
	if err != nil {
		return nil, fmt.Errorf("ragged bucket client: %w", err)
	}

	return &BucketClient{
		Feeder:       feeder,
		Ragged:       ragged,
		feederBucket: cfg.FeederBucket,
		raggedBucket: cfg.RaggedBucket,
	}, nil
}

// MoveToRagged copies srcKey from the feeder bucket into the ragged bucket
// under a new random key `feeder/<uuid><ext>`, then deletes the source.
// This is copy-then-delete, not atomic. If the delete fails, the object
// is left in both buckets and MoveToRagged returns dstKey together with
// the error; it does not retry the delete itself. Each call picks a fresh
// destination key, so calling it again writes a second copy rather than
// overwriting the first.
func (c *BucketClient) MoveToRagged(ctx context.Context, srcKey, contentType string) (dstKey string, err error) {
	ext := filepath.Ext(srcKey)
	dstKey = fmt.Sprintf("feeder/%s%s", uuid.NewString(), ext)

	rc, err := c.Feeder.Read(ctx, srcKey)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", srcKey, err)
	}
	defer rc.Close()

	if err := c.Ragged.Write(ctx, dstKey, rc, -1, contentType); err != nil {
		return "", fmt.Errorf("write destination %s: %w", dstKey, err)
	}

	if err := c.Feeder.Delete(ctx, srcKey); err != nil {
		return dstKey, fmt.Errorf("delete source %s after copy: %w", srcKey, err)
	}

	return dstKey, nil
}

// FeederBucket returns the feeder bucket name.
func (c *BucketClient) FeederBucket() string { return c.feederBucket }

// RaggedBucket returns the ragged bucket name.
func (c *BucketClient) RaggedBucket() string { return c.raggedBucket }
