package coordinator

import (
	"bytes"
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jaconsta/rag-gallery/feeder/internal/embedding"
	"github.com/jaconsta/rag-gallery/feeder/internal/imageops"
	"github.com/jaconsta/rag-gallery/feeder/internal/llm"
	"github.com/jaconsta/rag-gallery/feeder/internal/mq"
	"github.com/jaconsta/rag-gallery/pkg/dbpg"
	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
	"github.com/jaconsta/rag-gallery/pkg/storage"
)

// channelCapacity bounds feedCh and genaiCh. Spec §5 describes these as
// unbounded, relying on the broker to apply backpressure upstream; this
// gives both a generous buffer instead, since an unbuffered Go channel
// would block the broker consumer goroutine on every single send.
const channelCapacity = 64

// descriptorJob is what the feed stage (step 10) hands to the
// descriptor stage: the thumbnail as a data URL plus the embedding row
// it annotates.
type descriptorJob struct {
	embeddingID  int64
	imageDataURL string
}

// Coordinator is C7: the single-owner pipeline task. It implements
// mq.Handler so the broker consumer can hand it change events directly;
// HandleChangeEvent only enqueues, it does no blocking work itself.
type Coordinator struct {
	feedCh  chan *mq.ChangeEvent
	genaiCh chan descriptorJob
	doneCh  chan struct{}

	buckets    *storage.BucketClient
	uploads    *dbpg.UserUploadRepo
	gallery    *dbpg.GalleryRepo
	embeddings *dbpg.EmbeddingRepo
	embedder   embedding.Embedder
	backend    llm.Backend // nil disables the descriptor stage entirely
}

func New(buckets *storage.BucketClient, uploads *dbpg.UserUploadRepo, gallery *dbpg.GalleryRepo, embeddings *dbpg.EmbeddingRepo, embedder embedding.Embedder, backend llm.Backend) *Coordinator {
	return &Coordinator{
		feedCh:     make(chan *mq.ChangeEvent, channelCapacity),
		doneCh:     make(chan struct{}),
		genaiCh:    make(chan descriptorJob, channelCapacity),
		buckets:    buckets,
		uploads:    uploads,
		gallery:    gallery,
		embeddings: embeddings,
		embedder:   embedder,
		backend:    backend,
	}
}

// Wait blocks until Run has drained every in-flight feed and
// descriptor goroutine after ctx was cancelled.
func (c *Coordinator) Wait() {
	<-c.doneCh
}

// HandleChangeEvent implements mq.Handler. It only enqueues onto
// feedCh; Run's select loop dispatches the actual work.
func (c *Coordinator) HandleChangeEvent(ctx context.Context, ev *mq.ChangeEvent) error {
	select {
	case c.feedCh <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run is the coordinator's task: a non-blocking select over the feed
// and descriptor channels. Each received item is dispatched to its own
// goroutine so a slow LLM call on the descriptor stage never stalls
// feed ingestion (spec §4.7); ctx cancellation stops accepting new work
// but lets in-flight dispatches finish via a detached context, mirroring
// the broker consumer's own shutdown idiom.
func (c *Coordinator) Run(ctx context.Context) {
	l := pkglog.L()
	var wg sync.WaitGroup
	defer close(c.doneCh)
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			l.Info().Msg("coordinator shutting down, draining in-flight work")
			return
		case ev := <-c.feedCh:
			wg.Add(1)
			go func(ev *mq.ChangeEvent) {
				defer wg.Done()
				c.processFeed(context.WithoutCancel(ctx), ev)
			}(ev)
		case job := <-c.genaiCh:
			wg.Add(1)
			go func(job descriptorJob) {
				defer wg.Done()
				c.processDescriptor(context.WithoutCancel(ctx), job)
			}(job)
		}
	}
}

// processFeed runs steps 1-10 of spec §4.7 for a single change event.
// Any failure logs and abandons the record (state ORPHANED); it never
// panics, per the corrected behaviour in §9.
func (c *Coordinator) processFeed(ctx context.Context, ev *mq.ChangeEvent) {
	l := pkglog.L().With().Str("key", ev.Key).Logger()
	state := StateQueued

	// Step 1: download the original from the feeder bucket.
	rc, err := c.buckets.Feeder.Read(ctx, ev.Key)
	if err != nil {
		l.Error().Err(err).Str("state", string(state)).Msg("download failed, orphaning record")
		return
	}
	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	rc.Close()
	if err != nil {
		l.Error().Err(err).Msg("read failed, orphaning record")
		return
	}

	// Step 2: resolve the owning UserUpload; a missing row cannot be
	// linked to a user, so log-and-skip rather than panic.
	upload, err := c.uploads.GetByFilename(ctx, ev.Key)
	if err != nil {
		l.Error().Err(err).Msg("user_upload lookup failed, orphaning record")
		return
	}
	if upload == nil {
		l.Warn().Msg("no user_upload row for this key, skipping (orphaned)")
		return
	}

	// Step 3: decode + thumbnail.
	img, err := imageops.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		l.Error().Err(err).Msg("decode failed, orphaning record")
		return
	}
	thumb := imageops.MakeThumbnail(img)
	state = StateDecoded

	// Step 4: embed the thumbnail.
	vec, err := c.embedder.Embed(thumb.Image)
	if err != nil {
		l.Error().Err(err).Msg("embedding failed, orphaning record")
		return
	}

	// Step 5: encode + upload the thumbnail under a random key.
	webpBytes, err := imageops.EncodeWebP(thumb.Image)
	if err != nil {
		l.Error().Err(err).Msg("thumbnail encode failed, orphaning record")
		return
	}
	thumbnailKey := "thumbnail/" + uuid.NewString() + ".webp"
	if err := c.buckets.Ragged.Write(ctx, thumbnailKey, bytes.NewReader(webpBytes), int64(len(webpBytes)), "image/webp"); err != nil {
		l.Error().Err(err).Msg("thumbnail upload failed, orphaning record")
		return
	}

	// Step 6: create the gallery row and link the upload to it.
	galleryRow, err := c.gallery.Create(ctx, ev.Key)
	if err != nil {
		l.Error().Err(err).Msg("create_gallery failed, orphaning record")
		return
	}
	if err := c.uploads.SetGalleryID(ctx, upload.ID, galleryRow.ID); err != nil {
		l.Error().Err(err).Msg("linking user_upload.gallery_id failed, orphaning record")
		return
	}

	// Step 7: create the embedding row.
	embeddingID, err := c.embeddings.CreateEmbedding(ctx, thumbnailKey, vec)
	if err != nil {
		l.Error().Err(err).Msg("create_embedding failed, orphaning record")
		return
	}

	// Step 8: move the original blob into the processed bucket.
	newPath, err := c.buckets.MoveToRagged(ctx, ev.Key, ev.ContentType)
	if err != nil {
		l.Error().Err(err).Msg("move to processed bucket failed, orphaning record")
		return
	}

	// Step 9: single UPDATE filling every post-processing field.
	ratio := dbpg.RatioTag(thumb.Width, thumb.Height)
	err = c.gallery.UpdateProcessed(ctx, galleryRow.ID, dbpg.ProcessedFields{
		Path:            newPath,
		ThumbnailPath:   thumbnailKey,
		ThumbnailHeight: thumb.Height,
		ThumbnailWidth:  thumb.Width,
		ThumbnailRatio:  ratio,
		EmbeddingsID:    embeddingID,
	})
	if err != nil {
		l.Error().Err(err).Msg("update_gallery_processed failed, orphaning record")
		return
	}
	state = StateCatalogued
	l.Info().Str("state", string(state)).Int64("gallery_id", galleryRow.ID).Msg("record catalogued")

	// Step 10: dispatch to the descriptor stage.
	job := descriptorJob{
		embeddingID:  embeddingID,
		imageDataURL: imageops.DataURL("image/webp", webpBytes),
	}
	select {
	case c.genaiCh <- job:
	case <-ctx.Done():
		l.Warn().Msg("shutdown before descriptor stage could be dispatched")
	}
}

// processDescriptor runs the descriptor stage: call C6, parse the
// response, patch the embedding row. A nil backend (not configured)
// or any failure here leaves the record in CATALOGUED — still usable,
// just without descriptors (spec §4.7, §4.6).
func (c *Coordinator) processDescriptor(ctx context.Context, job descriptorJob) {
	l := pkglog.L().With().Int64("embedding_id", job.embeddingID).Logger()
	if c.backend == nil {
		return
	}

	out, err := llm.Describe(ctx, c.backend, job.imageDataURL)
	if err != nil {
		l.Warn().Err(err).Msg("descriptor stage abandoned: call failed or response was not parseable JSON")
		return
	}

	if err := c.embeddings.UpdateDescriptors(ctx, job.embeddingID, out.Tags, out.Description, out.Theme, out.AltText, out.AriaText); err != nil {
		l.Error().Err(err).Msg("update_embedding_descriptors failed")
		return
	}
	l.Info().Str("state", string(StateAnnotated)).Msg("record annotated")
}
