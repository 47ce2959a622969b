package coordinator

import (
	"context"
	"time"

	"github.com/jaconsta/rag-gallery/pkg/dbpg"
	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
)

// Reaper periodically deletes Gallery rows whose pipeline aborted
// before completion (state ORPHANED, spec §9 open-question resolved
// as option (b): periodic cleanup rather than leaving rows forever or
// deleting synchronously on failure). It is a ticker-driven background
// task with its own select loop, separate from the coordinator's.
type Reaper struct {
	gallery *dbpg.GalleryRepo
	grace   time.Duration
	period  time.Duration
}

func NewReaper(gallery *dbpg.GalleryRepo, grace, period time.Duration) *Reaper {
	return &Reaper{gallery: gallery, grace: grace, period: period}
}

// Run ticks every period, deleting orphaned rows older than grace,
// until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	l := pkglog.L()
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.gallery.DeleteOrphaned(ctx, time.Now().Add(-r.grace))
			if err != nil {
				l.Error().Err(err).Msg("orphan reaper sweep failed")
				continue
			}
			if n > 0 {
				l.Info().Int64("deleted", n).Msg("orphan reaper removed stale rows")
			}
		}
	}
}
