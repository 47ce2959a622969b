package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaconsta/rag-gallery/feeder/internal/config"
	"github.com/jaconsta/rag-gallery/feeder/internal/coordinator"
	"github.com/jaconsta/rag-gallery/feeder/internal/embedding"
	"github.com/jaconsta/rag-gallery/feeder/internal/llm"
	"github.com/jaconsta/rag-gallery/feeder/internal/mq"
	"github.com/jaconsta/rag-gallery/pkg/dbpg"
	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
	"github.com/jaconsta/rag-gallery/pkg/storage"
)

const (
	shutdownTimeout = 30 * time.Second
	reaperGrace     = 24 * time.Hour
	reaperPeriod    = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "feeder",
	})
	l := pkglog.L()
	l.Info().Msg("feeder starting")

	ctx, cancel := context.WithCancel(context.Background())

	buckets, err := storage.NewBucketClient(ctx, cfg.Storage)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to init object storage")
	}

	pool, err := dbpg.NewPool(ctx, dbpg.PoolConfig{DSN: cfg.Database.DSN, MaxConns: cfg.Database.MaxConns})
	if err != nil {
		l.Fatal().Err(err).Msg("failed to init database pool")
	}
	defer pool.Close()

	uploads := dbpg.NewUserUploadRepo(pool)
	gallery := dbpg.NewGalleryRepo(pool)
	embeddings := dbpg.NewEmbeddingRepo(pool)
	embedder := embedding.NewClipEmbedder()

	backend, err := llm.NewBackend(llm.Config{
		Backend: cfg.LLM.Backend,
		OpenAI:  struct{ APIKey, Model string }(cfg.LLM.OpenAI),
		Ollama:  struct{ BaseURL, Model string }(cfg.LLM.Ollama),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("failed to init llm backend")
	}

	coord := coordinator.New(buckets, uploads, gallery, embeddings, embedder, backend)
	go coord.Run(ctx)

	reaper := coordinator.NewReaper(gallery, reaperGrace, reaperPeriod)
	go reaper.Run(ctx)

	consumer, err := mq.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup, coord)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to init kafka consumer")
	}
	if err := consumer.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("failed to start kafka consumer")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	l.Info().Msg("shutting down: waiting for in-flight processing to complete")
	cancel()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		consumer.Close() // waits for the poll loop to drain
		coord.Wait()     // then waits for in-flight feed/descriptor work
	}()

	select {
	case <-shutdownDone:
		l.Info().Msg("shutdown complete")
	case <-time.After(shutdownTimeout):
		l.Warn().Msg("shutdown timed out")
	}
}
