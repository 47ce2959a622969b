package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/jaconsta/rag-gallery/webserver/internal/config"
	webgrpc "github.com/jaconsta/rag-gallery/webserver/internal/grpc"
	webhttp "github.com/jaconsta/rag-gallery/webserver/internal/http"

	"github.com/jaconsta/rag-gallery/pkg/authcrypto"
	"github.com/jaconsta/rag-gallery/pkg/authsession"
	"github.com/jaconsta/rag-gallery/pkg/dbpg"
	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
	"github.com/jaconsta/rag-gallery/pkg/storage"

	pbauth "github.com/jaconsta/rag-gallery/proto/auth"
	pbgallery "github.com/jaconsta/rag-gallery/proto/gallery"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "webserver",
	})
	l := pkglog.L()
	l.Info().Msg("webserver starting")

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

	keys, err := authcrypto.GenerateKeyPair()
	if err != nil {
		l.Fatal().Err(err).Msg("failed to generate handshake keypair")
	}
	sessions, err := authsession.NewManager(cfg.Auth.SessionTTL)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to init session manager")
	}

	authServer := webgrpc.NewAuthGreeterServer(keys, sessions)
	galleryServer := webgrpc.NewGalleryViewServer(buckets, uploads, gallery)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			pkglog.UnaryServerInterceptor(l),
			webgrpc.AuthInterceptor(sessions),
		),
	)
	pbauth.RegisterAuthGreeterServer(grpcServer, authServer)
	pbgallery.RegisterGalleryViewServer(grpcServer, galleryServer)

	grpcAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		l.Fatal().Err(err).Str("addr", grpcAddr).Msg("failed to bind grpc listener")
	}
	go func() {
		l.Info().Str("addr", grpcAddr).Msg("grpc server listening")
		if err := grpcServer.Serve(lis); err != nil {
			l.Error().Err(err).Msg("grpc server stopped")
		}
	}()

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
	httpServer := &http.Server{Addr: httpAddr, Handler: webhttp.NewRouter()}
	go func() {
		l.Info().Str("addr", httpAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Error().Err(err).Msg("http server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	l.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		l.Warn().Err(err).Msg("http shutdown did not complete cleanly")
	}

	l.Info().Msg("shutdown complete")
}
