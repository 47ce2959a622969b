package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/jaconsta/rag-gallery/proto/gallery"

	"github.com/jaconsta/rag-gallery/pkg/dbpg"
	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
	"github.com/jaconsta/rag-gallery/pkg/storage"
)

// noUploadLink is the sentinel the caller sees in place of a presigned URL
// whenever UploadImage fails for any reason other than an absent session
// (spec §4.9: "on any failure, returns bucket_link = 'None'").
const noUploadLink = "None"

// uploadRepo is the subset of *dbpg.UserUploadRepo that UploadImage needs.
type uploadRepo interface {
	GetByFilename(ctx context.Context, filename string) (*dbpg.UserUpload, error)
	Create(ctx context.Context, filename, fileHash, userID string, fileSize int64) (*dbpg.UserUpload, error)
}

// galleryRepo is the subset of *dbpg.GalleryRepo that ListGallery and
// FilterOptions need.
type galleryRepo interface {
	ListUserPhotos(ctx context.Context, userID string) ([]dbpg.UserPhoto, error)
	FilterableProperties(ctx context.Context, userID string) (aspects, themes []string, err error)
}

// GalleryViewServer implements the authenticated upload/retrieval surface
// (spec §4.3-§4.5). Every method reads the caller's user_id from the
// context the auth interceptor populated.
type GalleryViewServer struct {
	pb.UnimplementedGalleryViewServer

	buckets *storage.BucketClient
	uploads uploadRepo
	gallery galleryRepo
}

func NewGalleryViewServer(buckets *storage.BucketClient, uploads *dbpg.UserUploadRepo, gallery *dbpg.GalleryRepo) *GalleryViewServer {
	return &GalleryViewServer{buckets: buckets, uploads: uploads, gallery: gallery}
}

// UploadImage records the intent-to-upload under the bucket key
// "feeder/<filename>" and returns a presigned PUT URL for that exact key,
// so the feeder can later pick the object up from the same place the
// caller was told to write it (spec §3, §4.3).
//
// Every failure other than a missing session is swallowed: the RPC still
// succeeds, with BucketLink set to the "None" sentinel, mirroring the
// original service's always-Ok response (spec §4.9, §8 scenario 2).
func (s *GalleryViewServer) UploadImage(ctx context.Context, req *pb.UploadImageRequest) (*pb.SignedLinkResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	l := pkglog.L().With().Str("user_id", userID).Logger()

	key := "feeder/" + req.GetFilename()

	existing, err := s.uploads.GetByFilename(ctx, key)
	if err != nil {
		l.Error().Err(err).Msg("duplicate filename lookup failed")
		return &pb.SignedLinkResponse{BucketLink: noUploadLink}, nil
	}
	if existing != nil {
		l.Info().Str("filename", key).Msg("rejecting upload, already in flight")
		return &pb.SignedLinkResponse{BucketLink: noUploadLink}, nil
	}

	if _, err := s.uploads.Create(ctx, key, req.GetFilehash(), userID, req.GetFilesize()); err != nil {
		l.Error().Err(err).Msg("user_upload create failed")
		return &pb.SignedLinkResponse{BucketLink: noUploadLink}, nil
	}

	link, err := s.buckets.Feeder.GetUploadURL(ctx, key, "application/octet-stream", storage.PresignExpiry)
	if err != nil {
		l.Error().Err(err).Msg("presign upload url failed")
		return &pb.SignedLinkResponse{BucketLink: noUploadLink}, nil
	}

	return &pb.SignedLinkResponse{BucketLink: link}, nil
}

// ListGallery returns every catalogued photo for the caller, narrowed by
// aspect and/or theme when requested (spec §4.4).
func (s *GalleryViewServer) ListGallery(ctx context.Context, req *pb.FilterGalleryRequest) (*pb.GalleryImagesResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	l := pkglog.L().With().Str("user_id", userID).Logger()

	photos, err := s.gallery.ListUserPhotos(ctx, userID)
	if err != nil {
		l.Error().Err(err).Msg("list_user_photos failed")
		return nil, status.Error(codes.Internal, "failed to list gallery")
	}

	images := make([]*pb.GalleryImage, 0, len(photos))
	for _, p := range photos {
		if req.GetAspect() != "" && p.Ratio != req.GetAspect() {
			continue
		}
		if req.GetTheme() != "" && p.Theme != req.GetTheme() {
			continue
		}

		url, err := s.buckets.Ragged.GetURL(ctx, p.ThumbnailPath, storage.PresignExpiry)
		if err != nil {
			l.Warn().Err(err).Str("thumbnail_path", p.ThumbnailPath).Msg("presign download url failed, skipping image")
			continue
		}

		images = append(images, &pb.GalleryImage{
			ImgUrl:   url,
			AriaText: p.Aria,
			Aspect:   p.Ratio,
			Theme:    p.Theme,
			AltText:  p.Alt,
		})
	}

	return &pb.GalleryImagesResponse{Images: images, Count: int64(len(images))}, nil
}

// FilterOptions returns the distinct aspect/theme tags the caller can
// filter ListGallery by (spec §4.5).
func (s *GalleryViewServer) FilterOptions(ctx context.Context, _ *pb.Empty) (*pb.FilterOptionResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}

	aspects, themes, err := s.gallery.FilterableProperties(ctx, userID)
	if err != nil {
		pkglog.L().Error().Err(err).Str("user_id", userID).Msg("filterable_properties failed")
		return nil, status.Error(codes.Internal, "failed to load filter options")
	}

	return &pb.FilterOptionResponse{Aspects: aspects, Themes: themes}, nil
}
