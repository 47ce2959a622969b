package grpc

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/jaconsta/rag-gallery/proto/gallery"

	"github.com/jaconsta/rag-gallery/pkg/dbpg"
	"github.com/jaconsta/rag-gallery/pkg/storage"
)

// fakeUploadRepo is an in-memory uploadRepo keyed by filename, mirroring
// the unique-by-filename invariant the real UserUploadRepo enforces.
type fakeUploadRepo struct {
	byFilename map[string]*dbpg.UserUpload
	lookupErr  error
	createErr  error
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{byFilename: map[string]*dbpg.UserUpload{}}
}

func (f *fakeUploadRepo) GetByFilename(_ context.Context, filename string) (*dbpg.UserUpload, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.byFilename[filename], nil
}

func (f *fakeUploadRepo) Create(_ context.Context, filename, fileHash, userID string, fileSize int64) (*dbpg.UserUpload, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u := &dbpg.UserUpload{Filename: filename, FileHash: fileHash, UserID: userID, FileSize: fileSize}
	f.byFilename[filename] = u
	return u, nil
}

// stubStorage is a storage.Storage stub; only GetUploadURL matters to
// UploadImage, the rest are unused no-ops.
type stubStorage struct {
	uploadURL string
	uploadErr error
}

func (stubStorage) Write(context.Context, string, io.Reader, int64, string) error { return nil }
func (stubStorage) Read(context.Context, string) (io.ReadCloser, error)           { return nil, nil }
func (stubStorage) Delete(context.Context, string) error                         { return nil }
func (stubStorage) Exists(context.Context, string) (bool, error)                 { return false, nil }
func (stubStorage) GetURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}
func (s stubStorage) GetUploadURL(_ context.Context, _, _ string, _ time.Duration) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	return s.uploadURL, nil
}

func newUserCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey{}, userID)
}

func TestUploadImageRejectsDuplicateFilename(t *testing.T) {
	uploads := newFakeUploadRepo()
	buckets := &storage.BucketClient{Feeder: stubStorage{uploadURL: "https://example.test/upload/feeder/cat.jpg"}}
	s := &GalleryViewServer{buckets: buckets, uploads: uploads}

	ctx := newUserCtx("user-1")
	req := &pb.UploadImageRequest{Filename: "cat.jpg", Filehash: "abc123", Filesize: 10}

	first, err := s.UploadImage(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/upload/feeder/cat.jpg", first.GetBucketLink())

	second, err := s.UploadImage(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, noUploadLink, second.GetBucketLink())
}

func TestUploadImageKeysLookupAndCreateOnTheSameBucketKey(t *testing.T) {
	uploads := newFakeUploadRepo()
	buckets := &storage.BucketClient{Feeder: stubStorage{uploadURL: "https://example.test/upload/feeder/cat.jpg"}}
	s := &GalleryViewServer{buckets: buckets, uploads: uploads}

	ctx := newUserCtx("user-1")
	_, err := s.UploadImage(ctx, &pb.UploadImageRequest{Filename: "cat.jpg", Filehash: "abc123", Filesize: 10})
	require.NoError(t, err)

	stored, ok := uploads.byFilename["feeder/cat.jpg"]
	require.True(t, ok, "expected the upload to be recorded under the feeder/<filename> key")
	assert.Equal(t, "feeder/cat.jpg", stored.Filename)
}

func TestUploadImageReturnsNoneOnLookupFailure(t *testing.T) {
	uploads := newFakeUploadRepo()
	uploads.lookupErr = errors.New("connection reset")
	buckets := &storage.BucketClient{Feeder: stubStorage{uploadURL: "https://example.test/upload/feeder/cat.jpg"}}
	s := &GalleryViewServer{buckets: buckets, uploads: uploads}

	resp, err := s.UploadImage(newUserCtx("user-1"), &pb.UploadImageRequest{Filename: "cat.jpg"})
	require.NoError(t, err)
	assert.Equal(t, noUploadLink, resp.GetBucketLink())
}

func TestUploadImageReturnsNoneOnCreateFailure(t *testing.T) {
	uploads := newFakeUploadRepo()
	uploads.createErr = errors.New("unique violation")
	buckets := &storage.BucketClient{Feeder: stubStorage{uploadURL: "https://example.test/upload/feeder/cat.jpg"}}
	s := &GalleryViewServer{buckets: buckets, uploads: uploads}

	resp, err := s.UploadImage(newUserCtx("user-1"), &pb.UploadImageRequest{Filename: "cat.jpg"})
	require.NoError(t, err)
	assert.Equal(t, noUploadLink, resp.GetBucketLink())
}

func TestUploadImageReturnsNoneOnPresignFailure(t *testing.T) {
	uploads := newFakeUploadRepo()
	buckets := &storage.BucketClient{Feeder: stubStorage{uploadErr: errors.New("minio unreachable")}}
	s := &GalleryViewServer{buckets: buckets, uploads: uploads}

	resp, err := s.UploadImage(newUserCtx("user-1"), &pb.UploadImageRequest{Filename: "cat.jpg"})
	require.NoError(t, err)
	assert.Equal(t, noUploadLink, resp.GetBucketLink())
}

func TestUploadImageRejectsMissingSession(t *testing.T) {
	s := &GalleryViewServer{uploads: newFakeUploadRepo()}

	_, err := s.UploadImage(context.Background(), &pb.UploadImageRequest{Filename: "cat.jpg"})
	require.Error(t, err)
}
