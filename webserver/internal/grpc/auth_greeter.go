package grpc

import (
	"context"
	"time"

	pb "github.com/jaconsta/rag-gallery/proto/auth"

	"github.com/jaconsta/rag-gallery/pkg/authcrypto"
	"github.com/jaconsta/rag-gallery/pkg/authsession"
	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
)

// AuthGreeterServer implements the zero-knowledge handshake (spec §4.1):
// GreetAuth hands out the server's public key, ExchangeAuth decrypts the
// sealed user code and mints a session, Logout tears one down.
type AuthGreeterServer struct {
	pb.UnimplementedAuthGreeterServer

	keys     *authcrypto.KeyPair
	sessions *authsession.Manager
}

func NewAuthGreeterServer(keys *authcrypto.KeyPair, sessions *authsession.Manager) *AuthGreeterServer {
	return &AuthGreeterServer{keys: keys, sessions: sessions}
}

func (s *AuthGreeterServer) GreetAuth(ctx context.Context, _ *pb.Empty) (*pb.ServerPublicKeys, error) {
	return &pb.ServerPublicKeys{PublicKey: s.keys.PublicHex()}, nil
}

func (s *AuthGreeterServer) ExchangeAuth(ctx context.Context, req *pb.UserPublicAuth) (*pb.UserAuthResponse, error) {
	l := pkglog.L()

	userCode, err := s.keys.Decrypt(req.GetEphemeralPublicKey(), req.GetNonce(), req.GetMessage())
	if err != nil {
		l.Warn().Err(err).Msg("handshake decrypt failed")
		return &pb.UserAuthResponse{Status: "rejected"}, nil
	}

	token, err := s.sessions.CreateSession(userCode)
	if err != nil {
		l.Error().Err(err).Msg("session creation failed")
		return &pb.UserAuthResponse{Status: "rejected"}, nil
	}

	return &pb.UserAuthResponse{
		Status:  "ok",
		Bearer:  token,
		Expires: time.Now().Add(s.sessions.TTL()).Unix(),
	}, nil
}

func (s *AuthGreeterServer) Logout(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	token, err := bearerFromMetadata(ctx)
	if err != nil {
		return &pb.Empty{}, nil
	}
	_ = s.sessions.Logout(token)
	return &pb.Empty{}, nil
}
