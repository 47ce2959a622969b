package grpc

import (
	"context"
	"testing"
	"time"

	pb "github.com/jaconsta/rag-gallery/proto/auth"

	"github.com/jaconsta/rag-gallery/pkg/authcrypto"
	"github.com/jaconsta/rag-gallery/pkg/authsession"
)

func TestHandshakeRoundTripMintsUsableSession(t *testing.T) {
	keys, err := authcrypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sessions, err := authsession.NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	server := NewAuthGreeterServer(keys, sessions)

	greet, err := server.GreetAuth(context.Background(), &pb.Empty{})
	if err != nil {
		t.Fatalf("GreetAuth: %v", err)
	}

	ephPubHex, nonceHex, ciphertextHex, err := authcrypto.Seal(greet.GetPublicKey(), "user-code-123")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	resp, err := server.ExchangeAuth(context.Background(), &pb.UserPublicAuth{
		Nonce:              nonceHex,
		Message:            ciphertextHex,
		EphemeralPublicKey: ephPubHex,
	})
	if err != nil {
		t.Fatalf("ExchangeAuth: %v", err)
	}
	if resp.GetStatus() != "ok" {
		t.Fatalf("ExchangeAuth status = %q, want ok", resp.GetStatus())
	}
	if resp.GetBearer() == "" {
		t.Fatal("expected a non-empty bearer token")
	}

	userID, err := sessions.Validate(resp.GetBearer())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if userID != authsession.HashUserCode("user-code-123") {
		t.Errorf("Validate() = %q, want hash of original user code", userID)
	}
}

func TestExchangeAuthRejectsGarbageCiphertext(t *testing.T) {
	keys, err := authcrypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sessions, err := authsession.NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	server := NewAuthGreeterServer(keys, sessions)

	other, err := authcrypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	ephPubHex, nonceHex, ciphertextHex, err := authcrypto.Seal(other.PublicHex(), "user-code-123")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	resp, err := server.ExchangeAuth(context.Background(), &pb.UserPublicAuth{
		Nonce:              nonceHex,
		Message:            ciphertextHex,
		EphemeralPublicKey: ephPubHex,
	})
	if err != nil {
		t.Fatalf("ExchangeAuth: %v", err)
	}
	if resp.GetStatus() != "rejected" {
		t.Fatalf("ExchangeAuth status = %q, want rejected", resp.GetStatus())
	}
}

func TestLogoutWithoutMetadataIsANoop(t *testing.T) {
	keys, err := authcrypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sessions, err := authsession.NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	server := NewAuthGreeterServer(keys, sessions)

	if _, err := server.Logout(context.Background(), &pb.Empty{}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
}
