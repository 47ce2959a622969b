// Package authcrypto implements the anonymous-handshake crypto used by
// the auth greeter: each server instance generates a fresh curve25519
// keypair at startup, the client encrypts its user code against the
// server's public key with its own ephemeral keypair, and the server
// decrypts with nacl/box (spec §4.1).
package authcrypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/nacl/box"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

const KeyLen = 32

// KeyPair is a curve25519 keypair used for one Diffie-Hellman exchange.
type KeyPair struct {
	Public  [KeyLen]byte
	Private [KeyLen]byte
}

// GenerateKeyPair creates a new random keypair.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, apperror.New(apperror.AuthCrypto, "GenerateKeyPair", err)
	}
	return &KeyPair{Public: *pub, Private: *priv}, nil
}

// PublicHex returns the hex-encoded public key, as sent to clients by
// GreetAuth.
func (k *KeyPair) PublicHex() string {
	return hex.EncodeToString(k.Public[:])
}

// Decrypt opens a box sealed by a client's ephemeral keypair against
// this server's public key, given the client's ephemeral public key,
// the nonce, and the ciphertext — each hex-encoded, exactly as received
// over ExchangeAuth.
func (k *KeyPair) Decrypt(ephPubHex, nonceHex, ciphertextHex string) (string, error) {
	ephPub, err := decodeKey(ephPubHex)
	if err != nil {
		return "", err
	}
	nonce, err := decodeNonce(nonceHex)
	if err != nil {
		return "", err
	}
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", apperror.New(apperror.AuthCrypto, "Decrypt", err)
	}

	plain, ok := box.Open(nil, ciphertext, nonce, ephPub, &k.Private)
	if !ok {
		return "", apperror.New(apperror.AuthCrypto, "Decrypt", fmt.Errorf("open failed"))
	}
	return string(plain), nil
}

func decodeKey(s string) (*[KeyLen]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, apperror.New(apperror.AuthCrypto, "decodeKey", err)
	}
	if len(b) != KeyLen {
		return nil, apperror.New(apperror.AuthInvalidLength, "decodeKey",
			fmt.Errorf("expected %d bytes, got %d", KeyLen, len(b)))
	}
	var out [KeyLen]byte
	copy(out[:], b)
	return &out, nil
}

func decodeNonce(s string) (*[24]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, apperror.New(apperror.AuthCrypto, "decodeNonce", err)
	}
	if len(b) != 24 {
		return nil, apperror.New(apperror.AuthInvalidLength, "decodeNonce",
			fmt.Errorf("expected 24 bytes, got %d", len(b)))
	}
	var out [24]byte
	copy(out[:], b)
	return &out, nil
}

// Seal encrypts a message for the server's public key using a fresh
// ephemeral keypair, returning the hex fields ExchangeAuth expects. It
// exists mainly to let tests and the gRPC client stub simulate a real
// client without duplicating the wire format by hand.
func Seal(serverPubHex, message string) (ephPubHex, nonceHex, ciphertextHex string, err error) {
	serverPub, err := decodeKey(serverPubHex)
	if err != nil {
		return "", "", "", err
	}
	ephPub, ephPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", "", apperror.New(apperror.AuthCrypto, "Seal", err)
	}
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", "", "", apperror.New(apperror.AuthCrypto, "Seal", err)
	}

	ciphertext := box.Seal(nil, []byte(message), &nonce, serverPub, ephPriv)
	return hex.EncodeToString(ephPub[:]), hex.EncodeToString(nonce[:]), hex.EncodeToString(ciphertext), nil
}
