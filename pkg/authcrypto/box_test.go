package authcrypto

import "testing"

func TestSealAndDecryptRoundTrip(t *testing.T) {
	server, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	want := "this is an auth user code"
	ephPubHex, nonceHex, ciphertextHex, err := Seal(server.PublicHex(), want)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	got, err := server.Decrypt(ephPubHex, nonceHex, ciphertextHex)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != want {
		t.Errorf("Decrypt() = %q, want %q", got, want)
	}
}

func TestDecryptRejectsWrongLengthKey(t *testing.T) {
	server, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	if _, err := server.Decrypt("deadbeef", "00", "00"); err == nil {
		t.Fatal("expected error for undersized ephemeral public key")
	}
}

func TestDecryptFailsForTamperedCiphertext(t *testing.T) {
	server, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	ephPubHex, nonceHex, ciphertextHex, err := Seal(server.PublicHex(), "hello")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	flipped := byte('0')
	if ciphertextHex[len(ciphertextHex)-1] == '0' {
		flipped = '1'
	}
	tampered := ciphertextHex[:len(ciphertextHex)-1] + string(flipped)
	if _, err := server.Decrypt(ephPubHex, nonceHex, tampered); err == nil {
		t.Fatal("expected decrypt to fail on tampered ciphertext")
	}
}
