package authsession

import (
	"testing"
	"time"
)

func TestCreateSessionThenValidateResolvesUserID(t *testing.T) {
	m, err := NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.CreateSession("user-code-123")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	userID, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if userID != HashUserCode("user-code-123") {
		t.Errorf("Validate() = %q, want hash of original user code", userID)
	}
}

func TestValidateRejectsUnknownSession(t *testing.T) {
	m, err := NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	other, err := NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := other.CreateSession("user-code-123")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := m.Validate(token); err == nil {
		t.Fatal("expected validate to fail against a different manager's secret")
	}
}

func TestLogoutRemovesSessionImmediately(t *testing.T) {
	m, err := NewManager(time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.CreateSession("user-code-123")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if err := m.Logout(token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := m.Validate(token); err == nil {
		t.Fatal("expected validate to fail after logout")
	}
}

func TestTTLReturnsConfiguredLifetime(t *testing.T) {
	m, err := NewManager(90 * time.Second)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if got := m.TTL(); got != 90*time.Second {
		t.Errorf("TTL() = %v, want 90s", got)
	}
}

func TestSessionEvictedAfterTTL(t *testing.T) {
	// The JWT exp claim has one-second resolution, so the TTL is a whole
	// second; a shorter one would already be expired at creation.
	m, err := NewManager(time.Second)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.CreateSession("user-code-123")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := m.Validate(token); err != nil {
		t.Fatalf("Validate immediately after create: %v", err)
	}

	time.Sleep(2 * time.Second)

	if _, err := m.Validate(token); err == nil {
		t.Fatal("expected session to be evicted after TTL")
	}
}
