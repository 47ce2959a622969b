// Package apperror defines the abstract error kinds shared by the feeder
// and webserver services, so callers can branch on failure category
// without depending on a specific storage/broker/LLM client's error type.
package apperror

import (
	"errors"
	"fmt"
)

// Kind is an abstract failure category, independent of the concrete
// dependency (db driver, object store client, broker client, ...) that
// produced it.
type Kind string

const (
	Connection         Kind = "connection"
	Schema             Kind = "schema"
	Query              Kind = "query"
	BlobUpload         Kind = "blob_upload"
	BlobDownload       Kind = "blob_download"
	BlobRead           Kind = "blob_read"
	BlobMove           Kind = "blob_move"
	ImageDecode        Kind = "image_decode"
	ImageFormatGuess   Kind = "image_format_guess"
	EmbeddingModel     Kind = "embedding_model"
	LlmUpstream        Kind = "llm_upstream"
	LlmEmpty           Kind = "llm_empty"
	LlmMultimodalSetup Kind = "llm_multimodal_setup"
	BrokerSubscribe    Kind = "broker_subscribe"
	BrokerRecv         Kind = "broker_recv"
	DispatchSend       Kind = "dispatch_send"
	AuthInvalidLength  Kind = "auth_invalid_length"
	AuthCrypto         Kind = "auth_crypto"
	AuthSessionMissing Kind = "auth_session_missing"
	Duplicated         Kind = "duplicated"
)

// Error wraps an underlying error with an abstract Kind so callers can
// branch with errors.Is / a type switch without knowing the concrete
// dependency that produced the failure.
type Error struct {
	Kind Kind
	Op   string // the operation that failed, e.g. "storage.Write"
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with kind and op. Returns nil if err is nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// KindOf returns the Kind carried by err, or "" if err does not wrap one.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
