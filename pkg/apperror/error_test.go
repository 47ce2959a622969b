package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWrapsNilAsNil(t *testing.T) {
	assert.Nil(t, New(Query, "db.Get", nil))
}

func TestIsMatchesKind(t *testing.T) {
	base := errors.New("connection refused")
	err := New(Connection, "storage.dial", base)

	assert.True(t, Is(err, Connection))
	assert.False(t, Is(err, Query))
	assert.Equal(t, Connection, KindOf(err))
	assert.True(t, errors.Is(err, base))
}

func TestUnwrapExposesUnderlyingError(t *testing.T) {
	base := errors.New("boom")
	err := New(Duplicated, "gallery.UploadImage", base)

	var ae *Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, base, errors.Unwrap(ae))
}
