package domain_test

import (
	"strings"
	"testing"
	"time"

	"filevault/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalt(t *testing.T) {
	salt, err := domain.NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, domain.SaltSize)

	other, err := domain.NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestDeriveStorageKey(t *testing.T) {
	timestamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	salt := []byte("0123456789abcdef")

	t.Run("nominal", func(t *testing.T) {
		key := domain.DeriveStorageKey("session-1", "report.pdf", timestamp, salt)

		assert.True(t, strings.HasPrefix(key, "encrypted-uploads/session-1/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))

		suffix := strings.TrimPrefix(key, "encrypted-uploads/session-1/")
		digest := strings.TrimSuffix(suffix, ".pdf")
		assert.Len(t, digest, 64)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := domain.DeriveStorageKey("session-1", "report.pdf", timestamp, salt)
		second := domain.DeriveStorageKey("session-1", "report.pdf", timestamp, salt)
		assert.Equal(t, first, second)
	})

	t.Run("distinct salts yield distinct keys", func(t *testing.T) {
		first := domain.DeriveStorageKey("session-1", "report.pdf", timestamp, salt)
		second := domain.DeriveStorageKey("session-1", "report.pdf", timestamp, []byte("fedcba9876543210"))
		assert.NotEqual(t, first, second)
	})

	t.Run("distinct timestamps yield distinct keys", func(t *testing.T) {
		first := domain.DeriveStorageKey("session-1", "report.pdf", timestamp, salt)
		second := domain.DeriveStorageKey("session-1", "report.pdf", timestamp.Add(time.Millisecond), salt)
		assert.NotEqual(t, first, second)
	})

	t.Run("literal filename never appears", func(t *testing.T) {
		key := domain.DeriveStorageKey("session-1", "secret-earnings.pdf", timestamp, salt)
		assert.NotContains(t, key, "secret-earnings")
	})

	t.Run("extension preserved", func(t *testing.T) {
		key := domain.DeriveStorageKey("session-1", "archive.tar.gz", timestamp, salt)
		assert.True(t, strings.HasSuffix(key, ".gz"))
	})

	t.Run("no extension", func(t *testing.T) {
		key := domain.DeriveStorageKey("session-1", "Makefile", timestamp, salt)
		assert.NotContains(t, strings.TrimPrefix(key, "encrypted-uploads/session-1/"), ".")
	})

	t.Run("sessions partition the namespace", func(t *testing.T) {
		first := domain.DeriveStorageKey("session-a", "report.pdf", timestamp, salt)
		second := domain.DeriveStorageKey("session-b", "report.pdf", timestamp, salt)
		assert.True(t, strings.HasPrefix(first, domain.SessionPrefix("session-a")))
		assert.True(t, strings.HasPrefix(second, domain.SessionPrefix("session-b")))
	})
}

func TestSessionPrefix(t *testing.T) {
	assert.Equal(t, "encrypted-uploads/abc/", domain.SessionPrefix("abc"))
	assert.NotEqual(t, domain.SessionPrefix("ab"), domain.SessionPrefix("abc"))
}

func TestValidateKeySuffix(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		assert.NoError(t, domain.ValidateKeySuffix("a1b2c3.pdf"))
	})

	t.Run("rejects empty", func(t *testing.T) {
		assert.ErrorIs(t, domain.ValidateKeySuffix(""), domain.ErrInvalidObjectKey)
	})

	t.Run("rejects path separators", func(t *testing.T) {
		assert.ErrorIs(t, domain.ValidateKeySuffix("other-session/file.pdf"), domain.ErrInvalidObjectKey)
		assert.ErrorIs(t, domain.ValidateKeySuffix("dir\\file.pdf"), domain.ErrInvalidObjectKey)
	})

	t.Run("rejects parent references", func(t *testing.T) {
		assert.ErrorIs(t, domain.ValidateKeySuffix(".."), domain.ErrInvalidObjectKey)
	})
}
