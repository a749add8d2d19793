package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// KeyNamespace is the top-level prefix all derived keys live under
const KeyNamespace = "encrypted-uploads"

// SaltSize is the number of random bytes mixed into each derived key
const SaltSize = 16

// NewSalt returns SaltSize bytes of cryptographic randomness
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// SessionPrefix returns the storage namespace all objects of one session
// live under. Distinct session ids always yield distinct prefixes.
func SessionPrefix(sessionID string) string {
	return fmt.Sprintf("%s/%s/", KeyNamespace, sessionID)
}

// DeriveStorageKey produces the storage key for one upload:
// <namespace>/<sessionID>/<sha256 hex of basename+timestamp+salt><ext>.
// The literal filename never appears in the key; only the extension is
// preserved so content type can still be inferred. Deterministic for
// identical inputs; a fresh salt makes repeated uploads of the same name
// resolve to distinct keys.
func DeriveStorageKey(sessionID, originalFilename string, timestamp time.Time, salt []byte) string {
	ext := filepath.Ext(originalFilename)
	base := strings.TrimSuffix(filepath.Base(originalFilename), ext)

	digest := sha256.Sum256([]byte(base + strconv.FormatInt(timestamp.UnixMilli(), 10) + hex.EncodeToString(salt)))

	return SessionPrefix(sessionID) + hex.EncodeToString(digest[:]) + ext
}

// ValidateKeySuffix checks a client-supplied lookup token before it is
// joined to a session prefix. Tokens with path separators or parent
// references could escape the session namespace.
func ValidateKeySuffix(suffix string) error {
	if suffix == "" || strings.Contains(suffix, "/") || strings.Contains(suffix, "\\") || strings.Contains(suffix, "..") {
		return ErrInvalidObjectKey
	}
	return nil
}
