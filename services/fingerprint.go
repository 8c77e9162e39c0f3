package services

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/tadeyemo32/persona-backend/models"
)

// QueryFingerprint derives the stable cache key for a (user, query) pair.
//
// Field name/value pairs are sorted byte-wise by name, joined as
// "name:value" with "|", prefixed with the user ID, and hashed with
// SHA-256. The same user and query always produce the same 64-char hex
// digest regardless of field order; any changed field value produces an
// unrelated one.
func QueryFingerprint(userID string, query models.SearchQuery) string {
	fields := query.Fields()

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(fields))
	for _, name := range names {
		parts = append(parts, name+":"+fields[name])
	}

	payload := userID + "|" + strings.Join(parts, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
