package recorder

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"peelvsu/intake/pkg/forms"
)

// HashContent computes the SHA-256 hash of the content and returns it as a
// hex-encoded string. Returns an empty string if content is empty.
func HashContent(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// HashString hashes a string and returns the hex-encoded SHA-256 hash.
func HashString(content string) string {
	return HashContent([]byte(content))
}

// HashValues computes the content hash of a value mapping over its canonical
// JSON encoding. Object keys are emitted sorted, so the hash is stable across
// map iteration order. The hash is taken over the UNREDACTED values; it is
// the integrity anchor for the original submission.
func HashValues(values forms.Values) string {
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return HashContent(data)
}
