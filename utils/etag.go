package utils

import (
	"crypto/sha1"
	"fmt"
)

// GenerateETag derives a validator from a resource name and its snapshot
// version. Every load and mutation bumps the version, so a matching tag means
// the client's copy is current.
func GenerateETag(resource string, version uint64) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%d", resource, version)))
	return fmt.Sprintf(`"%x"`, sum[:8])
}
