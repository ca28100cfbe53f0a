package application

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// DefaultWindowFingerprint is used when the caller has no window identity.
const DefaultWindowFingerprint = "default"

// ResolveSessionID derives a stable session id from a workspace root and a
// window fingerprint, so repeated runs from the same place share history.
func ResolveSessionID(workspaceRoot, windowFingerprint string) string {
	fingerprint := strings.TrimSpace(windowFingerprint)
	if fingerprint == "" {
		fingerprint = DefaultWindowFingerprint
	}

	raw := strings.TrimSpace(workspaceRoot) + "|" + fingerprint
	hash := sha1.Sum([]byte(raw))
	return hex.EncodeToString(hash[:])
}
