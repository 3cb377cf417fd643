package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint computes the tamper-evidence hash committed on-chain for a
// log: hex-encoded SHA-256 over "title:summary" after trimming both parts.
// The same title and summary always produce the same fingerprint, so the
// stored record can be checked against the on-chain commitment later.
func Fingerprint(title, summary string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(title) + ":" + strings.TrimSpace(summary)))
	return hex.EncodeToString(h[:])
}
