package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeHash returns the hex-encoded SHA-256 digest of the entity's
// canonical content serialization. Each field is length-prefixed so no two
// distinct field lists can serialize to the same bytes. Same content means
// same hash across calls, processes, and restarts; there is no clock or
// randomness input.
func ComputeHash(fields []Field) string {
	h := sha256.New()
	for _, field := range fields {
		fmt.Fprintf(h, "%d:%s=%d:%s;", len(field.Name), field.Name, len(field.Value), field.Value)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Stamp recomputes and stores the entity's hash. Owning collaborators call
// it as part of every in-band create or update, so in-band writes never
// transition through warning.
func Stamp(entity Entity) {
	entity.Integrity().Hash = ComputeHash(entity.HashableContent())
	if entity.Integrity().Status == "" {
		entity.Integrity().Status = StatusValid
	}
}
