// Package cache stores rendered evaluation reports so unchanged case files
// are not evaluated twice under the same rule set.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ReportKey derives the cache key of a report from the case document, the
// rule-set version and the stages run. Any change to one of them misses.
func ReportKey(content []byte, ruleSetVersion, stage string) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(ruleSetVersion))
	h.Write([]byte{0})
	h.Write([]byte(stage))
	return "report-v1-" + hex.EncodeToString(h.Sum(nil))
}
