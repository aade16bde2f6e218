package batches

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBatchNumber returns a human-readable batch key like BATCH-2026-3F2A91C4.
// The suffix comes from a fresh UUID; the unique index on batchNumber backs
// this up against the (unlikely) collision.
func NewBatchNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BATCH-%d-%s", now.Year(), suffix)
}
