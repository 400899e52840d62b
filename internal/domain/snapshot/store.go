package snapshot

import (
	"context"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// Counts holds per-kind row counts of one workspace.
type Counts map[record.Kind]int64

// Total sums the counts across all kinds
func (c Counts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// RestoreResult reports the outcome of a completed restore.
type RestoreResult struct {
	BeforeCounts Counts `json:"before_counts"`
	AfterCounts  Counts `json:"after_counts"`
	// AuditWriteFailed is set when the restore committed but the audit
	// entry could not be appended. The restore is still a success; the
	// caller surfaces this as a warning.
	AuditWriteFailed bool `json:"audit_write_failed,omitempty"`
}

// WorkspaceStore abstracts the two physical backends behind one behavioral
// contract. LocalStore implements the reference wipe-and-reinsert algorithm
// against the embedded database; RemoteStore delegates to the remote service,
// which is assumed to provide equivalent atomicity.
type WorkspaceStore interface {
	// BuildSnapshot gathers every entity of the workspace. Read-only.
	BuildSnapshot(ctx context.Context, workspaceID int64) (*Data, error)
	// WipeAndRestore atomically replaces the workspace's data with the
	// document's contents, appends the audit entry, and reports before and
	// after counts. On error the workspace is left exactly as it was.
	WipeAndRestore(ctx context.Context, actor workspace.ActorContext, doc *Document) (*RestoreResult, error)
}
