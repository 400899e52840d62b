package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// kindLabels give the summary a stable human-readable ordering.
var kindLabels = []struct {
	kind  record.Kind
	label string
}{
	{record.KindSupplier, "suppliers"},
	{record.KindCustomer, "customers"},
	{record.KindEmployee, "employees"},
	{record.KindProduct, "products"},
	{record.KindPurchase, "purchases"},
	{record.KindSale, "sales"},
	{record.KindReturn, "returns"},
	{record.KindIncome, "income"},
	{record.KindRemittance, "remittance"},
}

// RestoreSummary builds the human-readable description of a restore: the
// per-kind after counts plus a grand total.
func RestoreSummary(before, after snapshot.Counts) string {
	parts := make([]string, 0, len(kindLabels)+1)
	for _, kl := range kindLabels {
		parts = append(parts, fmt.Sprintf("%s: %d", kl.label, after[kl.kind]))
	}
	parts = append(parts, fmt.Sprintf("total: %d (was %d)", after.Total(), before.Total()))
	return "Workspace data overwritten by snapshot import. " + strings.Join(parts, ", ")
}

// NewRestoreEntry constructs the audit entry for a completed restore. The
// before and after counts are stored as JSON in the old/new data columns so
// the log viewer can render the delta.
func NewRestoreEntry(actor workspace.ActorContext, before, after snapshot.Counts) *Entry {
	oldData, _ := json.Marshal(before)
	newData, _ := json.Marshal(after)
	return &Entry{
		WorkspaceID:   actor.WorkspaceID,
		UserID:        actor.UserID,
		Username:      actor.Username,
		OperationType: OperationCover,
		EntityType:    EntityTypeWorkspaceData,
		OldData:       string(oldData),
		NewData:       string(newData),
		OperationTime: time.Now(),
		Note:          RestoreSummary(before, after),
	}
}
