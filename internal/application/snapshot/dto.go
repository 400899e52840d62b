package snapshot

import (
	"github.com/shopledger/backend/internal/domain/snapshot"
)

// ExportResponse wraps the snapshot document produced by an export.
type ExportResponse struct {
	Document *snapshot.Document `json:"document"`
}

// RestoreResponse reports a completed restore to the caller.
type RestoreResponse struct {
	BeforeCounts map[string]int64 `json:"beforeCounts"`
	AfterCounts  map[string]int64 `json:"afterCounts"`
	TotalBefore  int64            `json:"totalBefore"`
	TotalAfter   int64            `json:"totalAfter"`
	Warnings     []string         `json:"warnings,omitempty"`
}

func newRestoreResponse(result *snapshot.RestoreResult, warnings []string) *RestoreResponse {
	resp := &RestoreResponse{
		BeforeCounts: make(map[string]int64, len(result.BeforeCounts)),
		AfterCounts:  make(map[string]int64, len(result.AfterCounts)),
		TotalBefore:  result.BeforeCounts.Total(),
		TotalAfter:   result.AfterCounts.Total(),
		Warnings:     warnings,
	}
	for kind, n := range result.BeforeCounts {
		resp.BeforeCounts[string(kind)] = n
	}
	for kind, n := range result.AfterCounts {
		resp.AfterCounts[string(kind)] = n
	}
	return resp
}
