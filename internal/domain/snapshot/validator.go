package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Parse decodes raw snapshot bytes and validates the top-level shape: both
// the exportInfo and data keys must be present, and data must map recognized
// entity-kind names to record lists. Field-level values are not checked here;
// the restore path applies defaulting instead so a single odd value never
// blocks an import.
func Parse(raw []byte) (*Document, error) {
	var probe struct {
		ExportInfo *json.RawMessage            `json:"exportInfo"`
		Data       map[string]*json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, shared.NewDomainError("MALFORMED_SNAPSHOT",
			fmt.Sprintf("Snapshot document is not valid JSON: %v", err))
	}
	if probe.ExportInfo == nil {
		return nil, shared.NewDomainError("MALFORMED_SNAPSHOT", "Snapshot document is missing 'exportInfo'")
	}
	if probe.Data == nil {
		return nil, shared.NewDomainError("MALFORMED_SNAPSHOT", "Snapshot document is missing 'data'")
	}
	for kind := range probe.Data {
		if !record.ValidKind(record.Kind(kind)) {
			return nil, shared.NewDomainError("MALFORMED_SNAPSHOT",
				fmt.Sprintf("Snapshot data contains unrecognized entity kind %q", kind))
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, shared.NewDomainError("MALFORMED_SNAPSHOT",
			fmt.Sprintf("Snapshot data has an invalid record shape: %v", err))
	}
	return &doc, nil
}

// Validate checks an already-decoded document for the same top-level shape
// requirements as Parse. Used when the document arrives pre-decoded over the
// API rather than as a file.
func Validate(doc *Document) error {
	if doc == nil {
		return shared.ErrMalformedSnapshot
	}
	if doc.ExportInfo == (ExportInfo{}) {
		return shared.NewDomainError("MALFORMED_SNAPSHOT", "Snapshot document is missing 'exportInfo'")
	}
	return nil
}

// SourceWarning describes an advisory mismatch between the snapshot's origin
// and the restore destination. Warnings never block a restore; the caller
// shows them so the user can back out of overwriting the wrong workspace.
type SourceWarning struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// SourceMismatch compares the document's producer metadata against the
// destination workspace and actor.
func SourceMismatch(doc *Document, workspaceID int64, workspaceName, username string) []SourceWarning {
	var warnings []SourceWarning
	if doc.ExportInfo.WorkspaceID != 0 && doc.ExportInfo.WorkspaceID != workspaceID {
		warnings = append(warnings, SourceWarning{
			Field:    "workspaceId",
			Expected: fmt.Sprintf("%d", workspaceID),
			Actual:   fmt.Sprintf("%d", doc.ExportInfo.WorkspaceID),
		})
	}
	if doc.ExportInfo.WorkspaceName != "" && doc.ExportInfo.WorkspaceName != workspaceName {
		warnings = append(warnings, SourceWarning{
			Field:    "workspaceName",
			Expected: workspaceName,
			Actual:   doc.ExportInfo.WorkspaceName,
		})
	}
	if doc.ExportInfo.Username != "" && doc.ExportInfo.Username != username {
		warnings = append(warnings, SourceWarning{
			Field:    "username",
			Expected: username,
			Actual:   doc.ExportInfo.Username,
		})
	}
	return warnings
}
