package snapshot

import "github.com/shopledger/backend/internal/domain/record"

// IdentityRemapper tracks the mapping from snapshot-time identifiers to the
// freshly assigned identifiers of one restore. Pure in-memory bookkeeping,
// created per import and discarded afterwards.
//
// An old id that was never recorded resolves to nil. Restores normalize such
// dangling references to "no relation" instead of failing: business data
// integrity matters more than byte-for-byte relationship fidelity, and a
// malformed-but-tolerated export must still import cleanly.
type IdentityRemapper struct {
	maps map[record.Kind]map[int64]int64
}

// NewIdentityRemapper creates an empty remapper
func NewIdentityRemapper() *IdentityRemapper {
	return &IdentityRemapper{maps: make(map[record.Kind]map[int64]int64)}
}

// Record stores oldID → newID for the kind. The first mapping for an old id
// wins; duplicates in a snapshot keep their original resolution.
func (r *IdentityRemapper) Record(kind record.Kind, oldID, newID int64) {
	if oldID == 0 {
		return
	}
	m, ok := r.maps[kind]
	if !ok {
		m = make(map[int64]int64)
		r.maps[kind] = m
	}
	if _, exists := m[oldID]; !exists {
		m[oldID] = newID
	}
}

// Resolve returns the new id for an old reference, or nil when the reference
// is absent (nil/zero input) or was never part of the snapshot's own entity
// set for that kind.
func (r *IdentityRemapper) Resolve(kind record.Kind, oldID *int64) *int64 {
	if oldID == nil || *oldID == 0 {
		return nil
	}
	m, ok := r.maps[kind]
	if !ok {
		return nil
	}
	newID, ok := m[*oldID]
	if !ok {
		return nil
	}
	return &newID
}

// Len returns the number of recorded mappings for a kind
func (r *IdentityRemapper) Len(kind record.Kind) int {
	return len(r.maps[kind])
}
