package allocator

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SnapshotSchemaVersion is stamped onto every BlockSnapshot this.
// package produces; snapshotSchemaConstraint is the lower bound of the.
// range LoadSnapshot checks a loaded file's version against (spec.md §B.3).
const SnapshotSchemaVersion = "1.0.0"

var snapshotSchemaConstraint = semver.MustParse("1.0.0")

// BlockSnapshot is a point-in-time, JSON-serializable dump of an.
// Allocator's block list, produced for offline inspection by.
// cmd/osmem-inspect. It is not part of the four-entry-point core.
// surface and never feeds back into a live Allocator's own bookkeeping.
type BlockSnapshot struct {
	SchemaVersion string       `json:"schema_version"`
	Blocks        []BlockEntry `json:"blocks"`
}

// BlockEntry describes one block in a BlockSnapshot.
type BlockEntry struct {
	Address uintptr `json:"address"`
	Size    uintptr `json:"size"`
	Status  string  `json:"status"`
}

// Snapshot walks the live block list and returns a BlockSnapshot.
func (a *Allocator) Snapshot() BlockSnapshot {
	snap := BlockSnapshot{SchemaVersion: SnapshotSchemaVersion}

	for cur := a.listHead; cur != nil; cur = cur.nextBlock() {
		snap.Blocks = append(snap.Blocks, BlockEntry{
			Address: cur.addr(),
			Size:    cur.size,
			Status:  cur.status.String(),
		})
	}

	return snap
}

// MarshalSnapshot renders a BlockSnapshot as indented JSON.
func MarshalSnapshot(snap BlockSnapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// LoadSnapshot parses a previously dumped BlockSnapshot and validates.
// its schema version against the range this build understands.
// (spec.md §B.3): >= 1.0.0, < 2.0.0. A snapshot from an incompatible.
// schema is rejected with a CategoryValidation error rather than.
// accepted and silently misread.
func LoadSnapshot(data []byte) (BlockSnapshot, error) {
	var snap BlockSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return BlockSnapshot{}, invalidSnapshot(fmt.Sprintf("malformed JSON: %v", err))
	}

	v, err := semver.NewVersion(snap.SchemaVersion)
	if err != nil {
		return BlockSnapshot{}, invalidSnapshot(fmt.Sprintf("unparseable schema_version %q: %v", snap.SchemaVersion, err))
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %s, < 2.0.0", snapshotSchemaConstraint.String()))
	if err != nil {
		return BlockSnapshot{}, invalidSnapshot(fmt.Sprintf("internal constraint build failed: %v", err))
	}

	if !constraint.Check(v) {
		return BlockSnapshot{}, invalidSnapshot(fmt.Sprintf("schema_version %s is not supported by this build (need >= 1.0.0, < 2.0.0)", v))
	}

	return snap, nil
}
