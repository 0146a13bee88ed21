// Package store persists extraction results keyed by document. It exists so
// re-extraction can be skipped when the stored extractor version matches the
// current one.
package store

import (
	"context"
	"errors"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// ErrNotFound is returned when a document has no stored records.
var ErrNotFound = errors.New("document not found")

// Store saves and inspects extraction results. Save replaces any previous
// records for the document.
type Store interface {
	Save(ctx context.Context, documentID, extractorVersion string, records []types.SkillRecord) error
	Version(ctx context.Context, documentID string) (string, error)
}
