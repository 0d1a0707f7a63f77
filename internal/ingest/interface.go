// Package ingest turns the supported source kinds into the plain text the
// pipeline consumes. URL sources are fetched and reduced to text; pdf and
// docx sources arrive with their text already extracted upstream and pass
// through unchanged, as does raw text.
package ingest

import (
	"context"

	"vacancy-utils/pkg/models"
)

// Source resolves one source kind into plain vacancy text.
type Source interface {
	// Resolve turns the raw input into plain text ready for extraction
	Resolve(ctx context.Context, raw models.RawInput) (string, error)

	// Kind returns the source kind this resolver handles
	Kind() models.SourceType
}
