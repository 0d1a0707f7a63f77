package ingest

import (
	"context"

	"vacancy-utils/internal/config"
	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

// Resolver dispatches raw inputs to the Source registered for their kind.
type Resolver struct {
	sources map[models.SourceType]Source
}

// NewResolver wires the default sources: an HTTP fetcher for url inputs
// and pass-through resolvers for text, pdf and docx.
func NewResolver(cfg *config.Config) *Resolver {
	r := &Resolver{sources: make(map[models.SourceType]Source)}
	r.Register(NewURLSource(cfg))
	r.Register(NewPassthroughSource(models.SourceText))
	r.Register(NewPassthroughSource(models.SourcePDF))
	r.Register(NewPassthroughSource(models.SourceDOCX))
	return r
}

// Register adds a source, replacing any previous one for the same kind.
func (r *Resolver) Register(source Source) {
	r.sources[source.Kind()] = source
}

// Resolve produces a RawInput carrying plain text for the pipeline. The
// source kind is preserved so downstream consumers can still tell where
// the text came from.
func (r *Resolver) Resolve(ctx context.Context, raw models.RawInput) (models.RawInput, error) {
	source, ok := r.sources[raw.SourceType]
	if !ok {
		return models.RawInput{}, utils.NewUnsupportedSourceError(string(raw.SourceType))
	}

	text, err := source.Resolve(ctx, raw)
	if err != nil {
		return models.RawInput{}, err
	}
	return models.RawInput{SourceType: raw.SourceType, Content: text}, nil
}

// PassthroughSource hands the content through unchanged. It serves the
// text kind and the document kinds whose text is extracted upstream.
type PassthroughSource struct {
	kind models.SourceType
}

func NewPassthroughSource(kind models.SourceType) *PassthroughSource {
	return &PassthroughSource{kind: kind}
}

func (s *PassthroughSource) Resolve(_ context.Context, raw models.RawInput) (string, error) {
	return raw.Content, nil
}

func (s *PassthroughSource) Kind() models.SourceType {
	return s.kind
}
