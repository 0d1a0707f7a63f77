// Package pipeline wires the extraction, validation and enrichment stages
// into a single fail-soft run: stage failures and panics are captured in
// the result instead of aborting it, so callers always receive whatever
// the earlier stages managed to produce.
package pipeline

import (
	"fmt"
	"strings"

	"vacancy-utils/internal/logging"
	"vacancy-utils/internal/pipeline/enricher"
	"vacancy-utils/internal/pipeline/extractor"
	"vacancy-utils/internal/pipeline/validator"
	"vacancy-utils/pkg/models"
)

type Pipeline struct {
	extractor *extractor.Extractor
	enricher  *enricher.Enricher
}

func New() *Pipeline {
	return &Pipeline{
		extractor: extractor.New(),
		enricher:  enricher.New(),
	}
}

// Run executes the full pipeline over a raw input. Extraction failures do
// not stop the run: validation always executes, against an empty extraction
// result if need be, so the report still names every missing path.
// Enrichment runs only when the report has no missing paths. All captured
// stage errors are joined into the result's Error field.
func (p *Pipeline) Run(raw models.RawInput, requiredPaths []string) models.PipelineResult {
	log := logging.GetGlobalLogger()
	var errs []string

	extraction, err := p.runExtraction(raw)
	if err != nil {
		log.Warn("Extraction stage failed, continuing with empty result", map[string]interface{}{
			"source_type": string(raw.SourceType),
			"error":       err.Error(),
		})
		errs = append(errs, err.Error())
		extraction = &models.ExtractionResult{}
	}

	report, err := p.runValidation(extraction, requiredPaths)
	if err != nil {
		errs = append(errs, err.Error())
	}

	var enrichment *models.EnrichmentResult
	if err == nil && report.Complete() {
		enrichment, err = p.runEnrichment(extraction)
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	return models.PipelineResult{
		Extraction: extraction,
		Validation: report,
		Enrichment: enrichment,
		Error:      strings.Join(errs, "; "),
	}
}

// RunDegraded builds the result for an input whose text could not be
// resolved at all (for example a failed page fetch). The same fail-soft
// shape applies: an empty extraction is validated so the report names every
// required path, and the resolution error travels in the Error field.
func (p *Pipeline) RunDegraded(cause error, requiredPaths []string) models.PipelineResult {
	errs := []string{cause.Error()}

	extraction := &models.ExtractionResult{}
	report, err := p.runValidation(extraction, requiredPaths)
	if err != nil {
		errs = append(errs, err.Error())
	}

	return models.PipelineResult{
		Extraction: extraction,
		Validation: report,
		Error:      strings.Join(errs, "; "),
	}
}

func (p *Pipeline) runExtraction(raw models.RawInput) (result *models.ExtractionResult, err error) {
	defer recoverStage("extraction", &err)
	return p.extractor.Extract(raw)
}

func (p *Pipeline) runValidation(result *models.ExtractionResult, requiredPaths []string) (report models.ValidationReport, err error) {
	defer recoverStage("validation", &err)
	return validator.Validate(result, requiredPaths)
}

func (p *Pipeline) runEnrichment(result *models.ExtractionResult) (enrichment *models.EnrichmentResult, err error) {
	defer recoverStage("enrichment", &err)
	out := p.enricher.Enrich(result)
	return &out, nil
}

func recoverStage(stage string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s stage panicked: %v", stage, r)
	}
}
