package models

// ValidationReport lists the required field paths that are still missing
// and a normalized completeness score in [0,1]. The missing slice keeps the
// caller's iteration order so backfill can be prioritized.
type ValidationReport struct {
	Missing    []string `json:"missing"`
	Confidence float64  `json:"confidence"`
}

// Complete reports whether no required field is missing.
func (v ValidationReport) Complete() bool {
	return len(v.Missing) == 0
}

// SalaryBand is a currency-agnostic lower/upper estimate derived from the
// static heuristics, not a live market query.
type SalaryBand struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// EnrichmentResult carries the deterministically derived auxiliary fields.
// SalaryBand is nil whenever the seniority or locale context is outside the
// banding heuristic's scope.
type EnrichmentResult struct {
	TopSkills     []string    `json:"top_skills"`
	BooleanSearch string      `json:"boolean_search"`
	SalaryBand    *SalaryBand `json:"salary_band,omitempty"`
}

// PipelineResult is the envelope returned by a single pipeline invocation.
// Enrichment is nil when validation found missing required fields or when a
// stage failed. Error is data, not an exception: callers branch on it being
// non-empty instead of recovering from a panic.
type PipelineResult struct {
	Extraction *ExtractionResult `json:"extraction"`
	Validation ValidationReport  `json:"validation"`
	Enrichment *EnrichmentResult `json:"enrichment,omitempty"`
	Error      string            `json:"error,omitempty"`
}
