package pipeline

import (
	"reflect"
	"strings"
	"testing"

	"vacancy-utils/pkg/models"
)

const completeAd = `Senior Data Scientist (m/w/d)
ACME Analytics GmbH
Standort: Berlin
Vollzeit, unbefristet

Deine Aufgaben:
- Aufbau von Datenpipelines mit Python und SQL`

func TestRunCompleteAd(t *testing.T) {
	result := New().Run(models.RawInput{
		SourceType: models.SourceText,
		Content:    completeAd,
	}, models.DefaultRequiredPaths)

	if result.Error != "" {
		t.Fatalf("Error = %q, want empty", result.Error)
	}
	if result.Extraction == nil {
		t.Fatal("Extraction is nil")
	}
	if !result.Validation.Complete() {
		t.Fatalf("Validation.Missing = %v, want none", result.Validation.Missing)
	}
	if result.Validation.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", result.Validation.Confidence)
	}
	if result.Enrichment == nil {
		t.Fatal("Enrichment is nil, want populated for a complete report")
	}
	if result.Enrichment.SalaryBand == nil {
		t.Error("SalaryBand is nil, want band for Senior in Berlin")
	}
}

func TestRunIncompleteAdSkipsEnrichment(t *testing.T) {
	result := New().Run(models.RawInput{
		SourceType: models.SourceText,
		Content:    "Wir suchen Verstärkung für unser Team.",
	}, models.DefaultRequiredPaths)

	if result.Error != "" {
		t.Fatalf("Error = %q, want empty", result.Error)
	}
	if result.Validation.Complete() {
		t.Fatal("expected missing required fields for a vague ad")
	}
	if result.Enrichment != nil {
		t.Errorf("Enrichment = %+v, want nil when required fields are missing", result.Enrichment)
	}
}

func TestRunUnsupportedSourceContinues(t *testing.T) {
	result := New().Run(models.RawInput{
		SourceType: "rss",
		Content:    "irrelevant",
	}, models.DefaultRequiredPaths)

	if result.Error == "" {
		t.Fatal("Error is empty, want captured extraction failure")
	}
	if !strings.Contains(result.Error, "Unsupported source kind") {
		t.Errorf("Error = %q, want mention of the unsupported source kind", result.Error)
	}
	if result.Extraction == nil {
		t.Fatal("Extraction is nil, want empty result after fail-soft continuation")
	}
	// Validation still ran, against the empty extraction.
	if !reflect.DeepEqual(result.Validation.Missing, models.DefaultRequiredPaths) {
		t.Errorf("Validation.Missing = %v, want all default required paths", result.Validation.Missing)
	}
	if result.Validation.Confidence != 0.0 {
		t.Errorf("Confidence = %v, want 0.0", result.Validation.Confidence)
	}
	if result.Enrichment != nil {
		t.Errorf("Enrichment = %+v, want nil", result.Enrichment)
	}
}

func TestRunMalformedRequiredPaths(t *testing.T) {
	result := New().Run(models.RawInput{
		SourceType: models.SourceText,
		Content:    completeAd,
	}, []string{"job_title", "salary_expectation"})

	if result.Error == "" {
		t.Fatal("Error is empty, want malformed required paths failure")
	}
	if !strings.Contains(result.Error, "Malformed required paths") {
		t.Errorf("Error = %q, want mention of malformed required paths", result.Error)
	}
	if result.Enrichment != nil {
		t.Errorf("Enrichment = %+v, want nil after validation failure", result.Enrichment)
	}
	// The well-formed subset was still validated.
	if !reflect.DeepEqual(result.Validation.Missing, []string{}) {
		t.Errorf("Validation.Missing = %v, want none for the well-formed subset", result.Validation.Missing)
	}
}

func TestRunEmptyRequiredPaths(t *testing.T) {
	result := New().Run(models.RawInput{
		SourceType: models.SourceText,
		Content:    "Kurzer Text ohne verwertbare Felder.",
	}, nil)

	if result.Error != "" {
		t.Fatalf("Error = %q, want empty", result.Error)
	}
	if result.Validation.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0 for an empty required set", result.Validation.Confidence)
	}
	if result.Enrichment == nil {
		t.Error("Enrichment is nil, want populated since nothing is missing")
	}
}

func TestRunDeterministic(t *testing.T) {
	raw := models.RawInput{SourceType: models.SourceText, Content: completeAd}
	first := New().Run(raw, models.DefaultRequiredPaths)
	second := New().Run(raw, models.DefaultRequiredPaths)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ:\nfirst  %+v\nsecond %+v", first, second)
	}
}
