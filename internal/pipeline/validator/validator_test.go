package validator

import (
	"reflect"
	"testing"

	"vacancy-utils/pkg/models"
)

func fullExtraction() *models.ExtractionResult {
	return &models.ExtractionResult{
		CompanyName:    "ACME Analytics GmbH",
		JobTitle:       "Data Scientist",
		Seniority:      "Senior",
		City:           "Berlin",
		EmploymentType: "Full-time",
		ContractType:   "Permanent",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		result         *models.ExtractionResult
		requiredPaths  []string
		wantMissing    []string
		wantConfidence float64
	}{
		{
			name:           "all required fields present",
			result:         fullExtraction(),
			requiredPaths:  models.DefaultRequiredPaths,
			wantMissing:    []string{},
			wantConfidence: 1.0,
		},
		{
			name:           "empty required set scores full confidence",
			result:         &models.ExtractionResult{},
			requiredPaths:  nil,
			wantMissing:    []string{},
			wantConfidence: 1.0,
		},
		{
			name:           "missing fields reported in caller order",
			result:         &models.ExtractionResult{JobTitle: "Data Scientist", CompanyName: "ACME"},
			requiredPaths:  []string{"city", "job_title", "seniority", "company_name"},
			wantMissing:    []string{"city", "seniority"},
			wantConfidence: 0.5,
		},
		{
			name:           "duplicates counted once",
			result:         &models.ExtractionResult{},
			requiredPaths:  []string{"job_title", "job_title", "city"},
			wantMissing:    []string{"job_title", "city"},
			wantConfidence: 0.0,
		},
		{
			name:           "confidence rounds half up",
			result:         &models.ExtractionResult{JobTitle: "Engineer", City: "Berlin"},
			requiredPaths:  []string{"job_title", "city", "seniority"},
			wantMissing:    []string{"seniority"},
			wantConfidence: 0.67,
		},
		{
			name:           "empty slices are missing",
			result:         &models.ExtractionResult{MustHaveSkills: []string{}},
			requiredPaths:  []string{"must_have_skills"},
			wantMissing:    []string{"must_have_skills"},
			wantConfidence: 0.0,
		},
		{
			name:           "populated slices are present",
			result:         &models.ExtractionResult{MustHaveSkills: []string{"Python"}},
			requiredPaths:  []string{"must_have_skills"},
			wantMissing:    []string{},
			wantConfidence: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Validate(tt.result, tt.requiredPaths)
			if err != nil {
				t.Fatalf("Validate returned unexpected error: %v", err)
			}
			if !reflect.DeepEqual(report.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", report.Missing, tt.wantMissing)
			}
			if report.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", report.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestValidateMalformedPaths(t *testing.T) {
	tests := []struct {
		name          string
		requiredPaths []string
		wantMissing   []string
	}{
		{"unknown path", []string{"job_title", "salary"}, []string{"job_title"}},
		{"blank path", []string{"", "city"}, []string{"city"}},
		{"all malformed", []string{"nope", "  "}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Validate(&models.ExtractionResult{}, tt.requiredPaths)
			if err == nil {
				t.Fatal("expected error for malformed required paths, got nil")
			}
			// The report still covers the well-formed subset.
			if !reflect.DeepEqual(report.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", report.Missing, tt.wantMissing)
			}
		})
	}
}

func TestValidateComplete(t *testing.T) {
	report, err := Validate(fullExtraction(), models.DefaultRequiredPaths)
	if err != nil {
		t.Fatalf("Validate returned unexpected error: %v", err)
	}
	if !report.Complete() {
		t.Errorf("Complete() = false, want true for %+v", report)
	}
}
