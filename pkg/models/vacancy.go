package models

import "strings"

// SourceType identifies where the raw vacancy text came from. The pipeline
// only consumes plain text; upstream collaborators (URL fetcher, PDF/DOCX
// readers) are responsible for turning their source into it.
type SourceType string

const (
	SourceURL  SourceType = "url"
	SourcePDF  SourceType = "pdf"
	SourceDOCX SourceType = "docx"
	SourceText SourceType = "text"
)

// Recognized reports whether the source type is one of the supported kinds.
func (s SourceType) Recognized() bool {
	switch s {
	case SourceURL, SourcePDF, SourceDOCX, SourceText:
		return true
	}
	return false
}

// RawInput is the immutable input of a single pipeline invocation.
type RawInput struct {
	SourceType SourceType `json:"source_type"`
	Content    string     `json:"content"`
}

// ExtractionResult holds the best-effort field guesses produced by the
// extractor. It is written once and only read afterwards; the enricher
// layers its own structure on top instead of mutating this one.
type ExtractionResult struct {
	CompanyName       string   `json:"company_name,omitempty"`
	JobTitle          string   `json:"job_title,omitempty"`
	Seniority         string   `json:"seniority,omitempty"`
	City              string   `json:"city,omitempty"`
	EmploymentType    string   `json:"employment_type,omitempty"`
	ContractType      string   `json:"contract_type,omitempty"`
	StartDate         string   `json:"start_date,omitempty"`
	LanguagesRequired []string `json:"languages_required,omitempty"`
	MustHaveSkills    []string `json:"must_have_skills,omitempty"`
	Responsibilities  []string `json:"responsibilities,omitempty"`
	ContactName       string   `json:"contact_name,omitempty"`
	ContactEmail      string   `json:"contact_email,omitempty"`
}

// FieldPresent reports whether the canonical field path carries a value.
// Absent, empty-string and empty-slice values all count as missing. Unknown
// paths report false so that validation degrades instead of crashing.
func (r *ExtractionResult) FieldPresent(path string) bool {
	if r == nil {
		return false
	}
	switch path {
	case FieldCompanyName:
		return strings.TrimSpace(r.CompanyName) != ""
	case FieldJobTitle:
		return strings.TrimSpace(r.JobTitle) != ""
	case FieldSeniority:
		return strings.TrimSpace(r.Seniority) != ""
	case FieldCity:
		return strings.TrimSpace(r.City) != ""
	case FieldEmploymentType:
		return strings.TrimSpace(r.EmploymentType) != ""
	case FieldContractType:
		return strings.TrimSpace(r.ContractType) != ""
	case FieldStartDate:
		return strings.TrimSpace(r.StartDate) != ""
	case FieldLanguagesRequired:
		return len(r.LanguagesRequired) > 0
	case FieldMustHaveSkills:
		return len(r.MustHaveSkills) > 0
	case FieldResponsibilities:
		return len(r.Responsibilities) > 0
	case FieldContactName:
		return strings.TrimSpace(r.ContactName) != ""
	case FieldContactEmail:
		return strings.TrimSpace(r.ContactEmail) != ""
	}
	return false
}
