package models

import "vacancy-utils/pkg/utils"

// Canonical field paths shared by the extractor, validator and enricher.
// Every component addresses extracted values through these strings; UI
// labels, payload files and API callers must reference the same set.
const (
	FieldCompanyName       = "company_name"
	FieldJobTitle          = "job_title"
	FieldSeniority         = "seniority"
	FieldCity              = "city"
	FieldEmploymentType    = "employment_type"
	FieldContractType      = "contract_type"
	FieldStartDate         = "start_date"
	FieldLanguagesRequired = "languages_required"
	FieldMustHaveSkills    = "must_have_skills"
	FieldResponsibilities  = "responsibilities"
	FieldContactName       = "contact_name"
	FieldContactEmail      = "contact_email"
)

// AllFieldPaths lists every canonical field path in declaration order.
var AllFieldPaths = []string{
	FieldCompanyName,
	FieldJobTitle,
	FieldSeniority,
	FieldCity,
	FieldEmploymentType,
	FieldContractType,
	FieldStartDate,
	FieldLanguagesRequired,
	FieldMustHaveSkills,
	FieldResponsibilities,
	FieldContactName,
	FieldContactEmail,
}

// DefaultRequiredPaths are the Pflichtfelder a profile needs before a new
// ad can be drafted from it. Callers may pass their own set instead.
var DefaultRequiredPaths = []string{
	FieldCompanyName,
	FieldJobTitle,
	FieldSeniority,
	FieldCity,
	FieldEmploymentType,
	FieldContractType,
}

// IsKnownFieldPath reports whether path belongs to the canonical registry.
func IsKnownFieldPath(path string) bool {
	return utils.Contains(AllFieldPaths, path)
}
