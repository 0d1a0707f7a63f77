package enricher

import (
	"fmt"
	"math"
	"strings"

	"vacancy-utils/pkg/models"
)

const maxTopSkills = 10

// Enricher derives recruiter-facing artifacts from a validated extraction:
// a ranked skill shortlist, a sourcing boolean search string and, where the
// heuristic has enough signal, an estimated salary band.
type Enricher struct{}

func New() *Enricher {
	return &Enricher{}
}

// Enrich computes the enrichment artifacts for an extraction result. It
// never fails; artifacts without enough signal are simply left empty.
func (e *Enricher) Enrich(result *models.ExtractionResult) models.EnrichmentResult {
	if result == nil {
		result = &models.ExtractionResult{}
	}
	return models.EnrichmentResult{
		TopSkills:     topSkills(result.MustHaveSkills),
		BooleanSearch: booleanSearch(result.JobTitle, result.MustHaveSkills),
		SalaryBand:    salaryBand(result),
	}
}

// topSkills keeps the first N skills in extraction order, deduplicated
// case-insensitively.
func topSkills(skills []string) []string {
	top := []string{}
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		top = append(top, s)
		if len(top) == maxTopSkills {
			break
		}
	}
	return top
}

// booleanSearch builds a sourcing query of the form
//
//	("Title" OR "Alias") AND ("Skill A" OR "Skill B")
//
// A missing title or empty skill list drops the corresponding group; when
// both are empty the search string is empty.
func booleanSearch(title string, skills []string) string {
	titleGroup := quoteGroup(titleTerms(title))
	skillGroup := quoteGroup(topSkills(skills))

	switch {
	case titleGroup != "" && skillGroup != "":
		return titleGroup + " AND " + skillGroup
	case titleGroup != "":
		return titleGroup
	case skillGroup != "":
		return skillGroup
	}
	return ""
}

func titleTerms(title string) []string {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	terms := []string{title}
	seen := map[string]bool{strings.ToLower(title): true}
	for _, alias := range titleAliases[strings.ToLower(title)] {
		key := strings.ToLower(alias)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, alias)
	}
	return terms
}

func quoteGroup(terms []string) string {
	if len(terms) == 0 {
		return ""
	}
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return "(" + strings.Join(quoted, " OR ") + ")"
}

// salaryBand estimates an annual salary range. It returns nil unless the
// seniority is Mid or Senior (case-insensitive) and the city maps to a
// known region bucket. Multipliers apply in a fixed order: city premium,
// then employment type, then contract type; unrecognized values leave the
// band unchanged.
func salaryBand(result *models.ExtractionResult) *models.SalaryBand {
	rates, ok := baseRates[strings.ToLower(strings.TrimSpace(result.Seniority))]
	if !ok {
		return nil
	}
	region, ok := cityRegions[result.City]
	if !ok {
		return nil
	}
	base, ok := rates[region]
	if !ok {
		return nil
	}

	factor := 1.0
	if m, ok := cityMultipliers[result.City]; ok {
		factor *= m
	}
	if m, ok := employmentMultipliers[result.EmploymentType]; ok {
		factor *= m
	}
	if m, ok := contractMultipliers[result.ContractType]; ok {
		factor *= m
	}

	return &models.SalaryBand{
		Lower: int(math.Round(float64(base.lower) * factor)),
		Upper: int(math.Round(float64(base.upper) * factor)),
	}
}
