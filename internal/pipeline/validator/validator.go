// Package validator checks an extraction result against a caller-declared
// set of required field paths (Pflichtfelder) and scores completeness.
package validator

import (
	"fmt"
	"math"
	"strings"

	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

// Validate reports which required field paths are missing from the result
// and a confidence score of round(1 - missing/total, 2). The missing slice
// preserves the caller's order after first-seen deduplication; callers rely
// on it to prioritize backfill.
//
// Blank entries and paths outside the canonical registry make the set
// malformed: validation still runs over the well-formed subset and the
// malformed entries are reported through the returned error. An empty set
// yields no missing fields and confidence 1.0.
func Validate(result *models.ExtractionResult, requiredPaths []string) (models.ValidationReport, error) {
	paths, malformed := normalizePaths(requiredPaths)

	missing := []string{}
	for _, path := range paths {
		if !result.FieldPresent(path) {
			missing = append(missing, path)
		}
	}

	confidence := 1.0
	if total := len(paths); total > 0 {
		confidence = roundTo2(1.0 - float64(len(missing))/float64(total))
	}

	report := models.ValidationReport{Missing: missing, Confidence: confidence}
	if len(malformed) > 0 {
		return report, utils.NewMalformedRequiredPathsError(
			fmt.Sprintf("unknown or blank field paths: %s", strings.Join(malformed, ", ")))
	}
	return report, nil
}

// normalizePaths splits the caller input into the deduplicated well-formed
// paths (first-seen order kept) and the malformed entries.
func normalizePaths(requiredPaths []string) (paths, malformed []string) {
	seen := make(map[string]bool, len(requiredPaths))
	for _, raw := range requiredPaths {
		path := strings.TrimSpace(raw)
		if path == "" || !models.IsKnownFieldPath(path) {
			malformed = append(malformed, fmt.Sprintf("%q", raw))
			continue
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths, malformed
}

// roundTo2 rounds half away from zero to two decimals.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
