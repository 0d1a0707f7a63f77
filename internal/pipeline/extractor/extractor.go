// Package extractor turns raw vacancy text into best-effort structured
// field guesses. It is the leaf stage of the pipeline: deterministic,
// bilingual German/English, regex and keyword-table based, and free of any
// network or AI dependency so that identical input always yields identical
// output.
package extractor

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"vacancy-utils/pkg/models"
	"vacancy-utils/pkg/utils"
)

var (
	labeledCompanyPattern = regexp.MustCompile(`(?im)^\s*(?:unternehmensname|company|firma)\s*:\s*(.+)$`)
	companySuffixPattern  = regexp.MustCompile(`\b([A-ZÄÖÜ][A-Za-zÄÖÜäöüß0-9&.\-]*(?:\s+[A-ZÄÖÜ][A-Za-zÄÖÜäöüß0-9&.\-]*)*\s+(?:GmbH & Co\. KG|GmbH|AG|SE|KG|UG|Ltd\.?|Inc\.?|LLC))(?:\b|$)`)
	hiringCompanyPattern  = regexp.MustCompile(`(?:\bbei|\bfür|\bat|\bjoin(?:ing)?)\s+([A-ZÄÖÜ][A-Za-zÄÖÜäöüß0-9&.\-]*(?:\s+[A-ZÄÖÜ][A-Za-zÄÖÜäöüß0-9&.\-]*)*)\s+(?:sucht|stellt|hiring|hires)`)

	labeledTitlePattern = regexp.MustCompile(`(?im)^[#*\-•\s]*(?:jobtitel|job title|titel|title|position|rolle|role)\s*[:\-–—]\s*(.+)$`)
	asTitlePattern      = regexp.MustCompile(`(?:\bals|\bas)\s+([A-ZÄÖÜ][^.,\n]{5,80})`)
	genderTagPattern    = regexp.MustCompile(`(?i)\(\s*[mwfd]\s*/\s*[mwfd]\s*(?:/\s*[mwfd]\s*)?\)`)
	leadingArticle      = regexp.MustCompile(`(?i)^(?:ein|eine|einen|a|an)\s+`)
	leadingSeniority    = regexp.MustCompile(`(?i)^(?:junior|senior|lead|principal|mid|medior|jr\.?)\s+`)

	labeledCityPattern = regexp.MustCompile(`(?im)^(?:hauptstandort|standort|arbeitsort|stadt|ort|location|city)\s*[:/\-\s]\s*(.+)$`)
	cityCharPattern    = regexp.MustCompile(`[^A-Za-zÄÖÜäöüß\- ]+`)

	startImmediatePattern = regexp.MustCompile(`(?i)\b(?:ab\s+sofort|asap|a\.s\.a\.p\.|zum\s+nächstmöglichen\s+zeitpunkt|so\s+bald\s+wie\s+möglich)`)
	startDatePatterns     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:startdatum|start|beginn|eintritt(?:sdatum)?)\s*:?\s*([0-9]{4}-[0-9]{2}-[0-9]{2})`),
		regexp.MustCompile(`(?i)(?:startdatum|start|beginn|eintritt(?:sdatum)?)\s*:?\s*([0-9]{1,2}\.[0-9]{1,2}\.[0-9]{2,4})`),
		regexp.MustCompile(`(?i)(?:startdatum|start|beginn|eintritt(?:sdatum)?)\s*:?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`),
	}

	languageCuePattern = regexp.MustCompile(`(?i)fluent|proficien|kenntnisse|verhandlungssicher|muttersprache|native|sprachniveau|sprachkenntnisse|\blanguages?\b|\bsprachen\b`)

	emailPattern       = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	contactNamePattern = regexp.MustCompile(`(?im)^(?:ansprechpartner(?:in)?|kontaktperson|kontakt|contact(?:\s+person)?)\s*:\s*(.+)$`)

	compiledSeniorityCues []struct {
		re    *regexp.Regexp
		label string
	}
)

func init() {
	for _, c := range seniorityCues {
		compiledSeniorityCues = append(compiledSeniorityCues, struct {
			re    *regexp.Regexp
			label string
		}{regexp.MustCompile(c.pattern), c.label})
	}
}

// Extractor parses plain vacancy text into an ExtractionResult. It holds no
// state; the zero value is usable and a single instance is safe for
// concurrent use.
type Extractor struct{}

// New creates a new extractor instance
func New() *Extractor {
	return &Extractor{}
}

// Extract parses the raw input into structured fields. It fails only for an
// unrecognized source kind or empty content; any well-formed input produces
// a (possibly sparse) result.
func (e *Extractor) Extract(raw models.RawInput) (*models.ExtractionResult, error) {
	if !raw.SourceType.Recognized() {
		return nil, utils.NewUnsupportedSourceError(string(raw.SourceType))
	}

	content := NormalizeText(raw.Content)
	if content == "" {
		return nil, utils.NewEmptyContentError()
	}

	lines := strings.Split(content, "\n")
	lowered := strings.ToLower(content)

	result := &models.ExtractionResult{
		Seniority: extractSeniority(lowered),
	}
	result.JobTitle = extractJobTitle(lines, content)
	result.CompanyName = extractCompany(content)
	result.City = extractCity(content, lowered)
	result.EmploymentType = matchCueTable(lowered, employmentCues)
	result.ContractType = matchCueTable(lowered, contractCues)
	result.StartDate = extractStartDate(content)
	result.LanguagesRequired = extractLanguages(lines)
	result.Responsibilities = extractResponsibilities(lines)
	result.MustHaveSkills = extractSkills(lowered)
	result.ContactName = extractContactName(content)
	result.ContactEmail = emailPattern.FindString(content)

	return result, nil
}

// NormalizeText collapses whitespace inside lines while preserving line and
// paragraph boundaries, which the section and bullet detection depends on.
// Runs of blank lines shrink to a single blank line.
func NormalizeText(text string) string {
	sanitized := strings.ReplaceAll(text, "\x00", " ")
	var out []string
	for _, rawLine := range strings.Split(sanitized, "\n") {
		line := strings.Join(strings.Fields(rawLine), " ")
		if line == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func extractSeniority(lowered string) string {
	for _, c := range compiledSeniorityCues {
		if c.re.MatchString(lowered) {
			return c.label
		}
	}
	return ""
}

// extractJobTitle prefers an explicit label line, then scans for the first
// line anchored by a role noun, then falls back to an "als/as <phrase>"
// construction. Seniority cue tokens are stripped from the result.
func extractJobTitle(lines []string, content string) string {
	if m := labeledTitlePattern.FindStringSubmatch(content); m != nil {
		if title := cleanTitle(m[1]); title != "" {
			return title
		}
	}

	for _, line := range lines {
		if title := titleFromLine(line); title != "" {
			return cleanTitle(title)
		}
	}

	if m := asTitlePattern.FindStringSubmatch(content); m != nil {
		return cleanTitle(m[1])
	}
	return ""
}

// titleFromLine locates a role-noun token and walks backwards collecting up
// to three capitalized modifier words, skipping over seniority cues and
// stopping at prepositions or legal-entity suffixes.
func titleFromLine(line string) string {
	tokens := strings.Fields(line)
	keywordIdx := -1
	for i, tok := range tokens {
		if isTitleKeyword(strings.ToLower(trimToken(tok))) {
			keywordIdx = i
			break
		}
	}
	if keywordIdx < 0 {
		return ""
	}

	words := []string{trimToken(tokens[keywordIdx])}
	for i := keywordIdx - 1; i >= 0 && len(words) < 4; i-- {
		tok := trimToken(tokens[i])
		lower := strings.ToLower(tok)
		if isSeniorityWord(lower) {
			continue
		}
		if titleBoundaryWords[lower] || !startsUpper(tok) {
			break
		}
		words = append([]string{tok}, words...)
	}
	return strings.Join(words, " ")
}

var titleBoundaryWords = map[string]bool{
	"at": true, "bei": true, "für": true, "in": true, "im": true,
	"as": true, "als": true, "the": true, "a": true, "an": true,
	"und": true, "and": true, "of": true, "mit": true, "with": true,
	"gmbh": true, "ag": true, "se": true, "kg": true, "ug": true,
	"ltd": true, "inc": true, "llc": true,
}

func isSeniorityWord(lower string) bool {
	switch lower {
	case "junior", "senior", "lead", "principal", "mid", "medior", "jr", "jr.":
		return true
	}
	return false
}

func isTitleKeyword(lower string) bool {
	for _, kw := range titleKeywords {
		if lower == kw || strings.HasSuffix(lower, kw) {
			return true
		}
	}
	return false
}

func cleanTitle(raw string) string {
	cleaned := strings.Join(strings.Fields(raw), " ")
	cleaned = strings.TrimLeft(cleaned, "-•*# ")
	cleaned = genderTagPattern.ReplaceAllString(cleaned, "")
	cleaned = leadingArticle.ReplaceAllString(cleaned, "")
	for {
		next := leadingSeniority.ReplaceAllString(cleaned, "")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	cleaned = strings.TrimRight(cleaned, ".,;:–—- ")
	return strings.TrimSpace(cleaned)
}

// extractCompany tries an explicit label first, then a legal-entity suffix
// scan (suffix preserved in the result), then a hiring-verb construction.
// Regex matches are leftmost so the earliest line wins on ties.
func extractCompany(content string) string {
	if m := labeledCompanyPattern.FindStringSubmatch(content); m != nil {
		if c := normalizeCompany(m[1]); c != "" {
			return c
		}
	}
	if m := companySuffixPattern.FindStringSubmatch(content); m != nil {
		if c := normalizeCompany(m[1]); c != "" {
			return c
		}
	}
	if m := hiringCompanyPattern.FindStringSubmatch(content); m != nil {
		if c := normalizeCompany(m[1]); c != "" {
			return c
		}
	}
	return ""
}

var companyLeadingWords = regexp.MustCompile(`(?i)^(?:die|der|das|the|wir|bei|für|at|join)\s+`)

func normalizeCompany(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, ",;:|")
	for {
		next := companyLeadingWords.ReplaceAllString(cleaned, "")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	if len(cleaned) < 2 || len(cleaned) > 80 {
		return ""
	}
	return cleaned
}

// extractCity prefers a labeled location line, then falls back to the
// earliest known city name anywhere in the text. Labeled candidates that
// match a known alias are canonicalized.
func extractCity(content, lowered string) string {
	if m := labeledCityPattern.FindStringSubmatch(content); m != nil {
		candidate := cleanCity(m[1])
		if candidate != "" {
			if canonical, ok := cityAlias(strings.ToLower(candidate)); ok {
				return canonical
			}
			return candidate
		}
	}

	best := -1
	canonical := ""
	for _, entry := range knownCities {
		for _, alias := range entry.aliases {
			idx := boundedIndex(lowered, alias)
			if idx >= 0 && (best < 0 || idx < best) {
				best = idx
				canonical = entry.canonical
			}
		}
	}
	return canonical
}

func cityAlias(lower string) (string, bool) {
	for _, entry := range knownCities {
		for _, alias := range entry.aliases {
			if alias == lower {
				return entry.canonical, true
			}
		}
	}
	return "", false
}

var cityTrailingStopwords = map[string]bool{
	"eine": true, "einen": true, "einem": true, "einer": true,
	"der": true, "die": true, "das": true, "und": true, "oder": true,
	"a": true, "an": true, "the": true,
}

var cityConnectorWords = map[string]bool{
	"am": true, "an": true, "im": true, "in": true, "bei": true,
	"der": true, "die": true, "das": true, "de": true, "van": true,
	"von": true, "of": true, "la": true, "le": true,
}

// cleanCity sanitizes a raw city candidate: cut at separators, drop
// characters outside city names, keep the leading run of capitalized and
// connector tokens, and trim trailing articles.
func cleanCity(candidate string) string {
	cleaned := candidate
	for _, sep := range []string{",", ";", "|", " - ", " / ", "("} {
		if i := strings.Index(cleaned, sep); i >= 0 {
			cleaned = cleaned[:i]
		}
	}
	cleaned = cityCharPattern.ReplaceAllString(strings.TrimSpace(cleaned), "")

	var kept []string
	for _, tok := range strings.Fields(cleaned) {
		if startsUpper(tok) || cityConnectorWords[strings.ToLower(tok)] {
			kept = append(kept, tok)
			continue
		}
		break
	}
	for len(kept) > 0 && cityTrailingStopwords[strings.ToLower(kept[len(kept)-1])] {
		kept = kept[:len(kept)-1]
	}
	return strings.Join(kept, " ")
}

// matchCueTable returns the label of the cue with the earliest occurrence.
func matchCueTable(lowered string, cues []cue) string {
	best := -1
	label := ""
	for _, c := range cues {
		idx := strings.Index(lowered, c.token)
		if idx >= 0 && (best < 0 || idx < best) {
			best = idx
			label = c.label
		}
	}
	return label
}

func extractStartDate(content string) string {
	if startImmediatePattern.MatchString(content) {
		return "ASAP"
	}
	for _, pattern := range startDatePatterns {
		if m := pattern.FindStringSubmatch(content); m != nil {
			return normalizeDate(m[1])
		}
	}
	return ""
}

func normalizeDate(token string) string {
	for _, layout := range []string{"2006-01-02", "02.01.2006", "2.1.2006", "02.01.06", "02/01/2006", "2/1/2006"} {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return token
}

// extractLanguages collects known language names from lines that carry a
// requirement cue ("fluent in", "Kenntnisse", ...), in order of appearance.
func extractLanguages(lines []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, line := range lines {
		if !languageCuePattern.MatchString(line) {
			continue
		}
		lowered := strings.ToLower(line)
		type hit struct {
			idx       int
			canonical string
		}
		var hits []hit
		for _, entry := range knownLanguages {
			for _, alias := range entry.aliases {
				if idx := boundedIndex(lowered, alias); idx >= 0 {
					hits = append(hits, hit{idx, entry.canonical})
					break
				}
			}
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].idx < hits[j].idx })
		for _, h := range hits {
			if !seen[h.canonical] {
				seen[h.canonical] = true
				out = append(out, h.canonical)
			}
		}
	}
	return out
}

// extractResponsibilities captures the lines under a tasks heading, bullets
// first, stopping at a blank line or the next section heading. Without a
// heading it falls back to all bullet lines. Order is preserved verbatim.
func extractResponsibilities(lines []string) []string {
	var out []string
	capturing := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lowered := strings.ToLower(trimmed)

		if !capturing {
			if startsWithAny(lowered, responsibilityHeadings) {
				capturing = true
			}
			continue
		}
		if trimmed == "" {
			if len(out) > 0 {
				break
			}
			continue
		}
		if startsWithAny(lowered, sectionHeadings) {
			break
		}
		if isBulletLine(trimmed) {
			out = append(out, stripBullet(trimmed))
			continue
		}
		if len(out) > 0 && len(trimmed) < 160 {
			out = append(out, trimmed)
		}
	}

	if len(out) == 0 {
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if isBulletLine(trimmed) && len(trimmed) < 160 {
				out = append(out, stripBullet(trimmed))
			}
		}
	}
	return out
}

// extractSkills matches the static vocabulary case-insensitively and keeps
// the order of first appearance. Vocabulary entries are distinct ignoring
// case, which makes the output deduplicated by construction.
func extractSkills(lowered string) []string {
	type hit struct {
		idx   int
		skill string
	}
	var hits []hit
	for _, skill := range skillVocabulary {
		if idx := boundedIndex(lowered, strings.ToLower(skill)); idx >= 0 {
			hits = append(hits, hit{idx, skill})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].idx < hits[j].idx })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.skill)
	}
	return out
}

func extractContactName(content string) string {
	if m := contactNamePattern.FindStringSubmatch(content); m != nil {
		name := strings.TrimSpace(m[1])
		// A labeled contact line may carry the address instead of a name.
		name = emailPattern.ReplaceAllString(name, "")
		name = strings.Trim(name, " ,;:()")
		return name
	}
	return ""
}

// boundedIndex returns the index of the first occurrence of token in s that
// is not embedded in a longer word, or -1. Works for tokens with
// non-alphanumeric edges such as "c++" and "c#".
func boundedIndex(s, token string) int {
	if token == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(s[from:], token)
		if idx < 0 {
			return -1
		}
		idx += from
		if boundaryOK(s, idx, len(token)) {
			return idx
		}
		from = idx + 1
	}
}

func boundaryOK(s string, idx, length int) bool {
	if idx > 0 && isWordByte(s[idx-1]) && isWordByte(s[idx]) {
		return false
	}
	end := idx + length
	if end < len(s) && isWordByte(s[end]) && isWordByte(s[end-1]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "·")
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-•*· "))
}

func trimToken(tok string) string {
	return strings.Trim(tok, "()[]{}.,;:!?\"'·•*")
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
