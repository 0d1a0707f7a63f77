package extractor

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"vacancy-utils/pkg/models"
)

const germanAd = `Senior Data Scientist (m/w/d)
ACME Analytics GmbH
Standort: Berlin
Vollzeit, unbefristet
Start: ab sofort

Deine Aufgaben:
- Entwicklung von Machine-Learning-Modellen
- Aufbau von Datenpipelines mit Python und SQL
- Zusammenarbeit mit dem Produktteam

Dein Profil:
- Sehr gute Kenntnisse in Python, Pandas und SQL
- Verhandlungssicheres Deutsch und fließendes Englisch

Kontakt: Anna Schmidt, jobs@acme-analytics.de`

const englishAd = `We are looking for a Junior Software Engineer to join our team in London.
Part-time, fixed-term contract until December.
Requirements: JavaScript, TypeScript and React. Fluent English required.
Contact: John Doe (recruiting@example.com)`

func extract(t *testing.T, content string) *models.ExtractionResult {
	t.Helper()
	result, err := New().Extract(models.RawInput{SourceType: models.SourceText, Content: content})
	if err != nil {
		t.Fatalf("Extract returned unexpected error: %v", err)
	}
	return result
}

func TestExtractGermanAd(t *testing.T) {
	result := extract(t, germanAd)

	if result.JobTitle != "Data Scientist" {
		t.Errorf("JobTitle = %q, want %q", result.JobTitle, "Data Scientist")
	}
	if result.Seniority != "Senior" {
		t.Errorf("Seniority = %q, want %q", result.Seniority, "Senior")
	}
	if result.CompanyName != "ACME Analytics GmbH" {
		t.Errorf("CompanyName = %q, want %q", result.CompanyName, "ACME Analytics GmbH")
	}
	if result.City != "Berlin" {
		t.Errorf("City = %q, want %q", result.City, "Berlin")
	}
	if result.EmploymentType != "Full-time" {
		t.Errorf("EmploymentType = %q, want %q", result.EmploymentType, "Full-time")
	}
	if result.ContractType != "Permanent" {
		t.Errorf("ContractType = %q, want %q", result.ContractType, "Permanent")
	}
	if result.StartDate != "ASAP" {
		t.Errorf("StartDate = %q, want %q", result.StartDate, "ASAP")
	}
	if want := []string{"German", "English"}; !reflect.DeepEqual(result.LanguagesRequired, want) {
		t.Errorf("LanguagesRequired = %v, want %v", result.LanguagesRequired, want)
	}
	wantResponsibilities := []string{
		"Entwicklung von Machine-Learning-Modellen",
		"Aufbau von Datenpipelines mit Python und SQL",
		"Zusammenarbeit mit dem Produktteam",
	}
	if !reflect.DeepEqual(result.Responsibilities, wantResponsibilities) {
		t.Errorf("Responsibilities = %v, want %v", result.Responsibilities, wantResponsibilities)
	}
	if want := []string{"Python", "SQL", "Pandas"}; !reflect.DeepEqual(result.MustHaveSkills, want) {
		t.Errorf("MustHaveSkills = %v, want %v", result.MustHaveSkills, want)
	}
	if result.ContactName != "Anna Schmidt" {
		t.Errorf("ContactName = %q, want %q", result.ContactName, "Anna Schmidt")
	}
	if result.ContactEmail != "jobs@acme-analytics.de" {
		t.Errorf("ContactEmail = %q, want %q", result.ContactEmail, "jobs@acme-analytics.de")
	}
}

func TestExtractEnglishAd(t *testing.T) {
	result := extract(t, englishAd)

	if result.JobTitle != "Software Engineer" {
		t.Errorf("JobTitle = %q, want %q", result.JobTitle, "Software Engineer")
	}
	if result.Seniority != "Junior" {
		t.Errorf("Seniority = %q, want %q", result.Seniority, "Junior")
	}
	if result.CompanyName != "" {
		t.Errorf("CompanyName = %q, want empty", result.CompanyName)
	}
	if result.City != "London" {
		t.Errorf("City = %q, want %q", result.City, "London")
	}
	if result.EmploymentType != "Part-time" {
		t.Errorf("EmploymentType = %q, want %q", result.EmploymentType, "Part-time")
	}
	if result.ContractType != "Fixed-term" {
		t.Errorf("ContractType = %q, want %q", result.ContractType, "Fixed-term")
	}
	if want := []string{"English"}; !reflect.DeepEqual(result.LanguagesRequired, want) {
		t.Errorf("LanguagesRequired = %v, want %v", result.LanguagesRequired, want)
	}
	if want := []string{"JavaScript", "TypeScript", "React"}; !reflect.DeepEqual(result.MustHaveSkills, want) {
		t.Errorf("MustHaveSkills = %v, want %v", result.MustHaveSkills, want)
	}
	if result.ContactName != "John Doe" {
		t.Errorf("ContactName = %q, want %q", result.ContactName, "John Doe")
	}
	if result.ContactEmail != "recruiting@example.com" {
		t.Errorf("ContactEmail = %q, want %q", result.ContactEmail, "recruiting@example.com")
	}
}

func TestExtractOneLiner(t *testing.T) {
	result := extract(t, "Senior Data Scientist at ACME AG using Python and SQL")

	if result.JobTitle != "Data Scientist" {
		t.Errorf("JobTitle = %q, want %q", result.JobTitle, "Data Scientist")
	}
	if result.Seniority != "Senior" {
		t.Errorf("Seniority = %q, want %q", result.Seniority, "Senior")
	}
	if result.CompanyName != "ACME AG" {
		t.Errorf("CompanyName = %q, want %q", result.CompanyName, "ACME AG")
	}
	if want := []string{"Python", "SQL"}; !reflect.DeepEqual(result.MustHaveSkills, want) {
		t.Errorf("MustHaveSkills = %v, want %v", result.MustHaveSkills, want)
	}
}

func TestExtractDeterministic(t *testing.T) {
	first := extract(t, germanAd)
	second := extract(t, germanAd)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name  string
		input models.RawInput
	}{
		{"unsupported source kind", models.RawInput{SourceType: "rss", Content: "some text"}},
		{"empty source kind", models.RawInput{Content: "some text"}},
		{"empty content", models.RawInput{SourceType: models.SourceText, Content: "   \n\t  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Extract(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if result != nil {
				t.Errorf("expected nil result, got %+v", result)
			}
		})
	}
}

func TestExtractLabeledFields(t *testing.T) {
	content := `Position: Senior Backend Engineer (m/w/d)
Unternehmensname: Beispiel Software UG
Arbeitsort: München
Eintrittsdatum: 01.04.2026`

	result := extract(t, content)

	if result.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q, want %q", result.JobTitle, "Backend Engineer")
	}
	if result.CompanyName != "Beispiel Software UG" {
		t.Errorf("CompanyName = %q, want %q", result.CompanyName, "Beispiel Software UG")
	}
	if result.City != "Munich" {
		t.Errorf("City = %q, want %q (canonicalized)", result.City, "Munich")
	}
	if result.StartDate != "2026-04-01" {
		t.Errorf("StartDate = %q, want %q", result.StartDate, "2026-04-01")
	}
}

func TestSkillWordBoundaries(t *testing.T) {
	result := extract(t, "Experience with JavaScript required, Java is a plus. We use C++ and C#.")

	if want := []string{"JavaScript", "Java", "C++", "C#"}; !reflect.DeepEqual(result.MustHaveSkills, want) {
		t.Errorf("MustHaveSkills = %v, want %v", result.MustHaveSkills, want)
	}
}

func TestCityNotMatchedInsideWord(t *testing.T) {
	// "Wiener" must not count as Vienna.
	result := extract(t, "Wir suchen einen Wiener-Schnitzel-Koch für unser Team.")
	if result.City != "" {
		t.Errorf("City = %q, want empty", result.City)
	}
}

func TestResponsibilitiesKeptVerbatim(t *testing.T) {
	var b strings.Builder
	b.WriteString("Ihre Aufgaben:\n")
	for i := 1; i <= 14; i++ {
		fmt.Fprintf(&b, "- Aufgabe Nummer %d\n", i)
	}
	result := extract(t, b.String())

	if len(result.Responsibilities) != 14 {
		t.Fatalf("Responsibilities has %d entries, want all 14", len(result.Responsibilities))
	}
	if got, want := result.Responsibilities[13], "Aufgabe Nummer 14"; got != want {
		t.Errorf("Responsibilities[13] = %q, want %q", got, want)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses intra-line whitespace", "a  b\tc", "a b c"},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"trims outer whitespace", "\n\n  hello  \n\n", "hello"},
		{"drops nul bytes", "a\x00b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
