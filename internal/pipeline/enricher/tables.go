package enricher

// Static heuristic tables for salary banding and boolean-search aliases.
// The exact constants are tuning choices carried over from the legacy
// profile exports; treat them as configuration-shaped data, not behavior.
// All tables are read-only after process start.

type band struct {
	lower int
	upper int
}

// cityRegions assigns every city the extractor can emit to a coarse
// location bucket. Banding requires a resolvable bucket; unknown cities
// yield no band at all rather than a misleading default.
var cityRegions = map[string]string{
	"Berlin":     "dach",
	"Munich":     "dach",
	"Hamburg":    "dach",
	"Frankfurt":  "dach",
	"Cologne":    "dach",
	"Stuttgart":  "dach",
	"Düsseldorf": "dach",
	"Leipzig":    "dach",
	"Dresden":    "dach",
	"Nuremberg":  "dach",
	"Vienna":     "dach",
	"Zurich":     "dach",
	"London":     "western_europe",
	"Paris":      "western_europe",
	"Amsterdam":  "western_europe",
	"New York":   "north_america",
	"Sofia":      "central_europe",
	"Krakow":     "central_europe",
	"Warsaw":     "central_europe",
}

// baseRates is keyed by lowercase seniority and region bucket. Banding is
// deliberately limited to Mid and Senior; the heuristic has no defensible
// numbers for other levels.
var baseRates = map[string]map[string]band{
	"mid": {
		"dach":           {55000, 72000},
		"western_europe": {60000, 78000},
		"north_america":  {70000, 90000},
		"central_europe": {35000, 48000},
	},
	"senior": {
		"dach":           {75000, 95000},
		"western_europe": {80000, 100000},
		"north_america":  {95000, 125000},
		"central_europe": {48000, 65000},
	},
}

// cityMultipliers are premium/discount factors on top of the regional base
// rate, keyed by canonical city name. Missing cities multiply by 1.0.
var cityMultipliers = map[string]float64{
	"Munich":    1.12,
	"Zurich":    1.30,
	"London":    1.25,
	"Paris":     1.18,
	"New York":  1.28,
	"Frankfurt": 1.10,
	"Berlin":    1.05,
	"Hamburg":   1.08,
	"Amsterdam": 1.12,
	"Leipzig":   0.92,
	"Sofia":     0.85,
	"Krakow":    0.90,
}

// employmentMultipliers discount or raise the band by employment type.
var employmentMultipliers = map[string]float64{
	"Full-time":       1.00,
	"Part-time":       0.70,
	"Working Student": 0.60,
	"Internship":      0.60,
	"Contractor":      1.15,
	"Freelance":       1.15,
}

// contractMultipliers adjust for contract type.
var contractMultipliers = map[string]float64{
	"Permanent":  1.00,
	"Fixed-term": 0.95,
}

// titleAliases maps a lowercase job title to equivalent titles included in
// the boolean search expression (DE/EN synonym pairs).
var titleAliases = map[string][]string{
	"software engineer":    {"Software Developer", "Softwareentwickler"},
	"software developer":   {"Software Engineer", "Softwareentwickler"},
	"softwareentwickler":   {"Software Engineer", "Software Developer"},
	"frontend developer":   {"Frontend Engineer"},
	"frontend engineer":    {"Frontend Developer"},
	"backend developer":    {"Backend Engineer"},
	"backend engineer":     {"Backend Developer"},
	"data scientist":       {"Data Analyst"},
	"devops engineer":      {"Site Reliability Engineer"},
	"product owner":        {"Product Manager"},
	"product manager":      {"Product Owner"},
	"projektmanager":       {"Project Manager"},
	"project manager":      {"Projektmanager"},
	"personalreferent":     {"HR Specialist"},
	"recruiter":            {"Talent Acquisition Specialist"},
	"qa engineer":          {"Test Engineer"},
	"fullstack developer":  {"Full Stack Engineer"},
	"full stack developer": {"Fullstack Engineer"},
}
